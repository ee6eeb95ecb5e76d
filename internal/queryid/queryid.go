// Package queryid defines the 128-bit opaque identifiers used to key
// queries and agents throughout the router.
package queryid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// ID is a 128-bit opaque identifier carried on the wire as two u64
// halves. Equality and hashing are bitwise, matching the upstream
// TransferResultChunkRequest.query_id/agent_id representation.
type ID struct {
	High uint64
	Low  uint64
}

// New builds an ID from the wire's high/low halves.
func New(high, low uint64) ID {
	return ID{High: high, Low: low}
}

// IsZero reports whether id is the zero value (never assigned by the
// router, but useful for callers validating input).
func (id ID) IsZero() bool {
	return id.High == 0 && id.Low == 0
}

// String renders the id as a UUID for logs; it carries no semantic
// weight beyond readability.
func (id ID) String() string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], id.High)
	binary.BigEndian.PutUint64(b[8:], id.Low)
	u, err := uuid.FromBytes(b[:])
	if err != nil {
		// FromBytes only fails on wrong-length input, which cannot
		// happen here.
		return fmt.Sprintf("%016x%016x", id.High, id.Low)
	}
	return u.String()
}
