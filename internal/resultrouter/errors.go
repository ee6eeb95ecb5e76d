package resultrouter

import (
	"errors"
	"fmt"
)

// Kind classifies a router-level failure, mirroring the error taxonomy
// spec'd for the router: kMalformed, kAlreadyRegistered, kQueryDeleted,
// kFailedPrecondition, kInternal.
type Kind int

const (
	// KindMalformed: the envelope violated the §4.1 classification rules.
	KindMalformed Kind = iota + 1
	// KindAlreadyRegistered: AddGRPCSourceNode conflicted with an
	// existing, different consumer.
	KindAlreadyRegistered
	// KindQueryDeleted: the operation referenced a torn-down query.
	KindQueryDeleted
	// KindFailedPrecondition: a duplicate StreamInit landed on a source
	// that had already observed one.
	KindFailedPrecondition
	// KindInternal: an invariant was violated; should never occur.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindAlreadyRegistered:
		return "already_registered"
	case KindQueryDeleted:
		return "query_deleted"
	case KindFailedPrecondition:
		return "failed_precondition"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the error type every router operation returns; it carries
// enough structure for callers (the stream handler, the executor) to
// branch on Kind without string matching.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resultrouter: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("resultrouter: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, &resultrouter.Error{Kind: KindQueryDeleted})
// style matching work by kind alone (the caller rarely cares about
// Op/Err). Only a *Error target matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error,
// reporting true. For any other error, including nil, it returns the
// zero Kind (which matches no named kind) and false.
func KindOf(err error) (Kind, bool) {
	var rerr *Error
	if errors.As(err, &rerr) {
		return rerr.Kind, true
	}
	return 0, false
}
