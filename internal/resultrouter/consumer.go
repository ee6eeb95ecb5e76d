package resultrouter

import "github.com/kestrelql/resultrouter/internal/routerpb"

// Consumer is the capability set the router requires of a local
// consumer node (spec §6 "Consumer contract"). Implementations may be
// called from any goroutine and must be internally synchronized; the
// router never calls these concurrently with itself for the same
// slot, but a consumer may be shared or inspected elsewhere.
type Consumer interface {
	// EnqueueRowBatch hands a batch to the consumer. The router treats
	// a non-nil error as a consumer bug: it is logged, never retried.
	EnqueueRowBatch(batch *routerpb.RowBatchData) error
	// NotifyUpstreamInitiated reports that the producer has sent its
	// StreamInit chunk for this source.
	NotifyUpstreamInitiated()
	// NotifyUpstreamClosed reports that the producer's stream for this
	// source has ended, whether by clean half-close or transport error
	// (the router collapses both per spec §4.4 and §9).
	NotifyUpstreamClosed()
}

// WakeFunc is a non-blocking, panic-free callback the router invokes
// exactly once per batch handed to an attached consumer (spec
// ConsumerSlot invariant 5). Implementations are expected to post to
// the consumer's own executor rather than do real work inline.
type WakeFunc func()
