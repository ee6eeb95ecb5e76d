package resultrouter

import (
	"github.com/eapache/queue"

	"github.com/kestrelql/resultrouter/internal/logging"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// consumerSlot is the per-(query_id, source_id) rendezvous state
// described in spec §4.3. It has two modes: Buffering (no consumer
// registered yet, batches accumulate in pending) and Attached (a
// consumer is registered, batches are delivered directly). The
// reverse transition never happens.
//
// Every method here assumes the owning QueryEntry's mutex is already
// held — the router has exactly two lock levels (registry, per-query)
// and a slot does not get a third.
type consumerSlot struct {
	sourceID int64

	consumer Consumer
	wake     WakeFunc

	pending *queue.Queue // FIFO of *routerpb.RowBatchData, Buffering mode only

	initiated bool
	closed    bool

	metrics *metricsSet
}

func newConsumerSlot(sourceID int64, metrics *metricsSet) *consumerSlot {
	return &consumerSlot{
		sourceID: sourceID,
		pending:  queue.New(),
		metrics:  metrics,
	}
}

func (s *consumerSlot) attached() bool {
	return s.consumer != nil
}

// attach implements the AddGRPCSourceNode rendezvous: idempotent on a
// repeat registration with the same consumer, kAlreadyRegistered on a
// conflicting one, otherwise transitions Buffering -> Attached,
// draining pending FIFO under the (already-held) per-query lock before
// publishing the initiated/closed transitions observed so far.
func (s *consumerSlot) attach(consumer Consumer, wake WakeFunc) error {
	if s.attached() {
		if s.consumer == consumer {
			return nil
		}
		return newErr(KindAlreadyRegistered, "AddGRPCSourceNode", nil)
	}

	s.consumer = consumer
	s.wake = wake

	for s.pending.Length() > 0 {
		batch, _ := s.pending.Peek().(*routerpb.RowBatchData)
		s.pending.Remove()
		s.deliver(batch)
	}

	if s.initiated {
		consumer.NotifyUpstreamInitiated()
	}
	if s.closed {
		consumer.NotifyUpstreamClosed()
	}
	return nil
}

// route implements Route: hand the batch directly to an attached
// consumer (with a wake), or buffer it FIFO awaiting a consumer.
func (s *consumerSlot) route(batch *routerpb.RowBatchData) {
	if s.attached() {
		s.deliver(batch)
		return
	}
	s.pending.Add(batch)
}

// deliver enqueues batch on an attached consumer and fires exactly one
// wake for it, from the calling goroutine, as invariant 5 requires.
func (s *consumerSlot) deliver(batch *routerpb.RowBatchData) {
	if err := s.consumer.EnqueueRowBatch(batch); err != nil {
		logging.L.Warn("consumer rejected row batch; dropping", errField(err))
	}
	safeWake(s.wake)
	if s.metrics != nil {
		s.metrics.wakesFired.Inc()
	}
}

// markInitiated implements the false->true-exactly-once transition of
// invariant 4. A second call is the duplicate-StreamInit case and
// fails with kFailedPrecondition, leaving existing state untouched.
func (s *consumerSlot) markInitiated() error {
	if s.initiated {
		return newErr(KindFailedPrecondition, "MarkInitiated", nil)
	}
	s.initiated = true
	if s.attached() {
		s.consumer.NotifyUpstreamInitiated()
	}
	return nil
}

// markClosed implements the idempotent false->true-exactly-once
// transition for upstream_closed (invariant 4 and testable property 4):
// a second call is a no-op, not an error.
func (s *consumerSlot) markClosed() {
	if s.closed {
		return
	}
	s.closed = true
	if s.attached() {
		s.consumer.NotifyUpstreamClosed()
	}
}

// teardown implements the per-slot half of DeleteQuery (spec §4.6
// step 2): clear the consumer pointer and drop pending batches. No
// further wake fires after this returns.
func (s *consumerSlot) teardown() {
	s.consumer = nil
	s.wake = nil
	s.pending = queue.New()
}

// safeWake invokes wake, recovering a panic rather than letting a
// consumer bug (spec §5: "the router does not guard against a slow
// callback and declares slow wakes a consumer bug") take the routing
// goroutine down with it.
func safeWake(wake WakeFunc) {
	if wake == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logging.L.Error("wake callback panicked", errField(panicError{r}))
		}
	}()
	wake()
}

type panicError struct{ v interface{} }

func (p panicError) Error() string { return "panic: " + toString(p.v) }

func toString(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "unknown panic value"
}
