package resultrouter

import (
	"sync"
	"sync/atomic"

	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// fakeConsumer records every EnqueueRowBatch call verbatim, in the
// same spirit as the original grpc_router_test.cc's FakeGRPCSourceNode
// (which keeps a row_batches slice callers assert against field by
// field, not just by count).
type fakeConsumer struct {
	mu        sync.Mutex
	batches   []*routerpb.RowBatchData
	initiated bool
	closed    bool
}

func (c *fakeConsumer) EnqueueRowBatch(batch *routerpb.RowBatchData) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, batch)
	return nil
}

func (c *fakeConsumer) NotifyUpstreamInitiated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initiated = true
}

func (c *fakeConsumer) NotifyUpstreamClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *fakeConsumer) snapshot() (batches []*routerpb.RowBatchData, initiated, closed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*routerpb.RowBatchData, len(c.batches))
	copy(out, c.batches)
	return out, c.initiated, c.closed
}

// wakeCounter is a WakeFunc factory whose returned callback increments
// an atomic counter exactly once per invocation — used to assert the
// "one wake per enqueued batch" invariant (spec ConsumerSlot invariant 5).
type wakeCounter struct {
	n atomic.Int64
}

func (w *wakeCounter) wake() { w.n.Add(1) }

func (w *wakeCounter) count() int64 { return w.n.Load() }
