// Package resultrouter implements the GRPC result-chunk router: the
// server-side component that demultiplexes inbound bidirectional gRPC
// streams onto in-process consumer nodes keyed by (query_id, source_id).
package resultrouter

import (
	"hash/fnv"
	"sync"

	"github.com/kestrelql/resultrouter/internal/logging"
	"github.com/kestrelql/resultrouter/internal/queryid"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// QueryEntry owns one query's source map, per-agent stats list, and
// deletion flag (spec §3). It is created lazily on first reference,
// whichever of a producer or a consumer arrives first, and is torn
// down only by DeleteQuery.
type QueryEntry struct {
	mu sync.Mutex

	id      queryid.ID
	sources map[int64]*consumerSlot
	stats   []*routerpb.AgentExecutionStats

	// deleted is sticky: once true the entry stays in its shard's map
	// as a tombstone (sources/stats released) so that late-arriving
	// messages and registrations can be told kQueryDeleted instead of
	// silently reviving a torn-down query under the same id.
	deleted bool

	metrics *metricsSet
}

func newQueryEntry(id queryid.ID, metrics *metricsSet) *QueryEntry {
	return &QueryEntry{
		id:      id,
		sources: make(map[int64]*consumerSlot),
		metrics: metrics,
	}
}

func (e *QueryEntry) slotLocked(source int64) *consumerSlot {
	s, ok := e.sources[source]
	if !ok {
		s = newConsumerSlot(source, e.metrics)
		e.sources[source] = s
	}
	return s
}

// registryShard holds a subset of queries, guarded by its own lock.
// Sharding by hash(query_id) keeps the registry-level lock (spec §5
// "locking discipline") from becoming a single hot spot under many
// concurrently live queries (spec §9 design notes).
type registryShard struct {
	mu      sync.RWMutex
	queries map[queryid.ID]*QueryEntry
}

// Registry is the consumer registry (spec §4.2): the shared mapping
// query_id -> { source_id -> ConsumerSlot }, plus the per-query stats
// list and deletion flag. It is safe for concurrent use from any
// number of goroutines.
type Registry struct {
	shards  []*registryShard
	metrics *metricsSet
}

// NewRegistry builds a Registry sharded into shardCount independent
// locks. shardCount <= 0 is treated as 1 (no sharding).
func NewRegistry(shardCount int) *Registry {
	if shardCount <= 0 {
		shardCount = 1
	}
	shards := make([]*registryShard, shardCount)
	for i := range shards {
		shards[i] = &registryShard{queries: make(map[queryid.ID]*QueryEntry)}
	}
	return &Registry{shards: shards, metrics: newMetricsSet()}
}

func (r *Registry) shardFor(id queryid.ID) *registryShard {
	h := fnv.New64a()
	var b [16]byte
	putID(&b, id)
	_, _ = h.Write(b[:])
	return r.shards[h.Sum64()%uint64(len(r.shards))]
}

func putID(b *[16]byte, id queryid.ID) {
	for i := 0; i < 8; i++ {
		b[i] = byte(id.High >> (8 * (7 - i)))
		b[8+i] = byte(id.Low >> (8 * (7 - i)))
	}
}

// entry looks up (or, if createIfMissing, lazily creates) the
// QueryEntry for id. It returns (nil, false) only when the id has no
// entry and createIfMissing is false. A deleted query's tombstone is
// returned like any other entry; callers check its deleted flag.
func (r *Registry) entry(id queryid.ID, createIfMissing bool) (*QueryEntry, bool) {
	shard := r.shardFor(id)

	shard.mu.RLock()
	e, ok := shard.queries[id]
	shard.mu.RUnlock()
	if ok {
		return e, true
	}
	if !createIfMissing {
		return nil, false
	}

	shard.mu.Lock()
	defer shard.mu.Unlock()
	if e, ok := shard.queries[id]; ok {
		return e, true
	}
	e = newQueryEntry(id, r.metrics)
	shard.queries[id] = e
	r.metrics.activeQueries.Inc()
	return e, true
}

// AddGRPCSourceNode registers consumer as the local sink for
// (query, source). See spec §4.2; the full rendezvous/drain logic
// lives in consumerSlot.attach.
func (r *Registry) AddGRPCSourceNode(id queryid.ID, source int64, consumer Consumer, wake WakeFunc) error {
	e, _ := r.entry(id, true)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return newErr(KindQueryDeleted, "AddGRPCSourceNode", nil)
	}

	slot := e.slotLocked(source)
	if err := slot.attach(consumer, wake); err != nil {
		return err
	}
	r.metrics.sourcesRegistered.Inc()
	return nil
}

// Route hands batch to the slot for (query, source): directly to an
// attached consumer, or onto the pending FIFO if none is registered
// yet. Returns kQueryDeleted if the query has already been torn down,
// in which case the caller (the stream handler) should abort the
// producer stream per spec §4.2.
func (r *Registry) Route(id queryid.ID, source int64, batch *routerpb.RowBatchData) error {
	e, _ := r.entry(id, true)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return newErr(KindQueryDeleted, "Route", nil)
	}

	slot := e.slotLocked(source)
	slot.route(batch)
	r.metrics.batchesRouted.Inc()
	if batch != nil {
		r.metrics.batchSizeHistogram().Update(int64(len(batch.GetData())))
	}
	return nil
}

// MarkInitiated records that the producer stream for (query, source)
// has sent its StreamInit chunk. A second call for the same source is
// the duplicate-StreamInit case and fails with kFailedPrecondition.
func (r *Registry) MarkInitiated(id queryid.ID, source int64) error {
	e, ok := r.entry(id, true)
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return newErr(KindQueryDeleted, "MarkInitiated", nil)
	}
	return e.slotLocked(source).markInitiated()
}

// MarkClosed records end-of-stream for (query, source); idempotent.
func (r *Registry) MarkClosed(id queryid.ID, source int64) error {
	e, ok := r.entry(id, false)
	if !ok {
		// Never referenced; nothing to close.
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return nil
	}
	e.slotLocked(source).markClosed()
	return nil
}

// DeleteQuery is the only teardown primitive (spec §4.6). It is safe
// to call exactly once — or any number of times — from any goroutine,
// at any time. After it returns, no wake callback for this query fires
// again, concurrently arriving batches are dropped, and concurrently
// arriving AddGRPCSourceNode calls fail with kQueryDeleted.
func (r *Registry) DeleteQuery(id queryid.ID) {
	// A never-referenced id still gets an entry, so that the tombstone
	// below turns away batches and registrations that arrive later.
	e, _ := r.entry(id, true)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return // idempotent: second call is a no-op.
	}

	for _, slot := range e.sources {
		slot.teardown()
	}
	e.sources = nil
	e.stats = nil
	e.deleted = true
	r.metrics.activeQueries.Dec()

	logging.L.Debug("query deleted", queryField(id))
}
