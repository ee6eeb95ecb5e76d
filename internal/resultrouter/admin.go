package resultrouter

import (
	"fmt"

	"github.com/kestrelql/resultrouter/internal/queryid"
)

// RouterAdmin is the administrative surface for inspecting a running
// router, in the same spirit as the teacher's ClusterAdmin: a small,
// synchronous interface an operator or executor-side debug tool calls
// to enumerate and describe live state without touching the hot
// routing path.
type RouterAdmin interface {
	// ListActiveQueries returns the ids of every query with a live
	// (non-deleted) entry in the registry. This operation is supported
	// regardless of whether the query has any row-batch sources — a
	// stats-only query is listed too.
	ListActiveQueries() []queryid.ID

	// DescribeQuery reports the per-source state of a live query. It
	// returns ok == false if the query has no entry or has been
	// deleted.
	DescribeQuery(id queryid.ID) (QueryDescription, bool)
}

// QueryDescription is a point-in-time snapshot of one query's registry
// state, useful for debugging stuck consumers or leaked sources.
type QueryDescription struct {
	QueryID        queryid.ID
	SourceCount    int
	StatsReports   int
	AttachedCount  int
	InitiatedCount int
	ClosedCount    int
}

func (d QueryDescription) String() string {
	return fmt.Sprintf(
		"query=%s sources=%d attached=%d initiated=%d closed=%d stats_reports=%d",
		d.QueryID, d.SourceCount, d.AttachedCount, d.InitiatedCount, d.ClosedCount, d.StatsReports)
}

// routerAdmin is the Registry-backed RouterAdmin implementation
// returned by Service.Admin.
type routerAdmin struct {
	registry *Registry
}

// Admin returns the administrative surface for this router instance.
func (s *Service) Admin() RouterAdmin {
	return &routerAdmin{registry: s.registry}
}

func (a *routerAdmin) ListActiveQueries() []queryid.ID {
	var ids []queryid.ID
	for _, shard := range a.registry.shards {
		shard.mu.RLock()
		for id, e := range shard.queries {
			e.mu.Lock()
			deleted := e.deleted
			e.mu.Unlock()
			if !deleted {
				ids = append(ids, id)
			}
		}
		shard.mu.RUnlock()
	}
	return ids
}

func (a *routerAdmin) DescribeQuery(id queryid.ID) (QueryDescription, bool) {
	e, ok := a.registry.entry(id, false)
	if !ok {
		return QueryDescription{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return QueryDescription{}, false
	}

	desc := QueryDescription{QueryID: id, SourceCount: len(e.sources), StatsReports: len(e.stats)}
	for _, slot := range e.sources {
		if slot.attached() {
			desc.AttachedCount++
		}
		if slot.initiated {
			desc.InitiatedCount++
		}
		if slot.closed {
			desc.ClosedCount++
		}
	}
	return desc, true
}
