package resultrouter

import (
	"github.com/kestrelql/resultrouter/internal/queryid"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// AppendStats implements the stats aggregator's write side (spec
// §4.5): stats are stored as an append-only list per query, in
// arrival order, independent of any source. Stats for a
// never-referenced query lazily create its entry, just as a row batch
// would, stats-only or not (spec §7: "Stats-only queries ... must
// not leak QueryEntry" — a stats-only query is still deletable via
// DeleteQuery like any other). Stats for a deleted query are dropped.
func (r *Registry) AppendStats(id queryid.ID, stats []*routerpb.AgentExecutionStats) {
	e, _ := r.entry(id, true)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return
	}
	e.stats = append(e.stats, stats...)
}

// GetIncomingWorkerExecStats implements the stats aggregator's read
// side (spec §4.5): a snapshot of the requested agents' stats, taken
// without blocking. Agents that have not yet reported are simply
// absent from the result — the caller is expected to poll.
func (r *Registry) GetIncomingWorkerExecStats(id queryid.ID, agents []queryid.ID) ([]*routerpb.AgentExecutionStats, error) {
	e, ok := r.entry(id, false)
	if !ok {
		return nil, newErr(KindQueryDeleted, "GetIncomingWorkerExecStats", nil)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.deleted {
		return nil, newErr(KindQueryDeleted, "GetIncomingWorkerExecStats", nil)
	}

	wanted := make(map[queryid.ID]struct{}, len(agents))
	for _, a := range agents {
		wanted[a] = struct{}{}
	}

	out := make([]*routerpb.AgentExecutionStats, 0, len(e.stats))
	for _, s := range e.stats {
		aid := queryid.New(s.GetAgentId().GetHighBits(), s.GetAgentId().GetLowBits())
		if _, ok := wanted[aid]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
