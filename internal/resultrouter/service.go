package resultrouter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kestrelql/resultrouter/internal/queryid"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// Service is the router: an explicitly constructed instance handed
// both to the gRPC server (as a routerpb.ResultSinkServiceServer) and
// to the query executor (for AddGRPCSourceNode/DeleteQuery/
// GetIncomingWorkerExecStats) — spec §9 design notes reject a
// process-wide singleton in favor of exactly this shape.
type Service struct {
	routerpb.UnimplementedResultSinkServiceServer

	registry *Registry
}

// NewService builds a router backed by a registry sharded into
// registryShards independent locks (spec §9: "shard the registry by
// query_id hash" when the per-query lock is contended).
func NewService(registryShards int) *Service {
	return &Service{registry: NewRegistry(registryShards)}
}

// Metrics exposes the Prometheus collectors an operator registers
// against their own registry (see cmd/routerd).
func (s *Service) Metrics() []prometheus.Collector {
	return s.registry.metrics.Collectors()
}

// AddGRPCSourceNode is the executor-facing registration call (spec §6
// local interface / §4.2).
func (s *Service) AddGRPCSourceNode(id queryid.ID, source int64, consumer Consumer, wake WakeFunc) error {
	return s.registry.AddGRPCSourceNode(id, source, consumer, wake)
}

// DeleteQuery is the executor-facing teardown call (spec §6 local
// interface / §4.6).
func (s *Service) DeleteQuery(id queryid.ID) {
	s.registry.DeleteQuery(id)
}

// GetIncomingWorkerExecStats is the executor-facing stats read call
// (spec §6 local interface / §4.5).
func (s *Service) GetIncomingWorkerExecStats(id queryid.ID, agents []queryid.ID) ([]*routerpb.AgentExecutionStats, error) {
	return s.registry.GetIncomingWorkerExecStats(id, agents)
}
