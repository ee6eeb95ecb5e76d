// Package resultrouter demultiplexes inbound bidirectional gRPC
// streams of query result chunks onto in-process consumer nodes keyed
// by (query_id, source_id), tolerating either registration order
// between remote producers and local consumers.
//
// The entry point is Service, constructed with NewService and handed
// both to a grpc.Server (it implements routerpb.ResultSinkServiceServer)
// and to the query executor (AddGRPCSourceNode, DeleteQuery,
// GetIncomingWorkerExecStats).
package resultrouter
