package resultrouter

import (
	"github.com/kestrelql/resultrouter/internal/queryid"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// ChunkKind classifies one inbound TransferResultChunkRequest (spec §4.1).
type ChunkKind int

const (
	ChunkMalformed ChunkKind = iota
	ChunkStreamInit
	ChunkRowBatch
	ChunkStats
)

// Chunk is the decoded, typed form of a single inbound
// TransferResultChunkRequest. Kind selects which of the payload fields
// (SourceID, Batch, Stats) is meaningful, as noted beside each field.
type Chunk struct {
	Kind ChunkKind

	QueryID  queryid.ID
	SourceID int64 // valid for ChunkStreamInit, ChunkRowBatch

	Batch *routerpb.RowBatchData // valid for ChunkRowBatch

	Stats []*routerpb.AgentExecutionStats // valid for ChunkStats
}

// decodeChunk classifies req per the ordered rules in spec §4.1:
//  1. execution_and_timing_info present -> Stats
//  2. query_result with initiate_result_stream == true -> StreamInit
//  3. query_result with a row batch (empty or not) -> RowBatch
//  4. otherwise -> Malformed
func decodeChunk(req *routerpb.TransferResultChunkRequest) Chunk {
	if req == nil || req.GetQueryId() == nil {
		return Chunk{Kind: ChunkMalformed}
	}
	qid := queryid.New(req.GetQueryId().GetHighBits(), req.GetQueryId().GetLowBits())

	if info := req.GetExecutionAndTimingInfo(); info != nil {
		return Chunk{Kind: ChunkStats, QueryID: qid, Stats: info.GetAgentExecutionStats()}
	}

	qr := req.GetQueryResult()
	if qr == nil {
		return Chunk{Kind: ChunkMalformed, QueryID: qid}
	}

	switch result := qr.GetResult().(type) {
	case *routerpb.QueryResultChunk_InitiateResultStream:
		if !result.InitiateResultStream {
			// A query_result with an explicit-but-false init flag and
			// no row batch carries nothing routable.
			return Chunk{Kind: ChunkMalformed, QueryID: qid, SourceID: qr.GetGrpcSourceId()}
		}
		return Chunk{Kind: ChunkStreamInit, QueryID: qid, SourceID: qr.GetGrpcSourceId()}
	case *routerpb.QueryResultChunk_RowBatch:
		return Chunk{
			Kind:     ChunkRowBatch,
			QueryID:  qid,
			SourceID: qr.GetGrpcSourceId(),
			Batch:    result.RowBatch,
		}
	default:
		return Chunk{Kind: ChunkMalformed, QueryID: qid, SourceID: qr.GetGrpcSourceId()}
	}
}

// isEOS reports whether batch additionally marks the end of its
// producer's stream for routing purposes (spec §4.1: EOS is not a
// separate chunk kind, just a flagged RowBatch).
func isEOS(batch *routerpb.RowBatchData) bool {
	return batch.GetEos()
}
