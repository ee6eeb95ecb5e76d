package resultrouter

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kestrelql/resultrouter/internal/logging"
	"github.com/kestrelql/resultrouter/internal/queryid"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

// streamKey names one (query, source) pair a stream has initiated, so
// the handler knows which sources to MarkClosed on half-close.
type streamKey struct {
	query  queryid.ID
	source int64
}

// streamSession is the per-RPC-stream state the stream handler (spec
// §4.4) keeps while reading a single TransferResultChunk invocation.
// One streamSession exists per goroutine the gRPC runtime spins up for
// an active stream.
type streamSession struct {
	registry  *Registry
	stream    routerpb.ResultSinkService_TransferResultChunkServer
	initiated map[streamKey]struct{}
}

// TransferResultChunk implements routerpb.ResultSinkServiceServer. It
// reads chunks until half-close or error, routing each to the
// consumer registry, and replies with the single terminal response
// spec §6 describes.
func (s *Service) TransferResultChunk(stream routerpb.ResultSinkService_TransferResultChunkServer) error {
	sess := &streamSession{
		registry:  s.registry,
		stream:    stream,
		initiated: make(map[streamKey]struct{}),
	}
	return sess.run()
}

func (sess *streamSession) run() error {
	for {
		req, err := sess.stream.Recv()
		if err == io.EOF {
			sess.closeInitiatedSources()
			return sess.stream.Send(&routerpb.TransferResultChunkResponse{Success: true})
		}
		if err != nil {
			// Transport error mid-stream is treated as half-close for
			// every source this stream initiated (spec §4.4, §4.7,
			// §5): never surfaced as a router failure.
			sess.closeInitiatedSources()
			return sess.stream.Send(&routerpb.TransferResultChunkResponse{
				Success: false,
				Message: err.Error(),
			})
		}

		if err := sess.handle(req); err != nil {
			sess.closeInitiatedSources()
			_ = sess.stream.Send(&routerpb.TransferResultChunkResponse{
				Success: false,
				Message: err.Error(),
			})
			return err
		}
	}
}

func (sess *streamSession) handle(req *routerpb.TransferResultChunkRequest) error {
	chunk := decodeChunk(req)

	switch chunk.Kind {
	case ChunkMalformed:
		logging.L.Warn("malformed chunk; failing stream", queryField(chunk.QueryID))
		return status.Error(codes.InvalidArgument, "malformed TransferResultChunkRequest")

	case ChunkStreamInit:
		if err := sess.registry.MarkInitiated(chunk.QueryID, chunk.SourceID); err != nil {
			if kind, _ := KindOf(err); kind == KindFailedPrecondition {
				logging.L.Warn("duplicate StreamInit; failing stream",
					queryField(chunk.QueryID), sourceField(chunk.SourceID))
				return status.Error(codes.FailedPrecondition, "duplicate StreamInit for source")
			}
			return status.Error(codes.Internal, err.Error())
		}
		sess.initiated[streamKey{chunk.QueryID, chunk.SourceID}] = struct{}{}
		return nil

	case ChunkRowBatch:
		if err := sess.registry.Route(chunk.QueryID, chunk.SourceID, chunk.Batch); err != nil {
			if kind, _ := KindOf(err); kind == KindQueryDeleted {
				logging.L.Debug("row batch for deleted query; cancelling stream",
					queryField(chunk.QueryID), sourceField(chunk.SourceID))
				return status.Error(codes.Aborted, "query has been deleted")
			}
			return status.Error(codes.Internal, err.Error())
		}
		if isEOS(chunk.Batch) {
			_ = sess.registry.MarkClosed(chunk.QueryID, chunk.SourceID)
		}
		return nil

	case ChunkStats:
		sess.registry.AppendStats(chunk.QueryID, chunk.Stats)
		return nil

	default:
		return status.Error(codes.Internal, "unreachable chunk kind")
	}
}

// closeInitiatedSources implements "On half-close, for every source_id
// this stream initiated, call MarkClosed" (spec §4.4). MarkClosed is
// idempotent, so a source already closed via an EOS-flagged batch is
// unaffected. One stream can have initiated many (query, source) pairs
// before half-closing. MarkClosed treats a deleted or unknown query as
// nothing to close, so a racing DeleteQuery does not stop the loop;
// every MarkClosed runs and any errors are aggregated rather than
// short-circuited.
func (sess *streamSession) closeInitiatedSources() {
	var errs *multierror.Error
	for key := range sess.initiated {
		if err := sess.registry.MarkClosed(key.query, key.source); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if errs != nil {
		logging.L.Warn("errors closing initiated sources", errField(errs.ErrorOrNil()))
	}
}
