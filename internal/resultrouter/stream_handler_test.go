package resultrouter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/kestrelql/resultrouter/internal/queryid"
	"github.com/kestrelql/resultrouter/internal/routerpb"
)

func queryIDFromPB(id *routerpb.QueryId) queryid.ID {
	return queryid.New(id.GetHighBits(), id.GetLowBits())
}

// fakeTransferStream is an in-process stand-in for the gRPC-generated
// ResultSinkService_TransferResultChunkServer, fed from a slice of
// requests rather than a real network connection.
type fakeTransferStream struct {
	reqs []*routerpb.TransferResultChunkRequest
	pos  int
	recv error // returned instead of the next queued request, once pos exhausts reqs

	resp *routerpb.TransferResultChunkResponse
}

func (f *fakeTransferStream) Recv() (*routerpb.TransferResultChunkRequest, error) {
	if f.pos < len(f.reqs) {
		r := f.reqs[f.pos]
		f.pos++
		return r, nil
	}
	if f.recv != nil {
		return nil, f.recv
	}
	return nil, io.EOF
}

func (f *fakeTransferStream) Send(resp *routerpb.TransferResultChunkResponse) error {
	f.resp = resp
	return nil
}

func (f *fakeTransferStream) SetHeader(metadata.MD) error { return nil }
func (f *fakeTransferStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeTransferStream) SetTrailer(metadata.MD)       {}
func (f *fakeTransferStream) Context() context.Context     { return context.Background() }
func (f *fakeTransferStream) SendMsg(m interface{}) error   { return nil }
func (f *fakeTransferStream) RecvMsg(m interface{}) error   { return nil }

func rowBatchReq(qid *routerpb.QueryId, source int64, data []byte, eos bool) *routerpb.TransferResultChunkRequest {
	return &routerpb.TransferResultChunkRequest{
		QueryId: qid,
		Payload: &routerpb.TransferResultChunkRequest_QueryResult{
			QueryResult: &routerpb.QueryResultChunk{
				GrpcSourceId: source,
				Result:       &routerpb.QueryResultChunk_RowBatch{RowBatch: &routerpb.RowBatchData{Data: data, Eos: eos}},
			},
		},
	}
}

func streamInitReq(qid *routerpb.QueryId, source int64) *routerpb.TransferResultChunkRequest {
	return &routerpb.TransferResultChunkRequest{
		QueryId: qid,
		Payload: &routerpb.TransferResultChunkRequest_QueryResult{
			QueryResult: &routerpb.QueryResultChunk{
				GrpcSourceId: source,
				Result:       &routerpb.QueryResultChunk_InitiateResultStream{InitiateResultStream: true},
			},
		},
	}
}

func TestTransferResultChunk_CleanHalfClose(t *testing.T) {
	svc := NewService(2)
	qid := &routerpb.QueryId{HighBits: 1, LowBits: 1}

	stream := &fakeTransferStream{reqs: []*routerpb.TransferResultChunkRequest{
		streamInitReq(qid, 1),
		rowBatchReq(qid, 1, []byte{1}, false),
		rowBatchReq(qid, 1, []byte{2}, true),
	}}

	require.NoError(t, svc.TransferResultChunk(stream))
	require.True(t, stream.resp.GetSuccess())

	desc, ok := svc.Admin().DescribeQuery(queryIDFromPB(qid))
	require.True(t, ok)
	require.Equal(t, 1, desc.SourceCount)
	require.Equal(t, 1, desc.InitiatedCount)
	require.Equal(t, 1, desc.ClosedCount)
}

func TestTransferResultChunk_MalformedFailsStream(t *testing.T) {
	svc := NewService(2)
	qid := &routerpb.QueryId{HighBits: 2, LowBits: 2}

	stream := &fakeTransferStream{reqs: []*routerpb.TransferResultChunkRequest{
		{QueryId: qid}, // no payload set at all: malformed
	}}

	err := svc.TransferResultChunk(stream)
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTransferResultChunk_HalfCloseClosesEveryInitiatedSource(t *testing.T) {
	svc := NewService(2)
	qid := &routerpb.QueryId{HighBits: 6, LowBits: 6}

	stream := &fakeTransferStream{reqs: []*routerpb.TransferResultChunkRequest{
		streamInitReq(qid, 1),
		streamInitReq(qid, 2),
		rowBatchReq(qid, 1, []byte{1}, false),
	}}

	require.NoError(t, svc.TransferResultChunk(stream))
	require.True(t, stream.resp.GetSuccess())

	desc, ok := svc.Admin().DescribeQuery(queryIDFromPB(qid))
	require.True(t, ok)
	require.Equal(t, 2, desc.SourceCount)
	require.Equal(t, 2, desc.InitiatedCount)
	require.Equal(t, 2, desc.ClosedCount)
}

func TestTransferResultChunk_DuplicateStreamInitFails(t *testing.T) {
	svc := NewService(2)
	qid := &routerpb.QueryId{HighBits: 3, LowBits: 3}

	stream := &fakeTransferStream{reqs: []*routerpb.TransferResultChunkRequest{
		streamInitReq(qid, 1),
		streamInitReq(qid, 1),
	}}

	err := svc.TransferResultChunk(stream)
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestTransferResultChunk_TransportErrorHalfClosesInitiatedSources(t *testing.T) {
	svc := NewService(2)
	qid := &routerpb.QueryId{HighBits: 4, LowBits: 4}

	stream := &fakeTransferStream{
		reqs: []*routerpb.TransferResultChunkRequest{
			streamInitReq(qid, 1),
		},
		recv: errors.New("connection reset"),
	}

	err := svc.TransferResultChunk(stream)
	require.NoError(t, err) // transport errors are not surfaced as router failures
	require.False(t, stream.resp.GetSuccess())
	require.Contains(t, stream.resp.GetMessage(), "connection reset")

	desc, ok := svc.Admin().DescribeQuery(queryIDFromPB(qid))
	require.True(t, ok)
	require.Equal(t, 1, desc.ClosedCount)
}

func TestTransferResultChunk_DeletedQueryAbortsStream(t *testing.T) {
	svc := NewService(2)
	qid := &routerpb.QueryId{HighBits: 5, LowBits: 5}
	svc.DeleteQuery(queryIDFromPB(qid))

	stream := &fakeTransferStream{reqs: []*routerpb.TransferResultChunkRequest{
		rowBatchReq(qid, 1, []byte{1}, false),
	}}

	err := svc.TransferResultChunk(stream)
	require.Error(t, err)
	require.Equal(t, codes.Aborted, status.Code(err))
}
