package resultrouter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelql/resultrouter/internal/routerpb"
)

func TestConsumerSlot_ProducerFirstThenAttachDrains(t *testing.T) {
	slot := newConsumerSlot(1, newMetricsSet())

	slot.route(&routerpb.RowBatchData{Data: []byte{1, 2}})
	slot.route(&routerpb.RowBatchData{Data: []byte{4, 6}})
	require.NoError(t, slot.markInitiated())
	slot.markClosed()

	consumer := &fakeConsumer{}
	wakes := &wakeCounter{}
	require.NoError(t, slot.attach(consumer, wakes.wake))

	batches, initiated, closed := consumer.snapshot()
	require.Len(t, batches, 2)
	require.Equal(t, []byte{1, 2}, batches[0].GetData())
	require.Equal(t, []byte{4, 6}, batches[1].GetData())
	require.True(t, initiated)
	require.True(t, closed)
	require.EqualValues(t, 2, wakes.count())
}

func TestConsumerSlot_AttachFirstThenRouteDeliversDirectly(t *testing.T) {
	slot := newConsumerSlot(1, newMetricsSet())
	consumer := &fakeConsumer{}
	wakes := &wakeCounter{}
	require.NoError(t, slot.attach(consumer, wakes.wake))

	batches, initiated, _ := consumer.snapshot()
	require.Empty(t, batches)
	require.False(t, initiated)

	slot.route(&routerpb.RowBatchData{Data: []byte{9}})
	require.NoError(t, slot.markInitiated())

	batches, initiated, _ = consumer.snapshot()
	require.Len(t, batches, 1)
	require.True(t, initiated)
	require.EqualValues(t, 1, wakes.count())
}

func TestConsumerSlot_AttachIdempotentForSameConsumer(t *testing.T) {
	slot := newConsumerSlot(1, newMetricsSet())
	consumer := &fakeConsumer{}
	require.NoError(t, slot.attach(consumer, func() {}))
	require.NoError(t, slot.attach(consumer, func() {}))
}

func TestConsumerSlot_AttachConflictingConsumerFails(t *testing.T) {
	slot := newConsumerSlot(1, newMetricsSet())
	require.NoError(t, slot.attach(&fakeConsumer{}, func() {}))

	err := slot.attach(&fakeConsumer{}, func() {})
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindAlreadyRegistered, kind)
}

func TestConsumerSlot_DuplicateMarkInitiatedFails(t *testing.T) {
	slot := newConsumerSlot(1, newMetricsSet())
	require.NoError(t, slot.markInitiated())

	err := slot.markInitiated()
	require.Error(t, err)
	kind, _ := KindOf(err)
	require.Equal(t, KindFailedPrecondition, kind)
}

func TestConsumerSlot_MarkClosedIsIdempotent(t *testing.T) {
	slot := newConsumerSlot(1, newMetricsSet())
	slot.markClosed()
	slot.markClosed() // must not panic or error

	consumer := &fakeConsumer{}
	require.NoError(t, slot.attach(consumer, func() {}))
	_, _, closed := consumer.snapshot()
	require.True(t, closed)
}

func TestSafeWake_RecoversPanic(t *testing.T) {
	require.NotPanics(t, func() {
		safeWake(func() { panic("boom") })
	})
}

func TestSafeWake_NilIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		safeWake(nil)
	})
}
