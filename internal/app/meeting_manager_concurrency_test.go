package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkeye/callfocus/internal/adapters/kv"
	"github.com/dkeye/callfocus/internal/core/mocks"
	"github.com/dkeye/callfocus/internal/domain"
)

type createResult struct {
	id  domain.MeetingID
	err error
}

// Two misses on one room are not serialized: both create a meeting and the
// later cache write wins.
func TestGetOrCreate_ConcurrentMissesBothCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockMeetingBackend(ctrl)
	store := kv.NewMemoryStore()
	mgr := NewMeetingManager(backend, store, time.Hour)

	gates := []chan struct{}{make(chan struct{}), make(chan struct{})}
	var releaseOnce [2]sync.Once
	release := func(i int) { releaseOnce[i].Do(func() { close(gates[i]) }) }
	t.Cleanup(func() { release(0); release(1) })

	entered := make(chan struct{}, 2)
	var calls atomic.Int32
	backend.EXPECT().
		CreateMeeting(gomock.Any(), domain.MeetingTitle(testRoom)).
		Times(2).
		DoAndReturn(func(context.Context, string) (domain.MeetingID, error) {
			n := calls.Add(1)
			entered <- struct{}{}
			<-gates[n-1]
			return domain.MeetingID(fmt.Sprintf("m-%d", n)), nil
		})

	results := make(chan createResult, 2)
	for i := 0; i < 2; i++ {
		go func() {
			id, err := mgr.GetOrCreate(context.Background(), testRoom)
			results <- createResult{id, err}
		}()
	}

	for i := 0; i < 2; i++ {
		select {
		case <-entered:
		case <-time.After(2 * time.Second):
			t.Fatal("second CreateMeeting never started; GetOrCreate is serialized")
		}
	}

	release(0)
	first := <-results
	require.NoError(t, first.err)
	assert.Equal(t, domain.MeetingID("m-1"), first.id)

	release(1)
	second := <-results
	require.NoError(t, second.err)
	assert.Equal(t, domain.MeetingID("m-2"), second.id)

	cached, ok, err := store.Get(context.Background(), BindingKey(testRoom))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "m-2", cached)
	assert.EqualValues(t, 2, calls.Load())
}
