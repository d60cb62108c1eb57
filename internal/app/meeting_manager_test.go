package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkeye/callfocus/internal/core/mocks"
	"github.com/dkeye/callfocus/internal/domain"
)

const testRoom = domain.RoomID("!abc:example.com")

func newTestManager(t *testing.T) (*MeetingManagerImpl, *mocks.MockMeetingBackend, *mocks.MockBindingStore) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockMeetingBackend(ctrl)
	store := mocks.NewMockBindingStore(ctrl)
	mgr := NewMeetingManager(backend, store, time.Hour).(*MeetingManagerImpl)
	return mgr, backend, store
}

func TestGetOrCreate_CacheHitAlive(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, "rtk_meeting:!abc:example.com").Return("m-1", true, nil)
	backend.EXPECT().MeetingAlive(ctx, domain.MeetingID("m-1")).Return(true, nil)
	backend.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).Times(0)

	id, err := mgr.GetOrCreate(ctx, testRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingID("m-1"), id)
}

func TestGetOrCreate_CacheHitDead(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()
	key := BindingKey(testRoom)

	gomock.InOrder(
		store.EXPECT().Get(ctx, key).Return("m-old", true, nil),
		backend.EXPECT().MeetingAlive(ctx, domain.MeetingID("m-old")).Return(false, nil),
		store.EXPECT().Delete(ctx, key).Return(nil),
		backend.EXPECT().CreateMeeting(ctx, "matrix-!abc:example.com").Return(domain.MeetingID("m-new"), nil).Times(1),
		store.EXPECT().Set(ctx, key, "m-new", time.Hour).Return(nil),
	)

	id, err := mgr.GetOrCreate(ctx, testRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingID("m-new"), id)
}

func TestGetOrCreate_Miss(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()
	key := BindingKey(testRoom)

	store.EXPECT().Get(ctx, key).Return("", false, nil)
	backend.EXPECT().MeetingAlive(gomock.Any(), gomock.Any()).Times(0)
	backend.EXPECT().CreateMeeting(ctx, domain.MeetingTitle(testRoom)).Return(domain.MeetingID("m-1"), nil)
	store.EXPECT().Set(ctx, key, "m-1", time.Hour).Return(nil)

	id, err := mgr.GetOrCreate(ctx, testRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingID("m-1"), id)
}

func TestGetOrCreate_CreateFails(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	backend.EXPECT().CreateMeeting(ctx, gomock.Any()).
		Return(domain.MeetingID(""), &domain.BackendError{Status: 500, Body: "boom"}).Times(1)
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := mgr.GetOrCreate(ctx, testRoom)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	var backendErr *domain.BackendError
	assert.ErrorAs(t, err, &backendErr)
}

func TestGetOrCreate_CreateWithoutID(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	backend.EXPECT().CreateMeeting(ctx, gomock.Any()).Return(domain.MeetingID(""), nil)

	_, err := mgr.GetOrCreate(ctx, testRoom)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.ErrorIs(t, err, domain.ErrMalformedBackendResponse)
}

func TestGetOrCreate_ProbeTransportError(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, gomock.Any()).Return("m-1", true, nil)
	backend.EXPECT().MeetingAlive(ctx, domain.MeetingID("m-1")).Return(false, errors.New("dial tcp: timeout"))
	backend.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).Times(0)

	_, err := mgr.GetOrCreate(ctx, testRoom)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestGetOrCreate_CacheWriteFailureStillReturnsMeeting(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, gomock.Any()).Return("", false, nil)
	backend.EXPECT().CreateMeeting(ctx, gomock.Any()).Return(domain.MeetingID("m-1"), nil)
	store.EXPECT().Set(ctx, gomock.Any(), "m-1", gomock.Any()).Return(errors.New("redis down"))

	id, err := mgr.GetOrCreate(ctx, testRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingID("m-1"), id)
}

func TestGetOrCreate_CacheReadFailure(t *testing.T) {
	mgr, backend, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, gomock.Any()).Return("", false, errors.New("redis down"))
	backend.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).Times(0)

	_, err := mgr.GetOrCreate(ctx, testRoom)
	assert.Error(t, err)
}

func TestInvalidate(t *testing.T) {
	mgr, _, store := newTestManager(t)
	ctx := context.Background()

	store.EXPECT().Delete(ctx, BindingKey(testRoom)).Return(nil)
	require.NoError(t, mgr.Invalidate(ctx, testRoom))

	store.EXPECT().Delete(ctx, BindingKey(testRoom)).Return(errors.New("redis down"))
	assert.Error(t, mgr.Invalidate(ctx, testRoom))
}

func TestNewMeetingManager_DefaultTTL(t *testing.T) {
	mgr := NewMeetingManager(nil, nil, 0).(*MeetingManagerImpl)
	assert.Equal(t, DefaultBindingTTL, mgr.ttl)
}
