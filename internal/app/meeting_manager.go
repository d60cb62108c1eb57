package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dkeye/callfocus/internal/core"
	"github.com/dkeye/callfocus/internal/domain"
	"github.com/dkeye/callfocus/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	bindingKeyPrefix = "rtk_meeting:"
	// DefaultBindingTTL sits an hour under the backend's 24h meeting lifetime.
	DefaultBindingTTL = 23 * time.Hour
)

// BindingKey is the cache key holding the meeting id for room.
func BindingKey(room domain.RoomID) string {
	return bindingKeyPrefix + string(room)
}

// MeetingManagerImpl binds rooms to backend meetings through a shared cache.
// Concurrent misses for one room may each create a meeting; the last write
// wins and the others expire at the backend.
type MeetingManagerImpl struct {
	backend core.MeetingBackend
	store   core.BindingStore
	ttl     time.Duration
}

func NewMeetingManager(backend core.MeetingBackend, store core.BindingStore, ttl time.Duration) core.MeetingManager {
	if ttl <= 0 {
		ttl = DefaultBindingTTL
	}
	return &MeetingManagerImpl{backend: backend, store: store, ttl: ttl}
}

func (m *MeetingManagerImpl) GetOrCreate(ctx context.Context, room domain.RoomID) (domain.MeetingID, error) {
	logger := log.With().Str("module", "app.meetings").Str("room", string(room)).Logger()
	key := BindingKey(room)

	cached, ok, err := m.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("lookup meeting binding: %w", err)
	}
	if ok && cached != "" {
		id := domain.MeetingID(cached)
		alive, err := m.backend.MeetingAlive(ctx, id)
		if err != nil {
			return "", fmt.Errorf("%w: probe meeting %s: %w", domain.ErrBackendUnavailable, id, err)
		}
		if alive {
			metrics.RecordCacheLookup(metrics.CacheHit)
			return id, nil
		}
		metrics.RecordCacheLookup(metrics.CacheStale)
		logger.Info().Str("meeting", cached).Msg("cached meeting gone, evicting")
		if err := m.store.Delete(ctx, key); err != nil {
			return "", fmt.Errorf("evict meeting binding: %w", err)
		}
	} else {
		metrics.RecordCacheLookup(metrics.CacheMiss)
	}

	id, err := m.backend.CreateMeeting(ctx, domain.MeetingTitle(room))
	if err != nil {
		return "", fmt.Errorf("%w: create meeting: %w", domain.ErrBackendUnavailable, err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: create meeting returned no id: %w", domain.ErrBackendUnavailable, domain.ErrMalformedBackendResponse)
	}
	metrics.RecordMeetingCreated()

	if err := m.store.Set(ctx, key, string(id), m.ttl); err != nil {
		logger.Warn().Err(err).Str("meeting", string(id)).Msg("failed to cache meeting binding")
	}
	logger.Info().Str("meeting", string(id)).Dur("ttl", m.ttl).Msg("meeting created")
	return id, nil
}

func (m *MeetingManagerImpl) Invalidate(ctx context.Context, room domain.RoomID) error {
	if err := m.store.Delete(ctx, BindingKey(room)); err != nil {
		return fmt.Errorf("invalidate meeting binding for %s: %w", room, err)
	}
	log.Info().Str("module", "app.meetings").Str("room", string(room)).Msg("meeting binding invalidated")
	return nil
}
