package core

import (
	"context"
	"time"

	"github.com/dkeye/callfocus/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// IdentityAuthority verifies OpenID access tokens issued by the homeserver.
type IdentityAuthority interface {
	// Introspect returns the user the token was issued for.
	Introspect(ctx context.Context, accessToken string) (domain.UserID, error)
}

// Directory answers room membership and profile questions.
type Directory interface {
	// Membership returns MembershipNone when the user never had a member event.
	Membership(ctx context.Context, room domain.RoomID, user domain.UserID) (domain.Membership, error)
	// DisplayName returns "" when the user has none.
	DisplayName(ctx context.Context, user domain.UserID) (string, error)
}

// ParticipantRequest is what the backend needs to mint a participant token.
type ParticipantRequest struct {
	Name                string
	PresetName          string
	CustomParticipantID domain.ParticipantID
}

// MeetingBackend is the hosted meeting REST API.
// Non-2xx responses come back as *domain.BackendError. A successful response
// that lacks the id or token yields the zero value; callers validate.
type MeetingBackend interface {
	CreateMeeting(ctx context.Context, title string) (domain.MeetingID, error)
	// MeetingAlive is false for any non-2xx answer.
	MeetingAlive(ctx context.Context, id domain.MeetingID) (bool, error)
	AddParticipant(ctx context.Context, id domain.MeetingID, req ParticipantRequest) (domain.Credential, error)
}

// BindingStore is a string key-value store with per-key expiry.
type BindingStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MeetingManager maps rooms to live backend meetings.
type MeetingManager interface {
	GetOrCreate(ctx context.Context, room domain.RoomID) (domain.MeetingID, error)
	Invalidate(ctx context.Context, room domain.RoomID) error
}

// CredentialIssuer mints participant credentials for one meeting.
type CredentialIssuer interface {
	Issue(ctx context.Context, meeting domain.MeetingID, user domain.UserID, device domain.DeviceID, displayName string) (domain.Credential, error)
}
