package orch

import (
	"context"
	"fmt"

	"github.com/dkeye/callfocus/internal/app"
	"github.com/dkeye/callfocus/internal/core"
	"github.com/dkeye/callfocus/internal/domain"
	"github.com/dkeye/callfocus/internal/metrics"
	"github.com/rs/zerolog/log"
)

// TokenRequest is a parsed get_token call.
type TokenRequest struct {
	Room        domain.RoomID
	AccessToken string
	// DeviceID is optional; a prefix of AccessToken stands in when empty.
	DeviceID domain.DeviceID
}

// Orchestrator turns a verified room member into a meeting participant.
type Orchestrator struct {
	Identity    core.IdentityAuthority
	Directory   core.Directory
	Meetings    core.MeetingManager
	Credentials core.CredentialIssuer
	Policy      app.Policy
}

// IssueToken verifies the caller, checks membership and returns a participant
// credential. A meeting that vanished between lookup and issuance is replaced
// once; the second attempt is final.
func (o *Orchestrator) IssueToken(ctx context.Context, req TokenRequest) (domain.Credential, error) {
	if req.Room == "" || req.AccessToken == "" {
		return "", ErrMissingParameter
	}
	logger := log.With().Str("module", "orch").Str("room", string(req.Room)).Logger()

	userID, err := o.Identity.Introspect(ctx, req.AccessToken)
	if err != nil {
		logger.Info().Err(err).Msg("openid token rejected")
		return "", fmt.Errorf("%w: %w", ErrIdentityVerificationFailed, err)
	}
	user, err := domain.NewUser(userID, "")
	if err != nil {
		logger.Info().Err(err).Msg("openid userinfo without subject")
		return "", fmt.Errorf("%w: %w", ErrIdentityVerificationFailed, err)
	}
	logger = logger.With().Str("user", string(userID)).Logger()

	device := req.DeviceID
	if device == "" {
		// Weak: tokens sharing a prefix map to the same device.
		device, _ = domain.FallbackDeviceID(req.AccessToken)
	}

	membership, err := o.Directory.Membership(ctx, req.Room, userID)
	if err != nil {
		logger.Error().Err(err).Msg("membership lookup failed")
		return "", fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}
	if o.policy().OnMembership(req.Room, userID, membership) != app.Admit {
		logger.Info().Str("membership", string(membership)).Msg("not a joined member")
		return "", ErrNotAMember
	}

	o.resolveDisplayName(ctx, user)

	meeting, err := o.Meetings.GetOrCreate(ctx, req.Room)
	if err != nil {
		logger.Error().Err(err).Msg("failed to get or create meeting")
		return "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	participant := domain.NewParticipantID(userID, device)
	cred, err := o.Credentials.Issue(ctx, meeting, userID, device, user.Name())
	if err == nil {
		logger.Info().Str("meeting", string(meeting)).Str("participant", string(participant)).Msg("participant token issued")
		return cred, nil
	}
	if !domain.IsMeetingExpired(err) {
		logger.Error().Err(err).Str("meeting", string(meeting)).Str("participant", string(participant)).Msg("add participant failed")
		return "", fmt.Errorf("%w: %w", ErrSessionJoinFailed, err)
	}

	metrics.RecordExpiredRetry()
	logger.Warn().Str("meeting", string(meeting)).Msg("meeting expired, recreating once")
	if err := o.Meetings.Invalidate(ctx, req.Room); err != nil {
		// GetOrCreate probes the stale binding again and evicts it.
		logger.Warn().Err(err).Msg("invalidate failed")
	}

	meeting, err = o.Meetings.GetOrCreate(ctx, req.Room)
	if err != nil {
		logger.Error().Err(err).Msg("retry: failed to get or create meeting")
		return "", fmt.Errorf("%w: %w", ErrSessionJoinFailed, err)
	}
	cred, err = o.Credentials.Issue(ctx, meeting, userID, device, user.Name())
	if err != nil {
		logger.Error().Err(err).Str("meeting", string(meeting)).Str("participant", string(participant)).Msg("retry: add participant failed")
		return "", fmt.Errorf("%w: %w", ErrSessionJoinFailed, err)
	}
	logger.Info().Str("meeting", string(meeting)).Str("participant", string(participant)).Msg("participant token issued after retry")
	return cred, nil
}

// resolveDisplayName never fails; a missing profile leaves the id as the name.
func (o *Orchestrator) resolveDisplayName(ctx context.Context, user *domain.User) {
	name, err := o.Directory.DisplayName(ctx, user.ID)
	if err != nil {
		log.Warn().Str("module", "orch").Str("user", string(user.ID)).Err(err).Msg("display name lookup failed")
		return
	}
	user.DisplayName = name
}

func (o *Orchestrator) policy() app.Policy {
	if o.Policy == nil {
		return app.SimplePolicy{}
	}
	return o.Policy
}
