package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/dkeye/callfocus/internal/core"
	"github.com/dkeye/callfocus/internal/domain"
)

// CredentialIssuerImpl asks the backend for participant tokens.
// Repeated calls may register several participants with the same custom id.
type CredentialIssuerImpl struct {
	backend core.MeetingBackend
	preset  string
}

func NewCredentialIssuer(backend core.MeetingBackend, cfg domain.CallConfig) core.CredentialIssuer {
	preset := cfg.PresetName
	if preset == "" {
		preset = domain.DefaultPresetName
	}
	return &CredentialIssuerImpl{backend: backend, preset: preset}
}

func (i *CredentialIssuerImpl) Issue(
	ctx context.Context,
	meeting domain.MeetingID,
	user domain.UserID,
	device domain.DeviceID,
	displayName string,
) (domain.Credential, error) {
	name := displayName
	if name == "" {
		name = string(user)
	}

	cred, err := i.backend.AddParticipant(ctx, meeting, core.ParticipantRequest{
		Name:                name,
		PresetName:          i.preset,
		CustomParticipantID: domain.NewParticipantID(user, device),
	})
	if err != nil {
		var backendErr *domain.BackendError
		if errors.As(err, &backendErr) && backendErr.Status == http.StatusNotFound {
			return "", &domain.MeetingExpiredError{MeetingID: meeting}
		}
		return "", err
	}
	if cred == "" {
		return "", domain.ErrMalformedBackendResponse
	}
	return cred, nil
}
