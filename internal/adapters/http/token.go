package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/callfocus/internal/app/orch"
	"github.com/dkeye/callfocus/internal/domain"
	"github.com/dkeye/callfocus/internal/metrics"
)

type openIDToken struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type,omitempty"`
	MatrixServerName string `json:"matrix_server_name,omitempty"`
	ExpiresIn        int    `json:"expires_in,omitempty"`
}

type tokenMember struct {
	ClaimedDeviceID string `json:"claimed_device_id"`
}

// getTokenRequest accepts both the current and the older client shapes.
type getTokenRequest struct {
	Room              string       `json:"room"`
	RoomID            string       `json:"room_id"`
	DeviceID          string       `json:"device_id"`
	Member            *tokenMember `json:"member"`
	OpenIDToken       *openIDToken `json:"openid_token"`
	IdentityAssertion *openIDToken `json:"identity_assertion"`
}

func (r *getTokenRequest) room() string {
	if r.Room != "" {
		return r.Room
	}
	return r.RoomID
}

func (r *getTokenRequest) deviceID() string {
	if r.DeviceID != "" {
		return r.DeviceID
	}
	if r.Member != nil {
		return r.Member.ClaimedDeviceID
	}
	return ""
}

func (r *getTokenRequest) assertion() *openIDToken {
	if r.OpenIDToken != nil {
		return r.OpenIDToken
	}
	return r.IdentityAssertion
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type tokenHandler struct {
	callConfig *domain.CallConfig
	issuer     TokenIssuer
	readLimit  int64
}

func (h *tokenHandler) issue(c *gin.Context) {
	if h.callConfig == nil || h.issuer == nil {
		respondError(c, errNotConfigured)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.readLimit)
	var body getTokenRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, errBodyTooLarge)
			return
		}
		respondError(c, errInvalidJSON)
		return
	}

	assertion := body.assertion()
	if body.room() == "" || assertion == nil {
		respondError(c, orch.ErrMissingParameter)
		return
	}

	// Backend calls run to completion even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	cred, err := h.issuer.IssueToken(ctx, orch.TokenRequest{
		Room:        domain.RoomID(body.room()),
		AccessToken: assertion.AccessToken,
		DeviceID:    domain.DeviceID(body.deviceID()),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RecordTokenRequest(outcomeSuccess)
	c.JSON(http.StatusOK, tokenResponse{AccessToken: string(cred)})
}

var (
	errNotConfigured = errors.New("calls not configured")
	errInvalidJSON   = errors.New("invalid json body")
	errBodyTooLarge  = errors.New("request body too large")
)

const outcomeSuccess = "success"

type matrixError struct {
	ErrCode string `json:"errcode"`
	Error   string `json:"error"`
}

type errorMapping struct {
	target  error
	status  int
	errcode string
	message string
	outcome string
}

var errorTable = []errorMapping{
	{errNotConfigured, http.StatusServiceUnavailable, "M_UNKNOWN", "Voice/video calls not configured on this server", "not_configured"},
	{errInvalidJSON, http.StatusBadRequest, "M_NOT_JSON", "Invalid JSON", "invalid_json"},
	{errBodyTooLarge, http.StatusRequestEntityTooLarge, "M_TOO_LARGE", "Request body too large", "body_too_large"},
	{orch.ErrMissingParameter, http.StatusBadRequest, "M_MISSING_PARAM", "room and openid_token are required", "missing_parameter"},
	{orch.ErrIdentityVerificationFailed, http.StatusForbidden, "M_FORBIDDEN", "OpenID token verification failed", "identity_rejected"},
	{orch.ErrNotAMember, http.StatusForbidden, "M_FORBIDDEN", "User is not a member of this room", "not_member"},
	{orch.ErrDirectoryUnavailable, http.StatusBadGateway, "M_UNKNOWN", "Failed to verify room membership", "directory_unavailable"},
	{orch.ErrSessionCreationFailed, http.StatusBadGateway, "M_UNKNOWN", "Failed to create call session", "session_creation_failed"},
	{orch.ErrSessionJoinFailed, http.StatusBadGateway, "M_UNKNOWN", "Failed to join call session", "session_join_failed"},
}

var internalError = errorMapping{nil, http.StatusInternalServerError, "M_UNKNOWN", "Internal server error", "internal_error"}

func mapError(err error) errorMapping {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return internalError
}

// respondError never echoes err itself; backend detail stays in the logs.
func respondError(c *gin.Context, err error) {
	m := mapError(err)
	if m.status == http.StatusInternalServerError {
		log.Error().Str("module", "adapters.http").Err(err).Msg("unmapped token error")
	}
	metrics.RecordTokenRequest(m.outcome)
	c.JSON(m.status, matrixError{ErrCode: m.errcode, Error: m.message})
}
