// Package rtk talks to the Cloudflare RealtimeKit REST API.
package rtk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dkeye/callfocus/internal/core"
	"github.com/dkeye/callfocus/internal/domain"
	"github.com/dkeye/callfocus/internal/metrics"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "https://api.cloudflare.com/client/v4"
	maxResponseLen = 1 << 20
)

type ClientConfig struct {
	// BaseURL is the API root; DefaultBaseURL when empty.
	BaseURL    string
	HTTPClient *http.Client
	Call       domain.CallConfig
}

// Client implements core.MeetingBackend for one RealtimeKit app.
type Client struct {
	appURL     string
	apiToken   string
	httpClient *http.Client
}

var _ core.MeetingBackend = (*Client)(nil)

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Call.AccountID == "" || cfg.Call.AppID == "" || cfg.Call.APIToken == "" {
		return nil, fmt.Errorf("rtk: %w", domain.ErrCallConfigIncomplete)
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("rtk: invalid base url %q: %w", base, err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	appURL := fmt.Sprintf("%s/accounts/%s/realtime/kit/%s",
		strings.TrimRight(base, "/"),
		url.PathEscape(cfg.Call.AccountID),
		url.PathEscape(cfg.Call.AppID),
	)
	return &Client{appURL: appURL, apiToken: cfg.Call.APIToken, httpClient: httpClient}, nil
}

// resource is the part of a meeting or participant object we read.
type resource struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// envelope covers both response shapes the API has used.
type envelope struct {
	Result *resource `json:"result"`
	Data   *resource `json:"data"`
}

func (e *envelope) pick(field func(*resource) string) string {
	if e.Result != nil {
		if v := field(e.Result); v != "" {
			return v
		}
	}
	if e.Data != nil {
		return field(e.Data)
	}
	return ""
}

type createMeetingRequest struct {
	Title string `json:"title"`
}

type addParticipantRequest struct {
	Name                string `json:"name"`
	PresetName          string `json:"preset_name"`
	CustomParticipantID string `json:"custom_participant_id"`
}

func (c *Client) CreateMeeting(ctx context.Context, title string) (domain.MeetingID, error) {
	defer metrics.ObserveBackend("create_meeting", time.Now())
	body, err := c.doRequest(ctx, http.MethodPost, "/meetings", createMeetingRequest{Title: title})
	if err != nil {
		return "", fmt.Errorf("rtk: create meeting %q: %w", title, err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("rtk: parse create meeting response: %w", domain.ErrMalformedBackendResponse)
	}
	return domain.MeetingID(env.pick(func(r *resource) string { return r.ID })), nil
}

func (c *Client) MeetingAlive(ctx context.Context, id domain.MeetingID) (bool, error) {
	defer metrics.ObserveBackend("get_meeting", time.Now())
	_, err := c.doRequest(ctx, http.MethodGet, "/meetings/"+url.PathEscape(string(id)), nil)
	if err == nil {
		return true, nil
	}
	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) {
		log.Debug().Str("module", "adapters.rtk").Str("meeting", string(id)).Int("status", backendErr.Status).Msg("meeting probe negative")
		return false, nil
	}
	return false, fmt.Errorf("rtk: get meeting %s: %w", id, err)
}

func (c *Client) AddParticipant(ctx context.Context, id domain.MeetingID, req core.ParticipantRequest) (domain.Credential, error) {
	defer metrics.ObserveBackend("add_participant", time.Now())
	path := "/meetings/" + url.PathEscape(string(id)) + "/participants"
	body, err := c.doRequest(ctx, http.MethodPost, path, addParticipantRequest{
		Name:                req.Name,
		PresetName:          req.PresetName,
		CustomParticipantID: string(req.CustomParticipantID),
	})
	if err != nil {
		return "", fmt.Errorf("rtk: add participant to %s: %w", id, err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("rtk: parse add participant response: %w", domain.ErrMalformedBackendResponse)
	}
	return domain.Credential(env.pick(func(r *resource) string { return r.Token })), nil
}

// doRequest returns the body of a 2xx response, *domain.BackendError for any
// other status and a plain error when the request never completed.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.appURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiToken)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseLen))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}
	return nil, &domain.BackendError{Status: response.StatusCode, Body: string(responseBody)}
}
