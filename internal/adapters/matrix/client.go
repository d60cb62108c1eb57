// Package matrix verifies OpenID tokens and reads room membership and
// profiles from a Matrix homeserver.
package matrix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dkeye/callfocus/internal/core"
	"github.com/dkeye/callfocus/internal/domain"
	"github.com/dkeye/callfocus/internal/metrics"
)

const maxResponseLen = 1 << 20

type ClientConfig struct {
	// HomeserverURL is the base URL of the homeserver, e.g. https://example.com.
	HomeserverURL string
	// AccessToken authenticates membership and profile reads.
	AccessToken string
	HTTPClient  *http.Client
}

// Client serves as both core.IdentityAuthority and core.Directory.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

var (
	_ core.IdentityAuthority = (*Client)(nil)
	_ core.Directory         = (*Client)(nil)
)

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.HomeserverURL == "" {
		return nil, fmt.Errorf("matrix: HomeserverURL is required")
	}
	if _, err := url.Parse(cfg.HomeserverURL); err != nil {
		return nil, fmt.Errorf("matrix: invalid HomeserverURL %q: %w", cfg.HomeserverURL, err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.HomeserverURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
	}, nil
}

type userInfoResponse struct {
	Sub string `json:"sub"`
}

// Introspect asks the homeserver who an OpenID access token belongs to.
func (c *Client) Introspect(ctx context.Context, accessToken string) (domain.UserID, error) {
	defer metrics.ObserveBackend("userinfo", time.Now())
	query := url.Values{"access_token": []string{accessToken}}
	body, err := c.doRequest(ctx, "/_matrix/federation/v1/openid/userinfo", false, query)
	if err != nil {
		return "", fmt.Errorf("matrix: openid userinfo: %w", err)
	}
	var response userInfoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("matrix: parse userinfo response: %w", err)
	}
	if response.Sub == "" {
		return "", ErrNoSubject
	}
	return domain.UserID(response.Sub), nil
}

type memberContent struct {
	Membership string `json:"membership"`
}

func (c *Client) Membership(ctx context.Context, room domain.RoomID, user domain.UserID) (domain.Membership, error) {
	defer metrics.ObserveBackend("membership", time.Now())
	path := fmt.Sprintf("/_matrix/client/v3/rooms/%s/state/m.room.member/%s",
		url.PathEscape(string(room)),
		url.PathEscape(string(user)),
	)
	body, err := c.doRequest(ctx, path, true, nil)
	if isNotFound(err) {
		return domain.MembershipNone, nil
	}
	if err != nil {
		return domain.MembershipNone, fmt.Errorf("matrix: membership of %s in %s: %w", user, room, err)
	}
	var content memberContent
	if err := json.Unmarshal(body, &content); err != nil {
		return domain.MembershipNone, fmt.Errorf("matrix: parse member event: %w", err)
	}
	return domain.Membership(content.Membership), nil
}

type displayNameResponse struct {
	DisplayName string `json:"displayname"`
}

func (c *Client) DisplayName(ctx context.Context, user domain.UserID) (string, error) {
	defer metrics.ObserveBackend("displayname", time.Now())
	path := "/_matrix/client/v3/profile/" + url.PathEscape(string(user)) + "/displayname"
	body, err := c.doRequest(ctx, path, true, nil)
	if isNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("matrix: display name of %s: %w", user, err)
	}
	var response displayNameResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("matrix: parse display name response: %w", err)
	}
	return response.DisplayName, nil
}

// doRequest issues a GET and returns the body of a 2xx response. Other
// statuses come back as *MatrixError.
func (c *Client) doRequest(ctx context.Context, path string, authenticated bool, query url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if query != nil {
		requestURL += "?" + query.Encode()
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if authenticated && c.accessToken != "" {
		request.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseLen))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	matrixErr := &MatrixError{StatusCode: response.StatusCode}
	if jsonErr := json.Unmarshal(responseBody, matrixErr); jsonErr != nil || matrixErr.Code == "" {
		matrixErr.Code = ErrCodeUnknown
		matrixErr.Message = http.StatusText(response.StatusCode)
	}
	return nil, matrixErr
}
