// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
)

// DeviceIDFallbackLen is how many leading characters of an OpenID access
// token stand in for a device id when the caller did not send one.
const DeviceIDFallbackLen = 16

var (
	ErrUserIDEmpty      = errors.New("user id empty")
	ErrAccessTokenEmpty = errors.New("access token empty")
)

type (
	UserID   string
	DeviceID string
)

type User struct {
	ID          UserID `json:"id"`
	DisplayName string `json:"displayname,omitempty"`
}

// NewUser rejects an empty id, which is how a verified token without a
// subject surfaces.
func NewUser(id UserID, displayName string) (*User, error) {
	if len(id) == 0 {
		return nil, ErrUserIDEmpty
	}
	return &User{ID: id, DisplayName: displayName}, nil
}

// Name is the label shown to other call participants.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return string(u.ID)
}

// FallbackDeviceID derives a device id from the raw access token.
// Tokens sharing the same prefix collide; callers that care send device_id.
func FallbackDeviceID(accessToken string) (DeviceID, error) {
	if accessToken == "" {
		return "", ErrAccessTokenEmpty
	}
	if len(accessToken) > DeviceIDFallbackLen {
		accessToken = accessToken[:DeviceIDFallbackLen]
	}
	return DeviceID(accessToken), nil
}
