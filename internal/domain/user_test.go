package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackDeviceID(t *testing.T) {
	id, err := FallbackDeviceID("abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	assert.Equal(t, DeviceID("abcdefghijklmnop"), id)

	id, err = FallbackDeviceID("short")
	require.NoError(t, err)
	assert.Equal(t, DeviceID("short"), id)

	_, err = FallbackDeviceID("")
	assert.ErrorIs(t, err, ErrAccessTokenEmpty)
}

func TestFallbackDeviceID_SharedPrefixCollides(t *testing.T) {
	a, _ := FallbackDeviceID("0123456789abcdefXXXX")
	b, _ := FallbackDeviceID("0123456789abcdefYYYY")
	assert.Equal(t, a, b)
}

func TestUserName(t *testing.T) {
	u, err := NewUser("@alice:example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "@alice:example.com", u.Name())

	u.DisplayName = "Alice"
	assert.Equal(t, "Alice", u.Name())

	_, err = NewUser("", "x")
	assert.ErrorIs(t, err, ErrUserIDEmpty)
}

func TestNewCallConfig(t *testing.T) {
	cfg, err := NewCallConfig("acct", "token", "app", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPresetName, cfg.PresetName)

	for _, missing := range [][3]string{{"", "t", "a"}, {"c", "", "a"}, {"c", "t", ""}} {
		cfg, err := NewCallConfig(missing[0], missing[1], missing[2], "p")
		assert.ErrorIs(t, err, ErrCallConfigIncomplete)
		assert.Nil(t, cfg)
	}
}

func TestMembershipJoined(t *testing.T) {
	assert.True(t, MembershipJoin.Joined())
	for _, m := range []Membership{MembershipInvite, MembershipLeave, MembershipBan, MembershipKnock, MembershipNone} {
		assert.False(t, m.Joined(), string(m))
	}
}

func TestIsMeetingExpired(t *testing.T) {
	assert.True(t, IsMeetingExpired(&MeetingExpiredError{MeetingID: "m1"}))
	assert.False(t, IsMeetingExpired(&BackendError{Status: 500}))
	assert.False(t, IsMeetingExpired(nil))
}
