package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var participantCharset = regexp.MustCompile(`^[A-Za-z0-9_\-:.@]+$`)

func TestNewParticipantID(t *testing.T) {
	tests := []struct {
		name   string
		user   UserID
		device DeviceID
		want   ParticipantID
	}{
		{"plain", "@alice:example.com", "ABCDEF", "@alice:example.com:ABCDEF"},
		{"spaces and slashes", "@bob:example.com", "dev/1 2", "@bob:example.com:dev_1_2"},
		{"token fallback chars", "@carol:example.com", "syt_Y2Fy+b2w=", "@carol:example.com:syt_Y2Fy_b2w_"},
		{"unicode", "@dörte:example.com", "X", "@d_rte:example.com:X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewParticipantID(tt.user, tt.device)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, participantCharset, string(got))
		})
	}
}

func TestNewParticipantID_Deterministic(t *testing.T) {
	a := NewParticipantID("@alice:example.com", "PHONE")
	b := NewParticipantID("@alice:example.com", "PHONE")
	assert.Equal(t, a, b)
}

func TestNewParticipantID_DistinctDevices(t *testing.T) {
	a := NewParticipantID("@alice:example.com", "PHONE")
	b := NewParticipantID("@alice:example.com", "LAPTOP")
	assert.NotEqual(t, a, b)
}

func TestNewParticipantID_LossyReplacement(t *testing.T) {
	// Only the characters outside the allowed set differ, so the ids collide.
	a := NewParticipantID("@alice:example.com", "dev/1")
	b := NewParticipantID("@alice:example.com", "dev 1")
	assert.Equal(t, ParticipantID("@alice:example.com:dev_1"), a)
	assert.Equal(t, a, b)
}
