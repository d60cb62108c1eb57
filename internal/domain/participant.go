package domain

import "strings"

type ParticipantID string

// NewParticipantID joins user and device and replaces every character the
// backend does not accept with '_'. The mapping is lossy: device ids that
// differ only in replaced characters ("dev/1", "dev 1") share an id.
func NewParticipantID(user UserID, device DeviceID) ParticipantID {
	raw := string(user) + ":" + string(device)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if allowedParticipantRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return ParticipantID(b.String())
}

func allowedParticipantRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == ':', r == '.', r == '@':
		return true
	}
	return false
}
