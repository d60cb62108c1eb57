package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkeye/callfocus/internal/domain"
)

func TestSimplePolicy(t *testing.T) {
	p := SimplePolicy{}
	assert.Equal(t, Admit, p.OnMembership(testRoom, "@a:b", domain.MembershipJoin))
	for _, m := range []domain.Membership{
		domain.MembershipInvite,
		domain.MembershipLeave,
		domain.MembershipBan,
		domain.MembershipKnock,
		domain.MembershipNone,
		"JOIN",
	} {
		assert.Equal(t, Deny, p.OnMembership(testRoom, "@a:b", m), string(m))
	}
}
