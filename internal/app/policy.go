package app

import "github.com/dkeye/callfocus/internal/domain"

type AdmissionAction int

const (
	Deny AdmissionAction = iota
	Admit
)

// Policy decides whether a membership state may receive call credentials.
type Policy interface {
	OnMembership(room domain.RoomID, user domain.UserID, membership domain.Membership) AdmissionAction
}

// SimplePolicy admits joined members only.
type SimplePolicy struct{}

func (SimplePolicy) OnMembership(_ domain.RoomID, _ domain.UserID, membership domain.Membership) AdmissionAction {
	if membership.Joined() {
		return Admit
	}
	return Deny
}
