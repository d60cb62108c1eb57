package domain

type (
	RoomID    string
	MeetingID string
)

// Membership is the m.room.member state of a user in a room.
type Membership string

const (
	MembershipJoin   Membership = "join"
	MembershipInvite Membership = "invite"
	MembershipLeave  Membership = "leave"
	MembershipBan    Membership = "ban"
	MembershipKnock  Membership = "knock"
	// MembershipNone means the directory holds no member event at all.
	MembershipNone Membership = ""
)

func (m Membership) Joined() bool { return m == MembershipJoin }

// MeetingTitle names the backend meeting so operators can map it back to the room.
func MeetingTitle(room RoomID) string {
	return "matrix-" + string(room)
}
