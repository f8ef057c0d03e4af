package model

// Role controls which dashboard surfaces a user may reach.
type Role string

// User roles.
const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User identifies the person driving the session. It is loaded from the
// persisted auth blob at startup and passed into the session controller
// explicitly; nothing reads it as ambient global state.
type User struct {
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	MemberID string `json:"member_id,omitempty"`
}

// IsAdmin reports whether the user may browse the review queue and
// override decisions.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
