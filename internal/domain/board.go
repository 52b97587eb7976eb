package domain

import "time"

// Role is the level of access a member holds on a board.
// ADMIN and OWNER may rename the board and manage the roster;
// MEMBER may work with lists, cards and comments only.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
	RoleMember Role = "MEMBER"
)

// Elevated reports whether the role grants structural board operations.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleOwner
}

// Board is a shared workspace containing lists of cards.
type Board struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Membership binds a user to a board with a role.
// (BoardID, UserID) is unique: re-adding a user updates the role in place.
type Membership struct {
	ID      int64
	BoardID int64
	UserID  int64
	Role    Role
}

// List is a named column of cards, exclusively owned by one board.
type List struct {
	ID        int64
	BoardID   int64
	Name      string
	Color     string
	CreatedAt time.Time
}
