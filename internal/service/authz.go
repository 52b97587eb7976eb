package service

import (
	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
)

// Capability is a named elevated permission on a board. Collaboration
// operations (lists, cards, comments) are open to every member and do
// not go through a capability check; structural operations do.
type Capability string

const (
	// CapModifyBoard gates board rename and deletion.
	CapModifyBoard Capability = "MODIFY_BOARD"
	// CapManageMembers gates roster edits.
	CapManageMembers Capability = "MANAGE_MEMBERS"
)

// Authorize checks the actor against the board roster for the given
// capability. Both capabilities currently require an elevated role.
// Returns ErrPermissionDenied when the actor is not a member or holds
// plain MEMBER.
func Authorize(roster []dom.Membership, actorID int64, _ Capability) error {
	for _, m := range roster {
		if m.UserID == actorID {
			if m.Role.Elevated() {
				return nil
			}
			return apperr.ErrPermissionDenied
		}
	}
	return apperr.ErrPermissionDenied
}

// isMember reports whether the actor appears in the roster at any role.
func isMember(roster []dom.Membership, actorID int64) bool {
	for _, m := range roster {
		if m.UserID == actorID {
			return true
		}
	}
	return false
}
