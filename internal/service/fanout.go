package service

import (
	"context"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
)

// notifyRosterExcept dispatches the message to every roster member
// except the actor. Called only after the triggering mutation has
// committed; the recipient set never includes the acting user.
func notifyRosterExcept(ctx context.Context, n Notifier, roster []dom.Membership, actorID int64, message string) {
	for _, m := range roster {
		if m.UserID == actorID {
			continue
		}
		n.Send(ctx, m.UserID, message)
	}
}

// notifyUsersExcept dispatches the message to every listed user except
// the actor. Used for activity participants.
func notifyUsersExcept(ctx context.Context, n Notifier, userIDs []int64, actorID int64, message string) {
	for _, id := range userIDs {
		if id == actorID {
			continue
		}
		n.Send(ctx, id, message)
	}
}
