package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"
)

// ActivityService coordinates calendar activities. An activity's
// membership is its organizer plus the participant set; boards are not
// involved.
type ActivityService struct {
	activities repo.ActivityRepo
	users      repo.UserRepo
	notify     Notifier
}

// NewActivityService returns a new ActivityService.
func NewActivityService(activities repo.ActivityRepo, users repo.UserRepo, n Notifier) *ActivityService {
	return &ActivityService{activities: activities, users: users, notify: n}
}

// CreateActivity creates an activity organized by the actor.
// Participant ids are bulk-resolved; ids that resolve to nothing are
// dropped. Every resolved participant except the actor is notified.
func (s *ActivityService) CreateActivity(ctx context.Context, organizerID int64, title, description string, start, end time.Time, typ dom.ActivityType, participantIDs []int64) (dom.Activity, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Activity{}, apperr.BadRequest("activity title is required")
	}
	if !typ.Valid() {
		return dom.Activity{}, apperr.BadRequest("unknown activity type: " + string(typ))
	}
	organizer, err := s.users.GetByID(ctx, organizerID)
	if err != nil {
		return dom.Activity{}, notFoundIfNoRows(err, "User", "id", organizerID)
	}
	resolved, err := s.resolveParticipants(ctx, participantIDs)
	if err != nil {
		return dom.Activity{}, err
	}

	activity, err := s.activities.Create(ctx, dom.Activity{
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Type:        typ,
		OrganizerID: organizerID,
	}, resolved)
	if err != nil {
		return dom.Activity{}, err
	}
	message := fmt.Sprintf("You have been added by %s to a new %s : %s", organizer.Username, activity.Type, activity.Title)
	notifyUsersExcept(ctx, s.notify, activity.ParticipantIDs, organizerID, message)
	return activity, nil
}

// GetActivity returns the activity by id.
func (s *ActivityService) GetActivity(ctx context.Context, id int64) (dom.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return dom.Activity{}, notFoundIfNoRows(err, "Activity", "id", id)
	}
	return a, nil
}

// GetUserActivities returns activities the user organizes or joins.
func (s *ActivityService) GetUserActivities(ctx context.Context, userID int64) ([]dom.Activity, error) {
	return s.activities.ListByUser(ctx, userID)
}

// GetUserActivitiesByDateRange returns the user's activities starting
// inside [start, end].
func (s *ActivityService) GetUserActivitiesByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.Activity, error) {
	return s.activities.ListByUserInRange(ctx, userID, start, end)
}

// UpdateActivity rewrites the activity fields; a non-nil participant
// list replaces the participant set. No notification is sent.
func (s *ActivityService) UpdateActivity(ctx context.Context, id int64, title, description string, start, end time.Time, typ dom.ActivityType, participantIDs []int64) (dom.Activity, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Activity{}, apperr.BadRequest("activity title is required")
	}
	if !typ.Valid() {
		return dom.Activity{}, apperr.BadRequest("unknown activity type: " + string(typ))
	}
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return dom.Activity{}, notFoundIfNoRows(err, "Activity", "id", id)
	}
	var resolved []int64
	if participantIDs != nil {
		if resolved, err = s.resolveParticipants(ctx, participantIDs); err != nil {
			return dom.Activity{}, err
		}
	}

	activity.Title = title
	activity.Description = description
	activity.StartTime = start
	activity.EndTime = end
	activity.Type = typ
	return s.activities.Update(ctx, activity, resolved)
}

// DeleteActivity removes the activity, notifying every participant
// except the actor with data captured before the delete.
func (s *ActivityService) DeleteActivity(ctx context.Context, actorID, id int64) error {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return notFoundIfNoRows(err, "Activity", "id", id)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", actorID)
	}
	if err := s.activities.DeleteCascade(ctx, id); err != nil {
		return err
	}
	message := fmt.Sprintf("%s deleted %s : %s", actor.Username, activity.Type, activity.Title)
	notifyUsersExcept(ctx, s.notify, activity.ParticipantIDs, actorID, message)
	return nil
}

// AddParticipant adds the user to the activity. Idempotent: when the
// user is already a participant nothing is written and nothing is sent.
func (s *ActivityService) AddParticipant(ctx context.Context, actorID, activityID, userID int64) error {
	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return notFoundIfNoRows(err, "Activity", "id", activityID)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", userID)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", actorID)
	}
	added, err := s.activities.AddParticipant(ctx, activityID, userID)
	if err != nil {
		return err
	}
	if added && user.ID != actorID {
		message := fmt.Sprintf("You have been added by %s to a new %s : %s", actor.Username, activity.Type, activity.Title)
		s.notify.Send(ctx, user.ID, message)
	}
	return nil
}

// RemoveParticipant removes the user from the activity. Removing a
// non-participant is a no-op, not an error.
func (s *ActivityService) RemoveParticipant(ctx context.Context, activityID, userID int64) error {
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		return notFoundIfNoRows(err, "Activity", "id", activityID)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return notFoundIfNoRows(err, "User", "id", userID)
	}
	return s.activities.RemoveParticipant(ctx, activityID, userID)
}

// resolveParticipants keeps only ids that resolve to existing users,
// preserving request order.
func (s *ActivityService) resolveParticipants(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[int64]bool, len(users))
	for _, u := range users {
		known[u.ID] = true
	}
	var resolved []int64
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if known[id] && !seen[id] {
			resolved = append(resolved, id)
			seen[id] = true
		}
	}
	return resolved, nil
}
