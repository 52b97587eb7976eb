package domain

import "time"

// ActivityType classifies a calendar activity.
type ActivityType string

const (
	ActivityMeeting  ActivityType = "MEETING"
	ActivityCall     ActivityType = "CALL"
	ActivityTask     ActivityType = "TASK"
	ActivityEvent    ActivityType = "EVENT"
	ActivityReminder ActivityType = "REMINDER"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityMeeting, ActivityCall, ActivityTask, ActivityEvent, ActivityReminder:
		return true
	}
	return false
}

// Activity is a calendar entry independent of boards. Its membership is
// the organizer plus the participant set.
type Activity struct {
	ID             int64
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Type           ActivityType
	OrganizerID    int64
	ParticipantIDs []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasParticipant reports whether userID is in the participant set.
func (a Activity) HasParticipant(userID int64) bool {
	for _, id := range a.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}
