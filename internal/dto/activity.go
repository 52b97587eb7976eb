package dto

import "time"

// CreateActivityRequest is the JSON body for POST /activities.
type CreateActivityRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=120"`
	Description    string    `json:"description" binding:"max=2000"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Type           string    `json:"type" binding:"required,oneof=MEETING CALL TASK EVENT REMINDER"`
	ParticipantIDs []int64   `json:"participant_ids"`
}

// UpdateActivityRequest is the JSON body for PUT /activities/:id.
// A non-nil ParticipantIDs replaces the participant set.
type UpdateActivityRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=120"`
	Description    string    `json:"description" binding:"max=2000"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	Type           string    `json:"type" binding:"required,oneof=MEETING CALL TASK EVENT REMINDER"`
	ParticipantIDs []int64   `json:"participant_ids"`
}

// ActivityResponse is the JSON shape of an activity.
type ActivityResponse struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Type           string    `json:"type"`
	OrganizerID    int64     `json:"organizer_id"`
	ParticipantIDs []int64   `json:"participant_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListActivitiesResponse wraps the activity collection.
type ListActivitiesResponse struct {
	Items []ActivityResponse `json:"items"`
}
