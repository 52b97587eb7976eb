package dto

import "time"

// NotificationResponse is the JSON shape of a notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"created_at"`
}

// ListNotificationsResponse wraps the notification collection.
type ListNotificationsResponse struct {
	Items []NotificationResponse `json:"items"`
}
