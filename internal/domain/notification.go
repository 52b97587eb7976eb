package domain

import "time"

// Notification is a persisted message for one recipient. It is created
// by the dispatcher on a committed mutation and only ever mutated by
// marking it read.
type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	Seen      bool
	CreatedAt time.Time
}
