package domain

import "time"

// Card belongs to exactly one list and can be moved between lists.
type Card struct {
	ID          int64
	ListID      int64
	Title       string
	Tag         string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CardMember assigns a board member to a card.
type CardMember struct {
	ID     int64
	CardID int64
	UserID int64
}

// Comment is a user's note on a card.
type Comment struct {
	ID        int64
	CardID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}
