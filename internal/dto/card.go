package dto

import "time"

// CreateCardRequest is the JSON body for POST /cards.
type CreateCardRequest struct {
	ListID      int64  `json:"list_id" binding:"required"`
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Tag         string `json:"tag" binding:"max=64"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCardRequest is the JSON body for PUT /cards/:id. A ListID
// different from the card's current list moves the card there.
type UpdateCardRequest struct {
	Title       string `json:"title" binding:"omitempty,min=1,max=120"`
	Tag         string `json:"tag" binding:"max=64"`
	Description string `json:"description" binding:"max=2000"`
	ListID      *int64 `json:"list_id"`
}

// CardResponse is the JSON shape of a card.
type CardResponse struct {
	ID          int64     `json:"id"`
	ListID      int64     `json:"list_id"`
	Title       string    `json:"title"`
	Tag         string    `json:"tag"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListCardsResponse wraps the card collection.
type ListCardsResponse struct {
	Items []CardResponse `json:"items"`
}

// CreateCommentRequest is the JSON body for POST /comments.
type CreateCommentRequest struct {
	CardID  int64  `json:"card_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse is the JSON shape of a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	CardID    int64     `json:"card_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCommentsResponse wraps the comment collection.
type ListCommentsResponse struct {
	Items []CommentResponse `json:"items"`
}
