package dto

import "time"

// CreateBoardRequest is the JSON body for POST /boards.
type CreateBoardRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// UpdateBoardRequest is the JSON body for PUT /boards/:id.
// NewName is applied only when non-blank; UserIDs are upserted into the
// roster with Role (blank role: MEMBER for new members, keep for
// existing ones).
type UpdateBoardRequest struct {
	NewName string  `json:"new_name" binding:"omitempty,max=120"`
	UserIDs []int64 `json:"user_ids"`
	Role    string  `json:"role" binding:"omitempty,oneof=ADMIN OWNER MEMBER"`
}

// BoardResponse is the JSON shape of a board.
type BoardResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListBoardsResponse wraps the board collection.
type ListBoardsResponse struct {
	Items []BoardResponse `json:"items"`
}

// MemberResponse is one roster entry.
type MemberResponse struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// ListMembersResponse wraps a board roster.
type ListMembersResponse struct {
	Items []MemberResponse `json:"items"`
}

// CreateListRequest is the JSON body for POST /lists.
type CreateListRequest struct {
	BoardID int64  `json:"board_id" binding:"required"`
	Name    string `json:"name" binding:"required,min=1,max=120"`
	Color   string `json:"color" binding:"max=32"`
}

// UpdateListRequest is the JSON body for PUT /lists/:id.
type UpdateListRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=120"`
	Color string `json:"color" binding:"max=32"`
}

// ListResponse is the JSON shape of a board list.
type ListResponse struct {
	ID        int64     `json:"id"`
	BoardID   int64     `json:"board_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ListListsResponse wraps the list collection.
type ListListsResponse struct {
	Items []ListResponse `json:"items"`
}
