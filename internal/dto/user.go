package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// UpdateProfileRequest is the JSON body for PUT /users/profile.
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdatePasswordRequest is the JSON body for PUT /users/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=1"`
}

// DeleteAccountRequest is the JSON body for DELETE /users.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// UserResponse is returned when user info is needed (e.g. after login).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// ListUsersResponse wraps the user collection.
type ListUsersResponse struct {
	Items []UserResponse `json:"items"`
}
