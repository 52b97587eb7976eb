package handlers

import (
	"net/http"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and user directory endpoints.
type UserHandler struct {
	svc      *service.UserService
	sessions *auth.Store
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(svc *service.UserService, sessions *auth.Store) *UserHandler {
	return &UserHandler{svc: svc, sessions: sessions}
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = dto.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Items: out})
}

// UpdateProfile godoc
// @Summary      Update the actor's username and email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Profile body"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	u, err := h.svc.UpdateProfile(c.Request.Context(), actor.UserID, req.Username, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email})
}

// UpdatePassword godoc
// @Summary      Change the actor's password
// @Tags         users
// @Accept       json
// @Security     CookieAuth
// @Param        body  body  dto.UpdatePasswordRequest  true  "Password body"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /users/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.UpdatePassword(c.Request.Context(), actor.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAccount godoc
// @Summary      Delete the actor's own account
// @Tags         users
// @Accept       json
// @Security     CookieAuth
// @Param        body  body  dto.DeleteAccountRequest  true  "Password confirmation"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /users [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.DeleteAccount(c.Request.Context(), actor.UserID, req.Password); err != nil {
		respondError(c, err)
		return
	}
	if sessionID, err := c.Cookie(sessionCookieName); err == nil && sessionID != "" {
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
