package handlers

import (
	"net/http"
	"time"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles calendar activity endpoints.
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler returns a new ActivityHandler.
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// Create godoc
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateActivityRequest  true  "Activity body"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	a, err := h.svc.CreateActivity(c.Request.Context(), actor.UserID, req.Title, req.Description,
		req.StartTime, req.EndTime, dom.ActivityType(req.Type), req.ParticipantIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activityToResponse(a))
}

// List godoc
// @Summary      List the actor's activities
// @Tags         activities
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListActivitiesResponse
// @Failure      500  {object}  map[string]string
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	actor := auth.IdentityFromContext(c)
	list, err := h.svc.GetUserActivities(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activitiesToResponse(list))
}

// ListByDateRange godoc
// @Summary      List the actor's activities in a time window
// @Tags         activities
// @Produce      json
// @Security     CookieAuth
// @Param        start  query     string  true  "Window start (RFC 3339)"
// @Param        end    query     string  true  "Window end (RFC 3339)"
// @Success      200    {object}  dto.ListActivitiesResponse
// @Failure      400    {object}  map[string]string
// @Router       /activities/date-range [get]
func (h *ActivityHandler) ListByDateRange(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return
	}
	actor := auth.IdentityFromContext(c)
	list, err := h.svc.GetUserActivitiesByDateRange(c.Request.Context(), actor.UserID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activitiesToResponse(list))
}

// GetByID godoc
// @Summary      Get an activity by ID
// @Tags         activities
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Activity ID"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [get]
func (h *ActivityHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetActivity(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activityToResponse(a))
}

// Update godoc
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Activity ID"
// @Param        body  body      dto.UpdateActivityRequest  true  "Update body"
// @Success      200   {object}  dto.ActivityResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /activities/{id} [put]
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.UpdateActivity(c.Request.Context(), id, req.Title, req.Description,
		req.StartTime, req.EndTime, dom.ActivityType(req.Type), req.ParticipantIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activityToResponse(a))
}

// Delete godoc
// @Summary      Delete an activity
// @Tags         activities
// @Security     CookieAuth
// @Param        id   path  int  true  "Activity ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.DeleteActivity(c.Request.Context(), actor.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddParticipant godoc
// @Summary      Add a participant to an activity
// @Tags         activities
// @Security     CookieAuth
// @Param        id      path  int  true  "Activity ID"
// @Param        userId  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/participants/{userId} [post]
func (h *ActivityHandler) AddParticipant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.AddParticipant(c.Request.Context(), actor.UserID, id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveParticipant godoc
// @Summary      Remove a participant from an activity
// @Tags         activities
// @Security     CookieAuth
// @Param        id      path  int  true  "Activity ID"
// @Param        userId  path  int  true  "User ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /activities/{id}/participants/{userId} [delete]
func (h *ActivityHandler) RemoveParticipant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	if err := h.svc.RemoveParticipant(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func activityToResponse(a dom.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		Type:           string(a.Type),
		OrganizerID:    a.OrganizerID,
		ParticipantIDs: a.ParticipantIDs,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func activitiesToResponse(list []dom.Activity) dto.ListActivitiesResponse {
	out := make([]dto.ActivityResponse, len(list))
	for i := range list {
		out[i] = activityToResponse(list[i])
	}
	return dto.ListActivitiesResponse{Items: out}
}
