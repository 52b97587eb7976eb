package handlers

import (
	"net/http"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler handles card-comment endpoints.
type CommentHandler struct {
	svc *service.CommentService
}

// NewCommentHandler returns a new CommentHandler.
func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary      Comment on a card
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCommentRequest  true  "Comment body"
// @Success      201   {object}  dto.CommentResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	cm, err := h.svc.CreateComment(c.Request.Context(), actor.Username, req.CardID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentToResponse(cm))
}

// ListByCard godoc
// @Summary      List the comments of a card
// @Tags         comments
// @Produce      json
// @Security     CookieAuth
// @Param        cardId  path      int  true  "Card ID"
// @Success      200     {object}  dto.ListCommentsResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /comments/card/{cardId} [get]
func (h *CommentHandler) ListByCard(c *gin.Context) {
	cardID, ok := parseID(c, "cardId")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	comments, err := h.svc.GetCommentsByCard(c.Request.Context(), actor.UserID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		out[i] = commentToResponse(comments[i])
	}
	c.JSON(http.StatusOK, dto.ListCommentsResponse{Items: out})
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         comments
// @Security     CookieAuth
// @Param        id   path  int  true  "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.DeleteComment(c.Request.Context(), actor.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func commentToResponse(cm dom.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        cm.ID,
		CardID:    cm.CardID,
		UserID:    cm.UserID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}
