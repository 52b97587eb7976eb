package handlers

import (
	"net/http"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// ListHandler handles board-list endpoints.
type ListHandler struct {
	svc *service.ListService
}

// NewListHandler returns a new ListHandler.
func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// Create godoc
// @Summary      Create a list on a board
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateListRequest  true  "List body"
// @Success      201   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	l, err := h.svc.CreateList(c.Request.Context(), actor.UserID, req.BoardID, req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listToResponse(l))
}

// ListByBoard godoc
// @Summary      List the lists of a board
// @Tags         lists
// @Produce      json
// @Security     CookieAuth
// @Param        boardId  path      int  true  "Board ID"
// @Success      200      {object}  dto.ListListsResponse
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /lists/board/{boardId} [get]
func (h *ListHandler) ListByBoard(c *gin.Context) {
	boardID, ok := parseID(c, "boardId")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	lists, err := h.svc.GetListsByBoard(c.Request.Context(), actor.UserID, boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ListResponse, len(lists))
	for i := range lists {
		out[i] = listToResponse(lists[i])
	}
	c.JSON(http.StatusOK, dto.ListListsResponse{Items: out})
}

// Update godoc
// @Summary      Rename or recolor a list
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "List ID"
// @Param        body  body      dto.UpdateListRequest  true  "Update body"
// @Success      200   {object}  dto.ListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /lists/{id} [put]
func (h *ListHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	l, err := h.svc.UpdateList(c.Request.Context(), actor.UserID, id, req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listToResponse(l))
}

// Delete godoc
// @Summary      Delete a list and its cards
// @Tags         lists
// @Security     CookieAuth
// @Param        id   path  int  true  "List ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.DeleteList(c.Request.Context(), actor.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func listToResponse(l dom.List) dto.ListResponse {
	return dto.ListResponse{ID: l.ID, BoardID: l.BoardID, Name: l.Name, Color: l.Color, CreatedAt: l.CreatedAt}
}
