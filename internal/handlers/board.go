package handlers

import (
	"net/http"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles board CRUD and roster edits.
type BoardHandler struct {
	svc *service.BoardService
}

// NewBoardHandler returns a new BoardHandler.
func NewBoardHandler(svc *service.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Create godoc
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateBoardRequest  true  "Board body"
// @Success      201   {object}  dto.BoardResponse
// @Failure      400   {object}  map[string]string
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	b, err := h.svc.CreateBoard(c.Request.Context(), actor.UserID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, boardToResponse(b))
}

// List godoc
// @Summary      List the actor's boards
// @Tags         boards
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListBoardsResponse
// @Failure      500  {object}  map[string]string
// @Router       /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	actor := auth.IdentityFromContext(c)
	list, err := h.svc.GetBoards(c.Request.Context(), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.BoardResponse, len(list))
	for i := range list {
		out[i] = boardToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListBoardsResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a board by ID
// @Tags         boards
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {object}  dto.BoardResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	b, err := h.svc.GetBoard(c.Request.Context(), actor.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardToResponse(b))
}

// Members godoc
// @Summary      List board members
// @Tags         boards
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {object}  dto.ListMembersResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id}/members [get]
func (h *BoardHandler) Members(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	roster, err := h.svc.GetMembers(c.Request.Context(), actor.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.MemberResponse, len(roster))
	for i, m := range roster {
		out[i] = dto.MemberResponse{UserID: m.UserID, Role: string(m.Role)}
	}
	c.JSON(http.StatusOK, dto.ListMembersResponse{Items: out})
}

// Update godoc
// @Summary      Rename a board and/or add members
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Board ID"
// @Param        body  body      dto.UpdateBoardRequest  true  "Update body"
// @Success      200   {object}  dto.BoardResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	b, err := h.svc.UpdateBoard(c.Request.Context(), actor.UserID, id, req.NewName, req.UserIDs, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardToResponse(b))
}

// Delete godoc
// @Summary      Delete a board
// @Tags         boards
// @Security     CookieAuth
// @Param        id   path  int  true  "Board ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.DeleteBoard(c.Request.Context(), actor.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveMember godoc
// @Summary      Remove a member from a board
// @Tags         boards
// @Security     CookieAuth
// @Param        id      path  int  true  "Board ID"
// @Param        userId  path  int  true  "User ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id}/members/{userId} [delete]
func (h *BoardHandler) RemoveMember(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.RemoveMember(c.Request.Context(), actor.UserID, boardID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func boardToResponse(b dom.Board) dto.BoardResponse {
	return dto.BoardResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}
}
