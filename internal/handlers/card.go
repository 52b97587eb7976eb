package handlers

import (
	"net/http"

	"github.com/BeldiMariem/ToDo-List-App/internal/auth"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/dto"
	"github.com/BeldiMariem/ToDo-List-App/internal/service"

	"github.com/gin-gonic/gin"
)

// CardHandler handles card endpoints.
type CardHandler struct {
	svc *service.CardService
}

// NewCardHandler returns a new CardHandler.
func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// Create godoc
// @Summary      Create a card on a list
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCardRequest  true  "Card body"
// @Success      201   {object}  dto.CardResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	card, err := h.svc.CreateCard(c.Request.Context(), actor.UserID, req.ListID, req.Title, req.Tag, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cardToResponse(card))
}

// ListByList godoc
// @Summary      List the cards of a list
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        listId  path      int  true  "List ID"
// @Success      200     {object}  dto.ListCardsResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /cards/list/{listId} [get]
func (h *CardHandler) ListByList(c *gin.Context) {
	listID, ok := parseID(c, "listId")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	cards, err := h.svc.GetCardsByList(c.Request.Context(), actor.UserID, listID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.CardResponse, len(cards))
	for i := range cards {
		out[i] = cardToResponse(cards[i])
	}
	c.JSON(http.StatusOK, dto.ListCardsResponse{Items: out})
}

// Update godoc
// @Summary      Update a card, optionally moving it to another list
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Card ID"
// @Param        body  body      dto.UpdateCardRequest  true  "Update body"
// @Success      200   {object}  dto.CardResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cards/{id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor := auth.IdentityFromContext(c)
	card, err := h.svc.UpdateCard(c.Request.Context(), actor.UserID, id, req.Title, req.Tag, req.Description, req.ListID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cardToResponse(card))
}

// Delete godoc
// @Summary      Delete a card
// @Tags         cards
// @Security     CookieAuth
// @Param        id   path  int  true  "Card ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	actor := auth.IdentityFromContext(c)
	if err := h.svc.DeleteCard(c.Request.Context(), actor.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func cardToResponse(card dom.Card) dto.CardResponse {
	return dto.CardResponse{
		ID:          card.ID,
		ListID:      card.ListID,
		Title:       card.Title,
		Tag:         card.Tag,
		Description: card.Description,
		CreatedAt:   card.CreatedAt,
		UpdatedAt:   card.UpdatedAt,
	}
}
