package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"
)

// CardService coordinates card lifecycle operations. The owning board
// is always resolved transitively through the card's list.
type CardService struct {
	cards   repo.CardRepo
	lists   repo.ListRepo
	boards  repo.BoardRepo
	members repo.MemberRepo
	users   repo.UserRepo
	notify  Notifier
}

// NewCardService returns a new CardService.
func NewCardService(cards repo.CardRepo, lists repo.ListRepo, boards repo.BoardRepo, members repo.MemberRepo, users repo.UserRepo, n Notifier) *CardService {
	return &CardService{cards: cards, lists: lists, boards: boards, members: members, users: users, notify: n}
}

// CreateCard creates a card on the list. The creator is auto-assigned
// as a card member in the same transaction, and the other board
// members are notified.
func (s *CardService) CreateCard(ctx context.Context, actorID, listID int64, title, tag, description string) (dom.Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Card{}, apperr.BadRequest("card title is required")
	}
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return dom.Card{}, notFoundIfNoRows(err, "List", "id", listID)
	}
	board, err := s.boards.GetByID(ctx, list.BoardID)
	if err != nil {
		return dom.Card{}, notFoundIfNoRows(err, "Board", "id", list.BoardID)
	}
	actor, roster, err := s.requireMember(ctx, actorID, list.BoardID)
	if err != nil {
		return dom.Card{}, err
	}

	card, err := s.cards.CreateWithMember(ctx, dom.Card{
		ListID:      listID,
		Title:       title,
		Tag:         tag,
		Description: description,
	}, actorID)
	if err != nil {
		return dom.Card{}, err
	}
	message := fmt.Sprintf("%s created card: %s in board: %s", actor.Username, card.Title, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	return card, nil
}

// GetCardsByList returns the list's cards, membership required.
func (s *CardService) GetCardsByList(ctx context.Context, actorID, listID int64) ([]dom.Card, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, notFoundIfNoRows(err, "List", "id", listID)
	}
	if _, _, err := s.requireMember(ctx, actorID, list.BoardID); err != nil {
		return nil, err
	}
	return s.cards.ListByList(ctx, listID)
}

// UpdateCard updates card fields. When newListID points to a different
// list, the card moves there: the target list must resolve before any
// write, and the target board's members are told about the move.
func (s *CardService) UpdateCard(ctx context.Context, actorID, cardID int64, title, tag, description string, newListID *int64) (dom.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return dom.Card{}, notFoundIfNoRows(err, "Card", "id", cardID)
	}
	list, err := s.lists.GetByID(ctx, card.ListID)
	if err != nil {
		return dom.Card{}, notFoundIfNoRows(err, "List", "id", card.ListID)
	}
	actor, _, err := s.requireMember(ctx, actorID, list.BoardID)
	if err != nil {
		return dom.Card{}, err
	}

	if title = strings.TrimSpace(title); title != "" {
		card.Title = title
	}
	card.Tag = tag
	card.Description = description

	moved := newListID != nil && *newListID != card.ListID
	var targetBoard dom.Board
	if moved {
		// The target list is re-resolved so a bad id fails the whole
		// update with the card left untouched.
		target, err := s.lists.GetByID(ctx, *newListID)
		if err != nil {
			return dom.Card{}, notFoundIfNoRows(err, "List", "id", *newListID)
		}
		targetBoard, err = s.boards.GetByID(ctx, target.BoardID)
		if err != nil {
			return dom.Card{}, notFoundIfNoRows(err, "Board", "id", target.BoardID)
		}
		card.ListID = *newListID
	}

	updated, err := s.cards.Update(ctx, card)
	if err != nil {
		return dom.Card{}, notFoundIfNoRows(err, "Card", "id", cardID)
	}
	if moved {
		roster, err := s.members.ListByBoard(ctx, targetBoard.ID)
		if err != nil {
			return dom.Card{}, err
		}
		message := fmt.Sprintf("%s moved card: %s in board: %s", actor.Username, updated.Title, targetBoard.Name)
		notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	}
	return updated, nil
}

// DeleteCard removes the card with its comments and members. The
// notification message uses the title captured before the delete.
func (s *CardService) DeleteCard(ctx context.Context, actorID, cardID int64) error {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return notFoundIfNoRows(err, "Card", "id", cardID)
	}
	list, err := s.lists.GetByID(ctx, card.ListID)
	if err != nil {
		return notFoundIfNoRows(err, "List", "id", card.ListID)
	}
	board, err := s.boards.GetByID(ctx, list.BoardID)
	if err != nil {
		return notFoundIfNoRows(err, "Board", "id", list.BoardID)
	}
	actor, roster, err := s.requireMember(ctx, actorID, list.BoardID)
	if err != nil {
		return err
	}
	if err := s.cards.DeleteCascade(ctx, cardID); err != nil {
		return err
	}
	message := fmt.Sprintf("%s deleted card: %s from board: %s", actor.Username, card.Title, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	return nil
}

func (s *CardService) requireMember(ctx context.Context, actorID, boardID int64) (dom.User, []dom.Membership, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return dom.User{}, nil, notFoundIfNoRows(err, "User", "id", actorID)
	}
	roster, err := s.members.ListByBoard(ctx, boardID)
	if err != nil {
		return dom.User{}, nil, err
	}
	if !isMember(roster, actorID) {
		return dom.User{}, nil, apperr.ErrPermissionDenied
	}
	return actor, roster, nil
}
