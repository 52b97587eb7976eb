package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"
)

// ListService coordinates list lifecycle operations. Any board member
// may create, update or delete lists; there is no role gate here.
type ListService struct {
	lists   repo.ListRepo
	boards  repo.BoardRepo
	members repo.MemberRepo
	users   repo.UserRepo
	notify  Notifier
}

// NewListService returns a new ListService.
func NewListService(lists repo.ListRepo, boards repo.BoardRepo, members repo.MemberRepo, users repo.UserRepo, n Notifier) *ListService {
	return &ListService{lists: lists, boards: boards, members: members, users: users, notify: n}
}

// CreateList creates a list on the board and notifies the other members.
func (s *ListService) CreateList(ctx context.Context, actorID, boardID int64, name, color string) (dom.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.List{}, apperr.BadRequest("list name is required")
	}
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return dom.List{}, notFoundIfNoRows(err, "Board", "id", boardID)
	}
	actor, roster, err := s.requireMember(ctx, actorID, boardID)
	if err != nil {
		return dom.List{}, err
	}

	list, err := s.lists.Create(ctx, dom.List{BoardID: boardID, Name: name, Color: color})
	if err != nil {
		return dom.List{}, err
	}
	message := fmt.Sprintf("%s created new list: %s in board: %s", actor.Username, list.Name, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	return list, nil
}

// GetListsByBoard returns the board's lists, membership required.
func (s *ListService) GetListsByBoard(ctx context.Context, actorID, boardID int64) ([]dom.List, error) {
	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, notFoundIfNoRows(err, "Board", "id", boardID)
	}
	if _, _, err := s.requireMember(ctx, actorID, boardID); err != nil {
		return nil, err
	}
	return s.lists.ListByBoard(ctx, boardID)
}

// UpdateList renames or recolors the list. No notification is sent.
func (s *ListService) UpdateList(ctx context.Context, actorID, listID int64, name, color string) (dom.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.List{}, apperr.BadRequest("list name is required")
	}
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return dom.List{}, notFoundIfNoRows(err, "List", "id", listID)
	}
	if _, _, err := s.requireMember(ctx, actorID, list.BoardID); err != nil {
		return dom.List{}, err
	}
	return s.lists.Update(ctx, listID, name, color)
}

// DeleteList removes the list with its cards and notifies the other
// members. The message uses the list name captured before the delete.
func (s *ListService) DeleteList(ctx context.Context, actorID, listID int64) error {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return notFoundIfNoRows(err, "List", "id", listID)
	}
	board, err := s.boards.GetByID(ctx, list.BoardID)
	if err != nil {
		return notFoundIfNoRows(err, "Board", "id", list.BoardID)
	}
	actor, roster, err := s.requireMember(ctx, actorID, list.BoardID)
	if err != nil {
		return err
	}
	if err := s.lists.DeleteCascade(ctx, listID); err != nil {
		return err
	}
	message := fmt.Sprintf("%s deleted list: %s from board: %s", actor.Username, list.Name, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	return nil
}

// requireMember resolves the actor and the roster and checks membership.
func (s *ListService) requireMember(ctx context.Context, actorID, boardID int64) (dom.User, []dom.Membership, error) {
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
