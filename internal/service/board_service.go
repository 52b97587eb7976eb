package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	"github.com/BeldiMariem/ToDo-List-App/internal/cache"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// BoardService coordinates board lifecycle operations: resolve the
// acting user against the roster, apply the mutation, then fan out
// notifications to the remaining members.
type BoardService struct {
	boards  repo.BoardRepo
	members repo.MemberRepo
	users   repo.UserRepo
	notify  Notifier
	cache   *cache.BoardCache
	sf      singleflight.Group
}

// NewBoardService creates a BoardService. If c is nil, caching is disabled.
func NewBoardService(boards repo.BoardRepo, members repo.MemberRepo, users repo.UserRepo, n Notifier, c *cache.BoardCache) *BoardService {
	return &BoardService{boards: boards, members: members, users: users, notify: n, cache: c}
}

// CreateBoard creates a board with the creator as its sole ADMIN
// member. No notification is sent: no other members exist yet.
func (s *BoardService) CreateBoard(ctx context.Context, actorID int64, name string) (dom.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Board{}, apperr.BadRequest("board name is required")
	}
	if _, err := s.users.GetByID(ctx, actorID); err != nil {
		return dom.Board{}, notFoundIfNoRows(err, "User", "id", actorID)
	}
	b, err := s.boards.CreateWithOwner(ctx, name, actorID)
	if err != nil {
		return dom.Board{}, err
	}
	s.invalidateCache(ctx, actorID)
	return b, nil
}

// GetBoards returns the boards the user belongs to.
func (s *BoardService) GetBoards(ctx context.Context, userID int64) ([]dom.Board, error) {
	if s.cache == nil {
		return s.boards.ListByUser(ctx, userID)
	}
	key := "boards:" + strconv.FormatInt(userID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetBoards(ctx, userID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.boards.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetBoards(ctx, userID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Board), nil
}

// GetBoard returns the board if the actor is a member of it.
func (s *BoardService) GetBoard(ctx context.Context, actorID, boardID int64) (dom.Board, error) {
	b, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return dom.Board{}, notFoundIfNoRows(err, "Board", "id", boardID)
	}
	roster, err := s.members.ListByBoard(ctx, boardID)
	if err != nil {
		return dom.Board{}, err
	}
	if !isMember(roster, actorID) {
		return dom.Board{}, apperr.ErrPermissionDenied
	}
	return b, nil
}

// GetMembers returns the board roster, membership required.
func (s *BoardService) GetMembers(ctx context.Context, actorID, boardID int64) ([]dom.Membership, error) {
	if _, err := s.GetBoard(ctx, actorID, boardID); err != nil {
		return nil, err
	}
	return s.members.ListByBoard(ctx, boardID)
}

// UpdateBoard renames the board and/or upserts memberships.
// Requires an elevated role. The rename applies only when newName is
// non-blank after trimming; every member id must resolve before any
// write happens. Remaining members are notified, the actor is not.
func (s *BoardService) UpdateBoard(ctx context.Context, actorID, boardID int64, newName string, memberIDs []int64, role string) (dom.Board, error) {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return dom.Board{}, notFoundIfNoRows(err, "Board", "id", boardID)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return dom.Board{}, notFoundIfNoRows(err, "User", "id", actorID)
	}
	roster, err := s.members.ListByBoard(ctx, boardID)
	if err != nil {
		return dom.Board{}, err
	}
	if err := Authorize(roster, actorID, CapManageMembers); err != nil {
		return dom.Board{}, err
	}
	// Existence checks before any write: an unresolvable member id
	// fails the whole update with nothing mutated.
	for _, uid := range memberIDs {
		if _, err := s.users.GetByID(ctx, uid); err != nil {
			return dom.Board{}, notFoundIfNoRows(err, "User", "id", uid)
		}
	}

	newName = strings.TrimSpace(newName)
	if newName != "" {
		if board, err = s.boards.Rename(ctx, boardID, newName); err != nil {
			return dom.Board{}, notFoundIfNoRows(err, "Board", "id", boardID)
		}
	}
	role = strings.TrimSpace(role)
	for _, uid := range memberIDs {
		if _, err := s.members.Upsert(ctx, boardID, uid, role); err != nil {
			return dom.Board{}, err
		}
	}

	roster, err = s.members.ListByBoard(ctx, boardID)
	if err != nil {
		return dom.Board{}, err
	}
	message := fmt.Sprintf("%s updated board: %s", actor.Username, board.Name)
	if len(memberIDs) > 0 {
		message = fmt.Sprintf("%s added new users to board: %s", actor.Username, board.Name)
	}
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	s.invalidateCache(ctx, rosterUserIDs(roster)...)
	return board, nil
}

// RemoveMember drops a user from the board roster. Requires an
// elevated role; the role checks go through RoleOf instead of loading
// the whole roster. The removed user is notified unless they removed
// themselves.
func (s *BoardService) RemoveMember(ctx context.Context, actorID, boardID, userID int64) error {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return notFoundIfNoRows(err, "Board", "id", boardID)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", actorID)
	}
	actorRole, err := s.members.RoleOf(ctx, boardID, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.ErrPermissionDenied
		}
		return err
	}
	if !actorRole.Elevated() {
		return apperr.ErrPermissionDenied
	}
	if _, err := s.members.RoleOf(ctx, boardID, userID); err != nil {
		return notFoundIfNoRows(err, "Membership", "user_id", userID)
	}
	if err := s.members.Remove(ctx, boardID, userID); err != nil {
		return err
	}
	if userID != actorID {
		s.notify.Send(ctx, userID, fmt.Sprintf("%s removed you from board: %s", actor.Username, board.Name))
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// DeleteBoard removes the board and everything it owns. Requires an
// elevated role. Members are notified after the delete commits; the
// message is built from state captured before the cascade.
func (s *BoardService) DeleteBoard(ctx context.Context, actorID, boardID int64) error {
	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return notFoundIfNoRows(err, "Board", "id", boardID)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", actorID)
	}
	roster, err := s.members.ListByBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if err := Authorize(roster, actorID, CapModifyBoard); err != nil {
		return err
	}
	if err := s.boards.DeleteCascade(ctx, boardID); err != nil {
		return err
	}
	message := fmt.Sprintf("%s deleted board: %s", actor.Username, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	s.invalidateCache(ctx, rosterUserIDs(roster)...)
	return nil
}

func rosterUserIDs(roster []dom.Membership) []int64 {
	ids := make([]int64, len(roster))
	for i, m := range roster {
		ids[i] = m.UserID
	}
	return ids
}

func (s *BoardService) invalidateCache(ctx context.Context, userIDs ...int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userIDs...)
	}
}
