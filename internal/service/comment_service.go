package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"
)

// CommentService coordinates comment operations. The author is
// resolved by username from the caller's session identity, not by a
// client-supplied id.
type CommentService struct {
	comments repo.CommentRepo
	cards    repo.CardRepo
	lists    repo.ListRepo
	boards   repo.BoardRepo
	members  repo.MemberRepo
	users    repo.UserRepo
	notify   Notifier
}

// NewCommentService returns a new CommentService.
func NewCommentService(comments repo.CommentRepo, cards repo.CardRepo, lists repo.ListRepo, boards repo.BoardRepo, members repo.MemberRepo, users repo.UserRepo, n Notifier) *CommentService {
	return &CommentService{comments: comments, cards: cards, lists: lists, boards: boards, members: members, users: users, notify: n}
}

// CreateComment adds a comment on the card and notifies the other
// board members.
func (s *CommentService) CreateComment(ctx context.Context, username string, cardID int64, content string) (dom.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return dom.Comment{}, apperr.BadRequest("comment content is required")
	}
	author, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return dom.Comment{}, notFoundIfNoRows(err, "User", "username", username)
	}
	card, board, roster, err := s.resolveCardContext(ctx, cardID)
	if err != nil {
		return dom.Comment{}, err
	}
	if !isMember(roster, author.ID) {
		return dom.Comment{}, apperr.ErrPermissionDenied
	}

	comment, err := s.comments.Create(ctx, dom.Comment{CardID: cardID, UserID: author.ID, Content: content})
	if err != nil {
		return dom.Comment{}, err
	}
	message := fmt.Sprintf("%s added a new comment on card: %s in board: %s", author.Username, card.Title, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, author.ID, message)
	return comment, nil
}

// GetCommentsByCard returns the card's comments, membership required.
func (s *CommentService) GetCommentsByCard(ctx context.Context, actorID, cardID int64) ([]dom.Comment, error) {
	_, _, roster, err := s.resolveCardContext(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if !isMember(roster, actorID) {
		return nil, apperr.ErrPermissionDenied
	}
	return s.comments.ListByCard(ctx, cardID)
}

// DeleteComment removes the comment and notifies the other board members.
func (s *CommentService) DeleteComment(ctx context.Context, actorID, commentID int64) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return notFoundIfNoRows(err, "Comment", "id", commentID)
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return notFoundIfNoRows(err, "User", "id", actorID)
	}
	card, board, roster, err := s.resolveCardContext(ctx, comment.CardID)
	if err != nil {
		return err
	}
	if !isMember(roster, actorID) {
		return apperr.ErrPermissionDenied
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	message := fmt.Sprintf("%s deleted a comment from card: %s in board: %s", actor.Username, card.Title, board.Name)
	notifyRosterExcept(ctx, s.notify, roster, actorID, message)
	return nil
}

// resolveCardContext walks card -> list -> board and loads the roster.
func (s *CommentService) resolveCardContext(ctx context.Context, cardID int64) (dom.Card, dom.Board, []dom.Membership, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return dom.Card{}, dom.Board{}, nil, notFoundIfNoRows(err, "Card", "id", cardID)
	}
	list, err := s.lists.GetByID(ctx, card.ListID)
	if err != nil {
		return dom.Card{}, dom.Board{}, nil, notFoundIfNoRows(err, "List", "id", card.ListID)
	}
	board, err := s.boards.GetByID(ctx, list.BoardID)
	if err != nil {
		return dom.Card{}, dom.Board{}, nil, notFoundIfNoRows(err, "Board", "id", list.BoardID)
	}
	roster, err := s.members.ListByBoard(ctx, board.ID)
	if err != nil {
		return dom.Card{}, dom.Board{}, nil, err
	}
	return card, board, roster, nil
}
