package service

import (
	"context"
	"testing"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentNotifiesOtherMembers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	bob := f.users.add("bob")
	b := boardWithMembers(t, f, alice, bob)

	l, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, l.ID, "Fix login", "", "")
	require.NoError(t, err)
	f.notifier.reset()

	cm, err := f.commentSvc.CreateComment(ctx, "bob", card.ID, "looks like a session bug")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, cm.UserID)
	assert.Equal(t, card.ID, cm.CardID)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, alice.ID, f.notifier.sent[0].UserID)
	assert.Equal(t, "bob added a new comment on card: Fix login in board: Sprint", f.notifier.sent[0].Message)
}

func TestCreateCommentNonMemberDenied(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	f.users.add("mallory")
	b := boardWithMembers(t, f, alice)

	l, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, l.ID, "Fix login", "", "")
	require.NoError(t, err)
	f.notifier.reset()

	_, err = f.commentSvc.CreateComment(ctx, "mallory", card.ID, "hi")
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	assert.Empty(t, f.notifier.sent)
}

func TestCreateCommentBlankContent(t *testing.T) {
	f := newFixture()
	f.users.add("alice")

	_, err := f.commentSvc.CreateComment(context.Background(), "alice", 1, "  ")
	assert.True(t, apperr.IsBadRequest(err))
}

func TestDeleteCommentNotifies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	bob := f.users.add("bob")
	b := boardWithMembers(t, f, alice, bob)

	l, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, l.ID, "Fix login", "", "")
	require.NoError(t, err)
	cm, err := f.commentSvc.CreateComment(ctx, "bob", card.ID, "done")
	require.NoError(t, err)
	f.notifier.reset()

	require.NoError(t, f.commentSvc.DeleteComment(ctx, bob.ID, cm.ID))

	comments, err := f.commentSvc.GetCommentsByCard(ctx, alice.ID, card.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, alice.ID, f.notifier.sent[0].UserID)
	assert.Equal(t, "bob deleted a comment from card: Fix login in board: Sprint", f.notifier.sent[0].Message)
}
