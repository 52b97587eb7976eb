package service

import (
	"context"
	"testing"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWithMembers builds a board owned by the first user with the
// rest added as plain members, and clears the notifications that
// produced.
func boardWithMembers(t *testing.T, f *fixture, owner dom.User, members ...dom.User) dom.Board {
	t.Helper()
	ctx := context.Background()
	b, err := f.boardSvc.CreateBoard(ctx, owner.ID, "Sprint")
	require.NoError(t, err)
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	if len(ids) > 0 {
		_, err = f.boardSvc.UpdateBoard(ctx, owner.ID, b.ID, "", ids, "")
		require.NoError(t, err)
	}
	f.notifier.reset()
	return b
}

func TestCreateCardAssignsCreatorAndNotifies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	bob := f.users.add("bob")
	b := boardWithMembers(t, f, alice, bob)

	l, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Doing", "")
	require.NoError(t, err)
	f.notifier.reset()

	card, err := f.cardSvc.CreateCard(ctx, bob.ID, l.ID, "Fix login", "bug", "")
	require.NoError(t, err)

	members, err := fakeCardRepo{s: f.store}.ListMembers(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, bob.ID, members[0].UserID)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, alice.ID, f.notifier.sent[0].UserID)
	assert.Equal(t, "bob created card: Fix login in board: Sprint", f.notifier.sent[0].Message)
}

func TestCreateCardNonMemberDenied(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	mallory := f.users.add("mallory")
	b := boardWithMembers(t, f, alice)

	l, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Doing", "")
	require.NoError(t, err)
	f.notifier.reset()

	_, err = f.cardSvc.CreateCard(ctx, mallory.ID, l.ID, "Sneaky", "", "")
	assert.ErrorIs(t, err, apperr.ErrPermissionDenied)
	assert.Empty(t, f.notifier.sent)
}

func TestUpdateCardMoveNotifiesTargetBoard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	bob := f.users.add("bob")
	b := boardWithMembers(t, f, alice, bob)

	todo, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	doing, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Doing", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, todo.ID, "Fix login", "", "")
	require.NoError(t, err)
	f.notifier.reset()

	updated, err := f.cardSvc.UpdateCard(ctx, alice.ID, card.ID, "", "", "", &doing.ID)
	require.NoError(t, err)
	assert.Equal(t, doing.ID, updated.ListID)
	assert.Equal(t, "Fix login", updated.Title)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, bob.ID, f.notifier.sent[0].UserID)
	assert.Equal(t, "alice moved card: Fix login in board: Sprint", f.notifier.sent[0].Message)
}

func TestUpdateCardBadTargetListLeavesCardUnchanged(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	b := boardWithMembers(t, f, alice)

	todo, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, todo.ID, "Fix login", "", "")
	require.NoError(t, err)
	f.notifier.reset()

	missing := int64(999)
	_, err = f.cardSvc.UpdateCard(ctx, alice.ID, card.ID, "Renamed", "", "", &missing)
	assert.True(t, apperr.IsNotFound(err))

	// The failed move left the card exactly as it was.
	got, err := fakeCardRepo{s: f.store}.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, got.ListID)
	assert.Equal(t, "Fix login", got.Title)
	assert.Empty(t, f.notifier.sent)
}

func TestUpdateCardSameListNoMoveNotification(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	bob := f.users.add("bob")
	b := boardWithMembers(t, f, alice, bob)

	todo, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, todo.ID, "Fix login", "", "")
	require.NoError(t, err)
	f.notifier.reset()

	updated, err := f.cardSvc.UpdateCard(ctx, alice.ID, card.ID, "Fix signup", "auth", "", &todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix signup", updated.Title)
	assert.Empty(t, f.notifier.sent)
}

func TestDeleteCardMessageUsesCapturedTitle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.users.add("alice")
	bob := f.users.add("bob")
	b := boardWithMembers(t, f, alice, bob)

	todo, err := f.listSvc.CreateList(ctx, alice.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := f.cardSvc.CreateCard(ctx, alice.ID, todo.ID, "Fix login", "", "")
	require.NoError(t, err)
	_, err = f.commentSvc.CreateComment(ctx, "bob", card.ID, "on it")
	require.NoError(t, err)
	f.notifier.reset()

	require.NoError(t, f.cardSvc.DeleteCard(ctx, alice.ID, card.ID))

	_, err = fakeCardRepo{s: f.store}.GetByID(ctx, card.ID)
	assert.Error(t, err)
	comments, err := fakeCommentRepo{s: f.store}.ListByCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, bob.ID, f.notifier.sent[0].UserID)
	assert.Equal(t, "alice deleted card: Fix login from board: Sprint", f.notifier.sent[0].Message)
}
