package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full board walkthrough with the real notification service as the
// dispatcher, checking each inbox after every step.
func TestBoardCollaborationScenario(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	store := newFakeStore()
	notifRepo := &fakeNotificationRepo{}
	notifSvc := NewNotificationService(notifRepo, nil)

	boards := fakeBoardRepo{s: store}
	members := fakeMemberRepo{s: store}
	lists := fakeListRepo{s: store}
	cards := fakeCardRepo{s: store}
	comments := fakeCommentRepo{s: store}

	boardSvc := NewBoardService(boards, members, users, notifSvc, nil)
	listSvc := NewListService(lists, boards, members, users, notifSvc)
	cardSvc := NewCardService(cards, lists, boards, members, users, notifSvc)
	commentSvc := NewCommentService(comments, cards, lists, boards, members, users, notifSvc)

	alice := users.add("alice")
	bob := users.add("bob")
	carol := users.add("carol")

	inbox := func(userID int64) []string {
		rows, err := notifSvc.GetUserNotifications(ctx, userID)
		require.NoError(t, err)
		msgs := make([]string, len(rows))
		for i, n := range rows {
			msgs[i] = n.Message
		}
		return msgs
	}

	// alice creates the board and invites the others.
	b, err := boardSvc.CreateBoard(ctx, alice.ID, "Sprint")
	require.NoError(t, err)
	_, err = boardSvc.UpdateBoard(ctx, alice.ID, b.ID, "", []int64{bob.ID, carol.ID}, "")
	require.NoError(t, err)

	assert.Empty(t, inbox(alice.ID))
	assert.Equal(t, []string{"alice added new users to board: Sprint"}, inbox(bob.ID))
	assert.Equal(t, []string{"alice added new users to board: Sprint"}, inbox(carol.ID))

	// bob sets up a list and a card.
	todo, err := listSvc.CreateList(ctx, bob.ID, b.ID, "Todo", "")
	require.NoError(t, err)
	card, err := cardSvc.CreateCard(ctx, bob.ID, todo.ID, "Fix login", "bug", "session cookie expires early")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"bob created card: Fix login in board: Sprint",
		"bob created new list: Todo in board: Sprint",
	}, inbox(alice.ID))
	assert.Len(t, inbox(bob.ID), 1)

	// carol comments, then moves the card to a new list.
	_, err = commentSvc.CreateComment(ctx, "carol", card.ID, "repro found")
	require.NoError(t, err)
	doing, err := listSvc.CreateList(ctx, carol.ID, b.ID, "Doing", "")
	require.NoError(t, err)
	_, err = cardSvc.UpdateCard(ctx, carol.ID, card.ID, "", "", "", &doing.ID)
	require.NoError(t, err)

	assert.Contains(t, inbox(bob.ID), "carol added a new comment on card: Fix login in board: Sprint")
	assert.Contains(t, inbox(bob.ID), "carol moved card: Fix login in board: Sprint")
	assert.NotContains(t, inbox(carol.ID), "carol moved card: Fix login in board: Sprint")

	// alice tears the board down; the others hear about it once.
	require.NoError(t, boardSvc.DeleteBoard(ctx, alice.ID, b.ID))
	assert.Contains(t, inbox(bob.ID), "alice deleted board: Sprint")
	assert.Contains(t, inbox(carol.ID), "alice deleted board: Sprint")
	assert.NotContains(t, inbox(alice.ID), "alice deleted board: Sprint")

	// Everything downstream of the board is gone too.
	assert.Empty(t, store.boards)
	assert.Empty(t, store.lists)
	assert.Empty(t, store.cards)
	assert.Empty(t, store.comments)
	assert.Empty(t, store.memberships)
}
