package service

import (
	"context"
	"sync"
	"time"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repo fakes for service tests. They mirror the SQL-level
// semantics the services rely on: pgx.ErrNoRows for missing rows,
// 23505 for duplicate usernames, and the membership upsert rules.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]dom.User)}
}

func (r *fakeUserRepo) add(username string) dom.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, PasswordHash: "x", CreatedAt: time.Now()}
	r.users[u.ID] = u
	return u
}

// uniqueConflictLocked mirrors the users table constraints: usernames
// are always unique, emails only when non-blank (a blank email is a
// NULL, and NULLs never collide).
func (r *fakeUserRepo) uniqueConflictLocked(selfID int64, username, email string) error {
	for _, u := range r.users {
		if u.ID == selfID {
			continue
		}
		if u.Username == username {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		}
		if email != "" && u.Email == email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	return nil
}

func (r *fakeUserRepo) Create(ctx context.Context, username, email, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.uniqueConflictLocked(0, username, email); err != nil {
		return dom.User{}, err
	}
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []int64) ([]dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dom.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dom.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id int64, username, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	if err := r.uniqueConflictLocked(id, username, email); err != nil {
		return dom.User{}, err
	}
	u.Username = username
	u.Email = email
	r.users[id] = u
	return u, nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeStore struct {
	mu sync.Mutex

	nextBoardID      int64
	nextMembershipID int64
	nextListID       int64
	nextCardID       int64
	nextCommentID    int64

	boards      map[int64]dom.Board
	memberships map[int64]dom.Membership
	lists       map[int64]dom.List
	cards       map[int64]dom.Card
	cardMembers []dom.CardMember
	comments    map[int64]dom.Comment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		boards:      make(map[int64]dom.Board),
		memberships: make(map[int64]dom.Membership),
		lists:       make(map[int64]dom.List),
		cards:       make(map[int64]dom.Card),
		comments:    make(map[int64]dom.Comment),
	}
}

// fakeBoardRepo, fakeMemberRepo, fakeListRepo, fakeCardRepo and
// fakeCommentRepo share one store so cascades touch the same tables.

type fakeBoardRepo struct{ s *fakeStore }

func (r fakeBoardRepo) CreateWithOwner(ctx context.Context, name string, creatorID int64) (dom.Board, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextBoardID++
	b := dom.Board{ID: r.s.nextBoardID, Name: name, CreatedAt: time.Now()}
	r.s.boards[b.ID] = b
	r.s.nextMembershipID++
	m := dom.Membership{ID: r.s.nextMembershipID, BoardID: b.ID, UserID: creatorID, Role: dom.RoleAdmin}
	r.s.memberships[m.ID] = m
	return b, nil
}

func (r fakeBoardRepo) GetByID(ctx context.Context, id int64) (dom.Board, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.boards[id]
	if !ok {
		return dom.Board{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r fakeBoardRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Board, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Board
	for _, m := range r.s.memberships {
		if m.UserID == userID {
			if b, ok := r.s.boards[m.BoardID]; ok {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (r fakeBoardRepo) Rename(ctx context.Context, id int64, name string) (dom.Board, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.boards[id]
	if !ok {
		return dom.Board{}, pgx.ErrNoRows
	}
	b.Name = name
	r.s.boards[id] = b
	return b, nil
}

func (r fakeBoardRepo) DeleteCascade(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.boards[id]; !ok {
		return pgx.ErrNoRows
	}
	for lid, l := range r.s.lists {
		if l.BoardID == id {
			r.s.deleteListLocked(lid)
		}
	}
	for mid, m := range r.s.memberships {
		if m.BoardID == id {
			delete(r.s.memberships, mid)
		}
	}
	delete(r.s.boards, id)
	return nil
}

type fakeMemberRepo struct{ s *fakeStore }

func (r fakeMemberRepo) Upsert(ctx context.Context, boardID, userID int64, role string) (dom.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.memberships {
		if m.BoardID == boardID && m.UserID == userID {
			if role != "" {
				m.Role = dom.Role(role)
				r.s.memberships[id] = m
			}
			return r.s.memberships[id], nil
		}
	}
	if role == "" {
		role = string(dom.RoleMember)
	}
	r.s.nextMembershipID++
	m := dom.Membership{ID: r.s.nextMembershipID, BoardID: boardID, UserID: userID, Role: dom.Role(role)}
	r.s.memberships[m.ID] = m
	return m, nil
}

func (r fakeMemberRepo) RoleOf(ctx context.Context, boardID, userID int64) (dom.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.memberships {
		if m.BoardID == boardID && m.UserID == userID {
			return m.Role, nil
		}
	}
	return "", pgx.ErrNoRows
}

func (r fakeMemberRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Membership
	for _, m := range r.s.memberships {
		if m.BoardID == boardID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r fakeMemberRepo) Remove(ctx context.Context, boardID, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.memberships {
		if m.BoardID == boardID && m.UserID == userID {
			delete(r.s.memberships, id)
		}
	}
	return nil
}

type fakeListRepo struct{ s *fakeStore }

func (r fakeListRepo) Create(ctx context.Context, l dom.List) (dom.List, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextListID++
	l.ID = r.s.nextListID
	l.CreatedAt = time.Now()
	r.s.lists[l.ID] = l
	return l, nil
}

func (r fakeListRepo) GetByID(ctx context.Context, id int64) (dom.List, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lists[id]
	if !ok {
		return dom.List{}, pgx.ErrNoRows
	}
	return l, nil
}

func (r fakeListRepo) ListByBoard(ctx context.Context, boardID int64) ([]dom.List, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.List
	for _, l := range r.s.lists {
		if l.BoardID == boardID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r fakeListRepo) Update(ctx context.Context, id int64, name, color string) (dom.List, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lists[id]
	if !ok {
		return dom.List{}, pgx.ErrNoRows
	}
	l.Name = name
	l.Color = color
	r.s.lists[id] = l
	return l, nil
}

func (r fakeListRepo) DeleteCascade(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lists[id]; !ok {
		return pgx.ErrNoRows
	}
	r.s.deleteListLocked(id)
	return nil
}

func (s *fakeStore) deleteListLocked(id int64) {
	for cid, c := range s.cards {
		if c.ListID == id {
			s.deleteCardLocked(cid)
		}
	}
	delete(s.lists, id)
}

func (s *fakeStore) deleteCardLocked(id int64) {
	for cid, c := range s.comments {
		if c.CardID == id {
			delete(s.comments, cid)
		}
	}
	kept := s.cardMembers[:0]
	for _, cm := range s.cardMembers {
		if cm.CardID != id {
			kept = append(kept, cm)
		}
	}
	s.cardMembers = kept
	delete(s.cards, id)
}

type fakeCardRepo struct{ s *fakeStore }

func (r fakeCardRepo) CreateWithMember(ctx context.Context, c dom.Card, creatorID int64) (dom.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCardID++
	c.ID = r.s.nextCardID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.s.cards[c.ID] = c
	r.s.cardMembers = append(r.s.cardMembers, dom.CardMember{CardID: c.ID, UserID: creatorID})
	return c, nil
}

func (r fakeCardRepo) GetByID(ctx context.Context, id int64) (dom.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.cards[id]
	if !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r fakeCardRepo) ListByList(ctx context.Context, listID int64) ([]dom.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Card
	for _, c := range r.s.cards {
		if c.ListID == listID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r fakeCardRepo) Update(ctx context.Context, c dom.Card) (dom.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.cards[c.ID]
	if !ok {
		return dom.Card{}, pgx.ErrNoRows
	}
	stored.ListID = c.ListID
	stored.Title = c.Title
	stored.Tag = c.Tag
	stored.Description = c.Description
	stored.UpdatedAt = time.Now()
	r.s.cards[c.ID] = stored
	return stored, nil
}

func (r fakeCardRepo) ListMembers(ctx context.Context, cardID int64) ([]dom.CardMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.CardMember
	for _, cm := range r.s.cardMembers {
		if cm.CardID == cardID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (r fakeCardRepo) DeleteCascade(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cards[id]; !ok {
		return pgx.ErrNoRows
	}
	r.s.deleteCardLocked(id)
	return nil
}

type fakeCommentRepo struct{ s *fakeStore }

func (r fakeCommentRepo) Create(ctx context.Context, c dom.Comment) (dom.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCommentID++
	c.ID = r.s.nextCommentID
	c.CreatedAt = time.Now()
	r.s.comments[c.ID] = c
	return c, nil
}

func (r fakeCommentRepo) GetByID(ctx context.Context, id int64) (dom.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return dom.Comment{}, pgx.ErrNoRows
	}
	return c, nil
}

func (r fakeCommentRepo) ListByCard(ctx context.Context, cardID int64) ([]dom.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []dom.Comment
	for _, c := range r.s.comments {
		if c.CardID == cardID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r fakeCommentRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.comments, id)
	return nil
}

type fakeActivityRepo struct {
	mu           sync.Mutex
	nextID       int64
	activities   map[int64]dom.Activity
	participants map[int64][]int64
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{
		activities:   make(map[int64]dom.Activity),
		participants: make(map[int64][]int64),
	}
}

func (r *fakeActivityRepo) Create(ctx context.Context, a dom.Activity, participantIDs []int64) (dom.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	a.ParticipantIDs = append([]int64(nil), participantIDs...)
	r.activities[a.ID] = a
	r.participants[a.ID] = append([]int64(nil), participantIDs...)
	return a, nil
}

func (r *fakeActivityRepo) GetByID(ctx context.Context, id int64) (dom.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[id]
	if !ok {
		return dom.Activity{}, pgx.ErrNoRows
	}
	a.ParticipantIDs = append([]int64(nil), r.participants[id]...)
	return a, nil
}

func (r *fakeActivityRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dom.Activity
	for id, a := range r.activities {
		if a.OrganizerID == userID || containsID(r.participants[id], userID) {
			a.ParticipantIDs = append([]int64(nil), r.participants[id]...)
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) ListByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]dom.Activity, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []dom.Activity
	for _, a := range all {
		if !a.StartTime.Before(start) && !a.StartTime.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) Update(ctx context.Context, a dom.Activity, participantIDs []int64) (dom.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.activities[a.ID]
	if !ok {
		return dom.Activity{}, pgx.ErrNoRows
	}
	stored.Title = a.Title
	stored.Description = a.Description
	stored.StartTime = a.StartTime
	stored.EndTime = a.EndTime
	stored.Type = a.Type
	stored.UpdatedAt = time.Now()
	r.activities[a.ID] = stored
	if participantIDs != nil {
		r.participants[a.ID] = append([]int64(nil), participantIDs...)
	}
	stored.ParticipantIDs = append([]int64(nil), r.participants[a.ID]...)
	return stored, nil
}

func (r *fakeActivityRepo) DeleteCascade(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.activities[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.activities, id)
	delete(r.participants, id)
	return nil
}

func (r *fakeActivityRepo) AddParticipant(ctx context.Context, activityID, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.activities[activityID]; !ok {
		return false, pgx.ErrNoRows
	}
	if containsID(r.participants[activityID], userID) {
		return false, nil
	}
	r.participants[activityID] = append(r.participants[activityID], userID)
	return true, nil
}

func (r *fakeActivityRepo) RemoveParticipant(ctx context.Context, activityID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.participants[activityID][:0]
	for _, id := range r.participants[activityID] {
		if id != userID {
			kept = append(kept, id)
		}
	}
	r.participants[activityID] = kept
	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeNotificationRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []dom.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, userID int64, message string) (dom.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	n := dom.Notification{ID: r.nextID, UserID: userID, Message: message, CreatedAt: time.Now()}
	r.rows = append(r.rows, n)
	return n, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dom.Notification
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkSeen(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Seen = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

// sent is one captured Notifier delivery.
type sent struct {
	UserID  int64
	Message string
}

// captureNotifier records every dispatched notification in order.
type captureNotifier struct {
	mu   sync.Mutex
	sent []sent
}

func (n *captureNotifier) Send(ctx context.Context, userID int64, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sent{UserID: userID, Message: message})
}

func (n *captureNotifier) recipients() []int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]int64, len(n.sent))
	for i, s := range n.sent {
		out[i] = s.UserID
	}
	return out
}

func (n *captureNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = nil
}

// fixture wires every service over one shared fake store.
type fixture struct {
	users      *fakeUserRepo
	store      *fakeStore
	activities *fakeActivityRepo
	notifier   *captureNotifier

	boardSvc    *BoardService
	listSvc     *ListService
	cardSvc     *CardService
	commentSvc  *CommentService
	activitySvc *ActivityService
}

func newFixture() *fixture {
	f := &fixture{
		users:      newFakeUserRepo(),
		store:      newFakeStore(),
		activities: newFakeActivityRepo(),
		notifier:   &captureNotifier{},
	}
	boards := fakeBoardRepo{s: f.store}
	members := fakeMemberRepo{s: f.store}
	lists := fakeListRepo{s: f.store}
	cards := fakeCardRepo{s: f.store}
	comments := fakeCommentRepo{s: f.store}

	f.boardSvc = NewBoardService(boards, members, f.users, f.notifier, nil)
	f.listSvc = NewListService(lists, boards, members, f.users, f.notifier)
	f.cardSvc = NewCardService(cards, lists, boards, members, f.users, f.notifier)
	f.commentSvc = NewCommentService(comments, cards, lists, boards, members, f.users, f.notifier)
	f.activitySvc = NewActivityService(f.activities, f.users, f.notifier)
	return f
}
