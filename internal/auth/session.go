package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
)

// Identity is the authenticated actor resolved from a session.
type Identity struct {
	UserID   int64
	Username string
}

// Store manages sessions in Redis. The stored value is "<id>:<username>"
// so handlers can resolve the acting user without a DB round trip.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new session store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores a new session for the user and returns its ID.
func (s *Store) Create(ctx context.Context, userID int64, username string) (string, error) {
	id := uuid.NewString()
	key := sessionKeyPrefix + id
	value := fmt.Sprintf("%d:%s", userID, username)
	if err := s.rdb.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// Get resolves the identity bound to the session. ok is false when the
// session is missing, expired or malformed.
func (s *Store) Get(ctx context.Context, id string) (Identity, bool) {
	value, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return Identity{}, false
	}
	idPart, username, found := strings.Cut(value, ":")
	if !found {
		return Identity{}, false
	}
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		return Identity{}, false
	}
	return Identity{UserID: userID, Username: username}, true
}
