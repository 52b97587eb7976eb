package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyBoards = "boards:user:"

// BoardCache caches each user's board list in Redis. Any board mutation
// that changes what a member can see invalidates the affected users.
type BoardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBoardCache returns a new BoardCache.
func NewBoardCache(rdb *redis.Client, ttl time.Duration) *BoardCache {
	return &BoardCache{rdb: rdb, ttl: ttl}
}

// GetBoards returns the cached board list for the user, or nil on miss.
func (c *BoardCache) GetBoards(ctx context.Context, userID int64) ([]dom.Board, error) {
	b, err := c.rdb.Get(ctx, boardsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Board
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetBoards stores the user's board list in cache.
func (c *BoardCache) SetBoards(ctx context.Context, userID int64, list []dom.Board) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, boardsKey(userID), b, c.ttl).Err()
}

// Invalidate removes the cached board list for the given users.
func (c *BoardCache) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = boardsKey(id)
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func boardsKey(userID int64) string {
	return keyBoards + strconv.FormatInt(userID, 10)
}
