package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyLikeCountPrefix = "comment:like_count:"

	// likeCountTTL bounds staleness if an invalidation is ever lost.
	likeCountTTL = 10 * time.Minute
)

type commentLikeCache struct {
	client *redis.Client
}

var _ domain.CommentLikeCache = (*commentLikeCache)(nil)

func NewCommentLikeCache(client *redis.Client) *commentLikeCache {
	return &commentLikeCache{client: client}
}

func likeCountKey(commentID string) string {
	return keyLikeCountPrefix + commentID
}

func (c *commentLikeCache) GetCounts(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil
	}

	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = likeCountKey(id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(commentIDs))
	for i, val := range vals {
		s, ok := val.(string)
		if !ok {
			continue // cache miss for this id
		}
		count, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		counts[commentIDs[i]] = count
	}
	return counts, nil
}

func (c *commentLikeCache) SetCounts(ctx context.Context, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for id, count := range counts {
		pipe.Set(ctx, likeCountKey(id), strconv.FormatInt(count, 10), likeCountTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *commentLikeCache) DeleteCount(ctx context.Context, commentID string) error {
	return c.client.Del(ctx, likeCountKey(commentID)).Err()
}
