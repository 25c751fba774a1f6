package repository

import (
	"context"
	"strings"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// commentLikeRepository coordinates the database repository with the count
// cache. Row-level operations go straight to the store; counts are served
// cache-first with a singleflight-guarded rebuild.
type commentLikeRepository struct {
	db           domain.CommentLikeRepository
	cache        domain.CommentLikeCache
	rebuildGroup singleflight.Group
}

var _ domain.CommentLikeRepository = (*commentLikeRepository)(nil)

func NewCommentLikeRepository(db domain.CommentLikeRepository, cache domain.CommentLikeCache) *commentLikeRepository {
	return &commentLikeRepository{
		db:    db,
		cache: cache,
	}
}

func (r *commentLikeRepository) Get(ctx context.Context, commentID, userID string) (domain.CommentLike, error) {
	return r.db.Get(ctx, commentID, userID)
}

func (r *commentLikeRepository) Add(ctx context.Context, commentID, userID string) (domain.CommentLike, error) {
	like, err := r.db.Add(ctx, commentID, userID)
	if err != nil {
		return domain.CommentLike{}, err
	}

	go func(id string) {
		if err := r.cache.DeleteCount(context.Background(), id); err != nil {
			logrus.Warnf("failed to invalidate like count for %s: %v", id, err)
		}
	}(commentID)

	return like, nil
}

func (r *commentLikeRepository) Delete(ctx context.Context, commentID, userID string) error {
	if err := r.db.Delete(ctx, commentID, userID); err != nil {
		return err
	}

	go func(id string) {
		if err := r.cache.DeleteCount(context.Background(), id); err != nil {
			logrus.Warnf("failed to invalidate like count for %s: %v", id, err)
		}
	}(commentID)

	return nil
}

func (r *commentLikeRepository) CountByCommentIDs(ctx context.Context, commentIDs []string) (map[string]int64, error) {
	if len(commentIDs) == 0 {
		return map[string]int64{}, nil
	}

	cached, err := r.cache.GetCounts(ctx, commentIDs)
	if err != nil {
		logrus.Warnf("like count cache read failed, falling back to db: %v", err)
		cached = map[string]int64{}
	}

	var missing []string
	for _, id := range commentIDs {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return cached, nil
	}

	key := strings.Join(missing, ",")
	result, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		counts, err := r.db.CountByCommentIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		// comments with no likes need an explicit zero, both for the
		// response and so the cache learns the absence too
		for _, id := range missing {
			if _, ok := counts[id]; !ok {
				counts[id] = 0
			}
		}

		go func(data map[string]int64) {
			if err := r.cache.SetCounts(context.Background(), data); err != nil {
				logrus.Warnf("failed to cache like counts: %v", err)
			}
		}(counts)

		return counts, nil
	})
	if err != nil {
		return nil, err
	}

	for id, count := range result.(map[string]int64) {
		cached[id] = count
	}
	return cached, nil
}
