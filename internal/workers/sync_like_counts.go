package workers

import (
	"context"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
)

// syncLikeCountsWorker recomputes cached like counts for comments whose likes
// were toggled. The toggle itself writes to the database on the request path;
// this worker only keeps the cache warm.
type syncLikeCountsWorker struct {
	likeRepo domain.CommentLikeRepository
	cache    domain.CommentLikeCache
	ch       chan string
}

var _ domain.LikeCountSyncWorker = (*syncLikeCountsWorker)(nil)

func NewSyncLikeCountsWorker(likeRepo domain.CommentLikeRepository, cache domain.CommentLikeCache) *syncLikeCountsWorker {
	return &syncLikeCountsWorker{
		likeRepo: likeRepo,
		cache:    cache,
		ch:       make(chan string, 1024),
	}
}

func (s *syncLikeCountsWorker) Send(commentID string) {
	select {
	case s.ch <- commentID:
	default:
		logrus.Info("SyncLikeCountsWorker's channel is full, task dropped")
	}
}

func (s *syncLikeCountsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]string, 0, batchSize)
	for {
		select {
		case commentID := <-s.ch:
			batch = append(batch, commentID)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]string, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]string, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikeCountsWorker, flushing remaining tasks...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *syncLikeCountsWorker) flush(ctx context.Context, batch []string) {
	if len(batch) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(batch))
	ids := make([]string, 0, len(batch))
	for _, id := range batch {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	counts, err := s.likeRepo.CountByCommentIDs(ctx, ids)
	if err != nil {
		logrus.Errorf("failed to recount likes: %v", err)
		return
	}
	for _, id := range ids {
		if _, ok := counts[id]; !ok {
			counts[id] = 0
		}
	}

	if err := s.cache.SetCounts(ctx, counts); err != nil {
		logrus.Errorf("failed to refresh like counts in cache: %v", err)
	}
}
