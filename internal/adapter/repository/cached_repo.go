package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xkiven/ResumeBuilder/internal/model"
	"github.com/xkiven/ResumeBuilder/internal/usecase"
)

const DefaultCacheTTL = 10 * time.Minute

// CachedResumeRepo is a read-through redis cache in front of another
// repository. Cache failures are logged and fall through to the store.
type CachedResumeRepo struct {
	next  usecase.ResumeRepository
	redis redis.Cmdable
	ttl   time.Duration
}

var _ usecase.ResumeRepository = (*CachedResumeRepo)(nil)

func NewCachedResumeRepo(next usecase.ResumeRepository, client redis.Cmdable, ttl time.Duration) *CachedResumeRepo {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedResumeRepo{next: next, redis: client, ttl: ttl}
}

func cacheKey(userID string) string {
	return "resume:" + userID
}

func (r *CachedResumeRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	key := cacheKey(userID)
	if val, err := r.redis.Get(ctx, key).Bytes(); err == nil {
		var doc model.Resume
		if err := json.Unmarshal(val, &doc); err == nil {
			return doc, nil
		}
	} else if err != redis.Nil {
		slog.Warn("resume cache read failed", "user_id", userID, "error", err)
	}

	doc, err := r.next.Get(ctx, userID)
	if err != nil {
		return model.Resume{}, err
	}
	r.set(ctx, doc)
	return doc, nil
}

func (r *CachedResumeRepo) Upsert(ctx context.Context, doc model.Resume) error {
	if err := r.next.Upsert(ctx, doc); err != nil {
		return err
	}
	r.set(ctx, doc)
	return nil
}

func (r *CachedResumeRepo) Delete(ctx context.Context, userID string) error {
	if err := r.next.Delete(ctx, userID); err != nil {
		return err
	}
	if err := r.redis.Del(ctx, cacheKey(userID)).Err(); err != nil {
		slog.Warn("resume cache evict failed", "user_id", userID, "error", err)
	}
	return nil
}

func (r *CachedResumeRepo) set(ctx context.Context, doc model.Resume) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, cacheKey(doc.UserID), data, r.ttl).Err(); err != nil {
		slog.Warn("resume cache write failed", "user_id", doc.UserID, "error", err)
	}
}
