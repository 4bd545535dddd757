package job

import (
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/logger"
	"Camellia/internal/pkg/redis"
	"Camellia/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// TagCountJob 将 redis 中累积的标签计数增量刷回数据库
type TagCountJob struct {
	tagRepo repository.TagRepo
}

func NewTagCountJob(tagRepo repository.TagRepo) *TagCountJob {
	return &TagCountJob{
		tagRepo: tagRepo,
	}
}

func (s *TagCountJob) Run() {
	traceID := "job-tag-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.TagDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.TagDirtyKey, processingKey)
	if err != nil {
		// 脏集合为空时 RENAME 失败，本轮无事可做
		return
	}

	dirtyTags, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get tag dirty set error", "err", err)
		return
	}

	for _, name := range dirtyTags {
		countStr, err := redis.GetDel(ctx, consts.TagCountKey+name)
		if err != nil || countStr == "" {
			continue
		}
		delta, err := strconv.Atoi(countStr)
		if err != nil || delta == 0 {
			continue
		}

		if err = s.tagRepo.AddCount(ctx, name, delta); err != nil {
			log.ErrorContext(ctx, "flush tag count error", "tag", name, "delta", delta, "err", err)
			continue
		}
	}

	_ = redis.DeleteKey(ctx, processingKey)
	log.InfoContext(ctx, "tag count flush finished", "tags", len(dirtyTags))
}
