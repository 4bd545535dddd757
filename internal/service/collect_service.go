package service

import (
	"Camellia/internal/api/config"
	"Camellia/internal/api/dto"
	"Camellia/internal/model"
	"Camellia/internal/pkg/collector"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/logger"
	"Camellia/internal/pkg/redis"
	"Camellia/internal/pkg/util"
	"Camellia/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// collectLockTTL 采集锁过期时间，覆盖单次抓取的最长耗时
const collectLockTTL = 5 * time.Minute

type CollectService interface {
	Collect(ctx context.Context, rawURL string) (*dto.CollectionTaskDTO, error)
	GetTask(ctx context.Context, taskID string) (*dto.CollectionTaskDTO, error)
}

type collectServiceImpl struct {
	fetcher    *collector.Fetcher
	postRepo   repository.PostRepo
	authorRepo repository.AuthorRepo
	tagRepo    repository.TagRepo
	taskRepo   repository.CollectionTaskRepo
}

func NewCollectService(
	fetcher *collector.Fetcher,
	postRepo repository.PostRepo,
	authorRepo repository.AuthorRepo,
	tagRepo repository.TagRepo,
	taskRepo repository.CollectionTaskRepo,
) CollectService {
	return &collectServiceImpl{
		fetcher:    fetcher,
		postRepo:   postRepo,
		authorRepo: authorRepo,
		tagRepo:    tagRepo,
		taskRepo:   taskRepo,
	}
}

// Collect 发起一次帖子采集，返回异步任务。
// 同一帖子的并发采集用 redis 锁去重，已入库的帖子直接返回完成态任务。
func (s *collectServiceImpl) Collect(ctx context.Context, rawURL string) (*dto.CollectionTaskDTO, error) {
	ref, ok := collector.ParseTopicURL(rawURL)
	if !ok {
		return nil, ErrInvalidSourceURL
	}

	sourceID := strconv.FormatUint(ref.TopicID, 10)
	if existing, err := s.postRepo.GetPostBySource(ctx, consts.SourcePlatformLinuxDo, sourceID); err == nil {
		task := &model.CollectionTask{
			ID:           uuid.NewString(),
			URL:          rawURL,
			Status:       consts.TaskStatusCompleted,
			Progress:     100,
			ResultPostID: existing.ID,
		}
		if err = s.taskRepo.CreateTask(ctx, task); err != nil {
			log.ErrorContext(ctx, "Collect 写入任务失败", "err", err)
			return nil, UnExpectedError
		}
		return toTaskDTO(task), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.ErrorContext(ctx, "Collect 查询源帖子失败", "err", err)
		return nil, UnExpectedError
	}

	lockKey := consts.CollectLock + sourceID
	locked, err := redis.TryLock(ctx, lockKey, rawURL, collectLockTTL, 1)
	if err != nil {
		log.ErrorContext(ctx, "Collect 获取锁失败", "err", err)
		return nil, UnExpectedError
	}
	if !locked {
		return nil, ErrCollectInProgress
	}

	task := &model.CollectionTask{
		ID:     uuid.NewString(),
		URL:    rawURL,
		Status: consts.TaskStatusPending,
	}
	if err = s.taskRepo.CreateTask(ctx, task); err != nil {
		redis.UnLock(ctx, lockKey, rawURL)
		log.ErrorContext(ctx, "Collect 写入任务失败", "err", err)
		return nil, UnExpectedError
	}

	bgCtx := context.Background()
	if traceID, ok := ctx.Value(logger.TraceIDKey).(string); ok {
		bgCtx = context.WithValue(bgCtx, logger.TraceIDKey, traceID)
	}
	go s.run(bgCtx, task.ID, rawURL, ref, lockKey)

	return toTaskDTO(task), nil
}

func (s *collectServiceImpl) GetTask(ctx context.Context, taskID string) (*dto.CollectionTaskDTO, error) {
	task, err := s.taskRepo.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		log.ErrorContext(ctx, "GetTask 查询失败", "err", err)
		return nil, UnExpectedError
	}
	return toTaskDTO(task), nil
}

// run 后台执行抓取入库，任务进度随阶段推进
func (s *collectServiceImpl) run(ctx context.Context, taskID, rawURL string, ref collector.TopicRef, lockKey string) {
	defer redis.UnLock(ctx, lockKey, rawURL)

	fail := func(stage string, err error) {
		log.ErrorContext(ctx, "采集任务失败", "task_id", taskID, "stage", stage, "err", err)
		_ = s.taskRepo.UpdateTask(ctx, taskID, map[string]interface{}{
			"status": consts.TaskStatusFailed,
			"error":  fmt.Sprintf("%s: %v", stage, err),
		})
	}

	_ = s.taskRepo.UpdateTask(ctx, taskID, map[string]interface{}{
		"status":   consts.TaskStatusProcessing,
		"progress": 10,
	})

	topic, err := s.fetcher.FetchTopic(ctx, ref)
	if err != nil {
		fail("抓取源帖子", err)
		return
	}
	_ = s.taskRepo.UpdateTask(ctx, taskID, map[string]interface{}{"progress": 50})

	author := &model.Author{
		Username:    topic.Author.Username,
		DisplayName: topic.Author.Name,
		Avatar:      topic.Author.AvatarURL,
		ProfileURL:  fmt.Sprintf("%s/u/%s", config.Cfg.Collector.BaseURL, topic.Author.Username),
		TrustLevel:  topic.Author.TrustLevel,
		BadgeCount:  topic.Author.BadgeCount,
		IsStaff:     topic.Author.IsStaff,
	}
	if author.Username == "" {
		author.Username = "linux.do"
		author.DisplayName = "linux.do 社区"
		author.ProfileURL = config.Cfg.Collector.BaseURL
	}
	if err = s.authorRepo.UpsertByUsername(ctx, author); err != nil {
		fail("写入作者", err)
		return
	}

	tags, err := s.tagRepo.GetOrCreateTags(ctx, util.NormalizeTags("", topic.Tags))
	if err != nil {
		fail("写入标签", err)
		return
	}
	_ = s.taskRepo.UpdateTask(ctx, taskID, map[string]interface{}{"progress": 70})

	now := time.Now()
	post := &model.Post{
		ID:               uuid.NewString(),
		Title:            topic.Title,
		Content:          topic.CookedHTML,
		RawContent:       topic.CookedHTML,
		Excerpt:          util.ExtractExcerpt(topic.CookedHTML, consts.ExcerptMaxLen),
		SourceURL:        rawURL,
		SourceID:         strconv.FormatUint(ref.TopicID, 10),
		SourcePlatform:   consts.SourcePlatformLinuxDo,
		PostType:         consts.PostTypeCollected,
		AuthorID:         author.ID,
		Status:           consts.PostStatusPendingApproval,
		Views:            topic.Views,
		Likes:            topic.LikeCount,
		Replies:          topic.ReplyCount,
		CollectedAt:      &now,
		CollectorVersion: config.Cfg.Collector.Version,
	}
	if !topic.CreatedAt.IsZero() {
		post.SourceCreatedAt = &topic.CreatedAt
	}

	images := make([]*model.PostImage, 0, len(topic.Images))
	for i, img := range topic.Images {
		images = append(images, &model.PostImage{
			ID:           uuid.NewString(),
			PostID:       post.ID,
			URL:          img.URL,
			ThumbnailURL: img.ThumbnailURL,
			Alt:          img.Alt,
			Width:        img.Width,
			Height:       img.Height,
			OriginalURL:  img.URL,
			IsFeatured:   i == 0,
			SortOrder:    int8(i),
		})
	}

	if err = s.postRepo.CreatePost(ctx, post, images, tags); err != nil {
		fail("写入帖子", err)
		return
	}

	for _, tag := range tags {
		_ = redis.IncrBy(ctx, consts.TagCountKey+tag.Name, 1)
		_ = redis.SAdd(ctx, consts.TagDirtyKey, tag.Name)
	}

	_ = s.taskRepo.UpdateTask(ctx, taskID, map[string]interface{}{
		"status":         consts.TaskStatusCompleted,
		"progress":       100,
		"result_post_id": post.ID,
	})
	log.InfoContext(ctx, "采集任务完成", "task_id", taskID, "post_id", post.ID, "topic_id", ref.TopicID)
}

func toTaskDTO(task *model.CollectionTask) *dto.CollectionTaskDTO {
	return &dto.CollectionTaskDTO{
		ID:           task.ID,
		URL:          task.URL,
		Status:       task.Status,
		Progress:     task.Progress,
		Error:        task.Error,
		ResultPostID: task.ResultPostID,
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
	}
}
