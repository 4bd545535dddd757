package kafka

import (
	"Camellia/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// EngagementEvent 外部互动系统推送的计数增量。
// score 为覆盖式热度分，缺省时为 -1 表示不更新。
type EngagementEvent struct {
	PostID  string  `json:"post_id"`
	Views   int64   `json:"views"`
	Likes   int64   `json:"likes"`
	Replies int64   `json:"replies"`
	Score   float64 `json:"score"`
}

type EngagementHandler struct {
	postRepo repository.PostRepo
}

func NewEngagementHandler(postRepo repository.PostRepo) *EngagementHandler {
	return &EngagementHandler{
		postRepo: postRepo,
	}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event := EngagementEvent{Score: -1}
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.ErrorContext(ctx, "unmarshal engagement event error", "err", err)
		// 脏消息直接丢弃，重试没有意义
		return nil
	}
	if event.PostID == "" {
		return nil
	}

	err := s.postRepo.AddEngagement(ctx, event.PostID, event.Views, event.Likes, event.Replies, event.Score)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		log.ErrorContext(ctx, "apply engagement event error", "post_id", event.PostID, "err", err)
		return err
	}

	log.InfoContext(ctx, "engagement event applied",
		"post_id", event.PostID, "views", event.Views, "likes", event.Likes, "replies", event.Replies)
	return nil
}
