package job

import (
	"Camellia/internal/pkg/logger"
	"Camellia/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// taskRetention 终态采集任务的保留时长
const taskRetention = 7 * 24 * time.Hour

// TaskCleanJob 清理已完成或失败的历史采集任务
type TaskCleanJob struct {
	taskRepo repository.CollectionTaskRepo
}

func NewTaskCleanJob(taskRepo repository.CollectionTaskRepo) *TaskCleanJob {
	return &TaskCleanJob{
		taskRepo: taskRepo,
	}
}

func (s *TaskCleanJob) Run() {
	traceID := "job-task-clean-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	deleted, err := s.taskRepo.DeleteFinishedBefore(ctx, time.Now().Add(-taskRetention))
	if err != nil {
		log.ErrorContext(ctx, "clean collection tasks error", "err", err)
		return
	}

	log.InfoContext(ctx, "collection task clean finished", "deleted", deleted)
}
