package cron

import (
	"Camellia/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	tagCountJob  *job.TagCountJob
	taskCleanJob *job.TaskCleanJob
}

func NewCronManager(tagCountJob *job.TagCountJob, taskCleanJob *job.TaskCleanJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		tagCountJob:  tagCountJob,
		taskCleanJob: taskCleanJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("0 */5 * * * *", s.tagCountJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@daily", s.taskCleanJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
