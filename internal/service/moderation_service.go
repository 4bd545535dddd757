package service

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/model"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/util"
	"Camellia/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

type ModerationService interface {
	Moderate(ctx context.Context, actor, postID string, req *dto.ModerateReq) (*dto.ModerateResp, error)
	PendingPosts(ctx context.Context, page, size int) (*dto.PageDTO, error)
	RejectedPosts(ctx context.Context, page, size int) (*dto.PageDTO, error)
	SetFeatured(ctx context.Context, postID string, featured bool) error
	Stats(ctx context.Context) (*dto.StatsDTO, error)
}

type moderationServiceImpl struct {
	postRepo   repository.PostRepo
	recordRepo repository.ModerationRecordRepo
}

func NewModerationService(postRepo repository.PostRepo, recordRepo repository.ModerationRecordRepo) ModerationService {
	return &moderationServiceImpl{
		postRepo:   postRepo,
		recordRepo: recordRepo,
	}
}

// Moderate 审核一篇待审帖子。
// 前置状态必须是 pending_approval，用条件更新保证并发下只有一个决定生效。
func (s *moderationServiceImpl) Moderate(ctx context.Context, actor, postID string, req *dto.ModerateReq) (*dto.ModerateResp, error) {
	if req.Action != consts.ModerationActionApprove && req.Action != consts.ModerationActionReject {
		return nil, ErrInvalidAction
	}

	now := time.Now()
	record := &model.ModerationRecord{
		PostID:    postID,
		Actor:     actor,
		Action:    req.Action,
		Reason:    req.Reason,
		CreatedAt: now,
	}

	var newStatus string
	updates := map[string]interface{}{
		"updated_at": now,
	}
	switch req.Action {
	case consts.ModerationActionApprove:
		newStatus = consts.PostStatusPublished
		updates["status"] = newStatus
		updates["approved"] = true
		// 首次过审时间，已有值则不覆盖
		updates["published_at"] = gorm.Expr("COALESCE(published_at, ?)", now)
	case consts.ModerationActionReject:
		newStatus = consts.PostStatusRejected
		updates["status"] = newStatus
		updates["approved"] = false
		if record.Reason == "" {
			record.Reason = consts.DefaultRejectReason
		}
	}
	updates["processing_notes"] = gorm.Expr("CONCAT(processing_notes, ?)", record.NoteLine())

	rows, err := s.postRepo.UpdateStatusFrom(ctx, postID, consts.PostStatusPendingApproval, updates)
	if err != nil {
		log.ErrorContext(ctx, "Moderate 更新状态失败", "err", err, "post_id", postID)
		return nil, UnExpectedError
	}
	if rows == 0 {
		if _, err = s.postRepo.GetPost(ctx, postID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPostNotFound
			}
			return nil, UnExpectedError
		}
		return nil, ErrConflictingState
	}

	if err = s.recordRepo.CreateRecord(ctx, record); err != nil {
		// 状态已落库，记录失败只告警不回滚
		log.ErrorContext(ctx, "Moderate 写入审核记录失败", "err", err, "post_id", postID)
	}

	log.InfoContext(ctx, "帖子审核完成",
		"post_id", postID, "actor", actor, "action", req.Action, "new_status", newStatus)

	return &dto.ModerateResp{
		PostID:         postID,
		PreviousStatus: consts.PostStatusPendingApproval,
		NewStatus:      newStatus,
	}, nil
}

func (s *moderationServiceImpl) PendingPosts(ctx context.Context, page, size int) (*dto.PageDTO, error) {
	return s.listByStatus(ctx, consts.PostStatusPendingApproval, page, size)
}

func (s *moderationServiceImpl) RejectedPosts(ctx context.Context, page, size int) (*dto.PageDTO, error) {
	return s.listByStatus(ctx, consts.PostStatusRejected, page, size)
}

func (s *moderationServiceImpl) listByStatus(ctx context.Context, status string, page, size int) (*dto.PageDTO, error) {
	page, size = util.NormalizePage(page, size)

	posts, total, err := s.postRepo.ListByStatus(ctx, status, page, size)
	if err != nil {
		log.ErrorContext(ctx, "按状态查询帖子失败", "err", err, "status", status)
		return nil, UnExpectedError
	}

	list := make([]*dto.PostAdminDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, &dto.PostAdminDTO{
			PostDTO:         *toPostDTO(post),
			ProcessingNotes: post.ProcessingNotes,
		})
	}
	return &dto.PageDTO{List: list, Total: total, Page: page, Size: size}, nil
}

// SetFeatured 设置或取消首页推荐位，仅对已发布帖子生效
func (s *moderationServiceImpl) SetFeatured(ctx context.Context, postID string, featured bool) error {
	rows, err := s.postRepo.UpdateStatusFrom(ctx, postID, consts.PostStatusPublished, map[string]interface{}{
		"featured":   featured,
		"updated_at": time.Now(),
	})
	if err != nil {
		log.ErrorContext(ctx, "SetFeatured 更新失败", "err", err, "post_id", postID)
		return UnExpectedError
	}
	if rows == 0 {
		if _, err = s.postRepo.GetPost(ctx, postID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return UnExpectedError
		}
		return ErrConflictingState
	}
	return nil
}

func (s *moderationServiceImpl) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	counts, err := s.postRepo.CountByStatus(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Stats 查询失败", "err", err)
		return nil, UnExpectedError
	}

	stats := &dto.StatsDTO{
		PublishedPosts: counts[consts.PostStatusPublished],
		PendingPosts:   counts[consts.PostStatusPendingApproval],
		RejectedPosts:  counts[consts.PostStatusRejected],
		DraftPosts:     counts[consts.PostStatusDraft],
	}
	for _, count := range counts {
		stats.TotalPosts += count
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if approved, err := s.recordRepo.CountSince(ctx, consts.ModerationActionApprove, midnight); err == nil {
		stats.ApprovedToday = approved
	}
	if rejected, err := s.recordRepo.CountSince(ctx, consts.ModerationActionReject, midnight); err == nil {
		stats.RejectedToday = rejected
	}

	return stats, nil
}
