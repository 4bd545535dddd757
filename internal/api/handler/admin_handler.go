package handler

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/api/middleware"
	"Camellia/internal/pkg/response"
	"Camellia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationSvc service.ModerationService
}

func NewAdminHandler(moderationSvc service.ModerationService) *AdminHandler {
	return &AdminHandler{
		moderationSvc: moderationSvc,
	}
}

// Moderate 审核一篇待审帖子
func (s *AdminHandler) Moderate(c *gin.Context) {
	postID := c.Param("post_id")
	claims := middleware.GetClaims(c)

	var req dto.ModerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.moderationSvc.Moderate(c.Request.Context(), claims.Username, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// PendingPosts 待审核列表
func (s *AdminHandler) PendingPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	posts, err := s.moderationSvc.PendingPosts(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// RejectedPosts 已拒绝列表
func (s *AdminHandler) RejectedPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	posts, err := s.moderationSvc.RejectedPosts(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// SetFeatured 设置或取消首页推荐位
func (s *AdminHandler) SetFeatured(c *gin.Context) {
	postID := c.Param("post_id")
	featured := c.DefaultQuery("featured", "true") == "true"

	if err := s.moderationSvc.SetFeatured(c.Request.Context(), postID, featured); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Stats 管理端统计面板
func (s *AdminHandler) Stats(c *gin.Context) {
	stats, err := s.moderationSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
