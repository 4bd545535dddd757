package handler

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/api/middleware"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/response"
	"Camellia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// viewerTrustLevel 当前观察者的信任等级，匿名为 0
func viewerTrustLevel(c *gin.Context) int {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.TrustLevel
	}
	return consts.TrustLevelMin
}

// GetFeed 首页帖子流
func (s *PostHandler) GetFeed(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	posts, err := s.postSvc.GetFeed(c.Request.Context(), viewerTrustLevel(c), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetFeatured 首页推荐位
func (s *PostHandler) GetFeatured(c *gin.Context) {
	posts, err := s.postSvc.GetFeatured(c.Request.Context(), viewerTrustLevel(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost 帖子明细
func (s *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("post_id")
	claims := middleware.GetClaims(c)
	isAdmin := claims != nil && (claims.IsAdmin || claims.IsStaff)

	post, err := s.postSvc.GetPost(c.Request.Context(), postID, viewerTrustLevel(c), isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// SubmitPost 投稿
func (s *PostHandler) SubmitPost(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req dto.SubmitPostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.postSvc.SubmitPost(c.Request.Context(), claims, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListCategories 分类列表
func (s *PostHandler) ListCategories(c *gin.Context) {
	categories, err := s.postSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

// ListTags 标签列表
func (s *PostHandler) ListTags(c *gin.Context) {
	tags, err := s.postSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
