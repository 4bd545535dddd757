package service

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/model"
	"Camellia/internal/pkg/collector"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/redis"
	"Camellia/internal/pkg/security"
	"Camellia/internal/pkg/util"
	"Camellia/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PostService interface {
	SubmitPost(ctx context.Context, claims *security.UserClaims, req *dto.SubmitPostReq) (*dto.SubmitPostResp, error)
	GetFeed(ctx context.Context, viewerTrustLevel, page, size int) (*dto.PageDTO, error)
	GetFeatured(ctx context.Context, viewerTrustLevel int) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, postID string, viewerTrustLevel int, isAdmin bool) (*dto.PostDTO, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	authorRepo   repository.AuthorRepo
	categoryRepo repository.CategoryRepo
	tagRepo      repository.TagRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	authorRepo repository.AuthorRepo,
	categoryRepo repository.CategoryRepo,
	tagRepo repository.TagRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		authorRepo:   authorRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// SubmitPost 投稿。默认直接进入待审核队列，save_as_draft 时停在草稿态。
// min_trust_level 在创建时固定，后续不提供修改入口。
func (s *postServiceImpl) SubmitPost(ctx context.Context, claims *security.UserClaims, req *dto.SubmitPostReq) (*dto.SubmitPostResp, error) {
	postType := req.PostType
	if postType == "" {
		postType = consts.PostTypeOriginal
	}
	sourcePlatform := consts.SourcePlatformOriginal
	sourceID := ""
	if req.SourceURL != "" {
		ref, ok := collector.ParseTopicURL(req.SourceURL)
		if !ok {
			return nil, ErrInvalidSourceURL
		}
		sourcePlatform = consts.SourcePlatformLinuxDo
		sourceID = strconv.FormatUint(ref.TopicID, 10)
		if req.PostType == "" {
			postType = consts.PostTypeShared
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategory(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, UnExpectedError
		}
	}

	author := &model.Author{
		Username:    claims.Username,
		DisplayName: claims.Username,
		TrustLevel:  claims.TrustLevel,
		IsStaff:     claims.IsStaff,
	}
	if err := s.authorRepo.UpsertByUsername(ctx, author); err != nil {
		log.ErrorContext(ctx, "SubmitPost 写入作者失败", "err", err)
		return nil, UnExpectedError
	}

	tagNames := util.NormalizeTags(req.TagsText, req.Tags)
	tags, err := s.tagRepo.GetOrCreateTags(ctx, tagNames)
	if err != nil {
		log.ErrorContext(ctx, "SubmitPost 写入标签失败", "err", err)
		return nil, UnExpectedError
	}

	status := consts.PostStatusPendingApproval
	if req.SaveAsDraft {
		status = consts.PostStatusDraft
	}

	post := &model.Post{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Content:        req.Content,
		RawContent:     req.Content,
		Excerpt:        util.ExtractExcerpt(req.Content, consts.ExcerptMaxLen),
		SourceURL:      req.SourceURL,
		SourceID:       sourceID,
		SourcePlatform: sourcePlatform,
		PostType:       postType,
		AuthorID:       author.ID,
		CategoryID:     req.CategoryID,
		MinTrustLevel:  util.ClampTrustLevel(req.MinTrustLevel, consts.TrustLevelMin, consts.TrustLevelMax),
		MatureContent:  req.MatureContent,
		Status:         status,
	}
	if req.MatureContent {
		post.ContentWarnings = model.WarningList{"成人内容"}
	}

	if err = s.postRepo.CreatePost(ctx, post, nil, tags); err != nil {
		log.ErrorContext(ctx, "SubmitPost 写入帖子失败", "err", err)
		return nil, UnExpectedError
	}

	for _, name := range tagNames {
		_ = redis.IncrBy(ctx, consts.TagCountKey+name, 1)
		_ = redis.SAdd(ctx, consts.TagDirtyKey, name)
	}

	return &dto.SubmitPostResp{PostID: post.ID, Status: post.Status}, nil
}

// GetFeed 首页帖子流，只返回观察者可见的已发布帖子
func (s *postServiceImpl) GetFeed(ctx context.Context, viewerTrustLevel, page, size int) (*dto.PageDTO, error) {
	page, size = util.NormalizePage(page, size)
	viewerTrustLevel = util.ClampTrustLevel(viewerTrustLevel, consts.TrustLevelMin, consts.TrustLevelMax)

	posts, total, err := s.postRepo.ListVisible(ctx, viewerTrustLevel, page, size)
	if err != nil {
		log.ErrorContext(ctx, "GetFeed 查询失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, toPostDTO(post))
	}
	return &dto.PageDTO{List: list, Total: total, Page: page, Size: size}, nil
}

// GetFeatured 首页推荐位，最多返回固定数量
func (s *postServiceImpl) GetFeatured(ctx context.Context, viewerTrustLevel int) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListFeatured(ctx, consts.FeaturedHomeLimit*4)
	if err != nil {
		log.ErrorContext(ctx, "GetFeatured 查询失败", "err", err)
		return nil, UnExpectedError
	}

	visible := FilterVisible(posts, viewerTrustLevel)
	if len(visible) > consts.FeaturedHomeLimit {
		visible = visible[:consts.FeaturedHomeLimit]
	}

	list := make([]*dto.PostDTO, 0, len(visible))
	for _, post := range visible {
		list = append(list, toPostDTO(post))
	}
	return list, nil
}

// GetPost 帖子明细。非管理员对不可见帖子一律按不存在处理。
func (s *postServiceImpl) GetPost(ctx context.Context, postID string, viewerTrustLevel int, isAdmin bool) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		log.ErrorContext(ctx, "GetPost 查询失败", "err", err)
		return nil, UnExpectedError
	}

	if !isAdmin && !CanView(post, viewerTrustLevel) {
		return nil, ErrPostNotFound
	}

	return toPostDTO(post), nil
}

func (s *postServiceImpl) ListCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		log.ErrorContext(ctx, "ListCategories 查询失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		item := &dto.CategoryDTO{}
		_ = copier.Copy(item, category)
		list = append(list, item)
	}
	return list, nil
}

func (s *postServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		log.ErrorContext(ctx, "ListTags 查询失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		list = append(list, &dto.TagDTO{ID: tag.ID, Name: tag.Name, Count: tag.Count})
	}
	return list, nil
}

// toPostDTO 模型转响应对象
func toPostDTO(post *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)

	item.ContentWarnings = post.ContentWarnings
	item.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	if post.PublishedAt != nil {
		item.PublishedAt = post.PublishedAt.Format(time.RFC3339)
	}

	item.Tags = make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		item.Tags = append(item.Tags, tag.Name)
	}

	if post.Author.Username != "" {
		author := &dto.AuthorDTO{}
		_ = copier.Copy(author, &post.Author)
		item.Author = author
	}
	if post.Category != nil {
		category := &dto.CategoryDTO{}
		_ = copier.Copy(category, post.Category)
		item.Category = category
	}
	if len(post.Images) > 0 {
		item.Images = make([]*dto.PostImageDTO, 0, len(post.Images))
		for _, image := range post.Images {
			imageDTO := &dto.PostImageDTO{}
			_ = copier.Copy(imageDTO, &image)
			item.Images = append(item.Images, imageDTO)
		}
	}

	return item
}
