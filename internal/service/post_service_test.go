package service

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/model"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/security"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
)

type fakeAuthorRepo struct {
	nextID  uint64
	authors map[string]*model.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{nextID: 1, authors: make(map[string]*model.Author)}
}

func (f *fakeAuthorRepo) UpsertByUsername(_ context.Context, author *model.Author) error {
	if existing, ok := f.authors[author.Username]; ok {
		author.ID = existing.ID
		f.authors[author.Username] = author
		return nil
	}
	author.ID = f.nextID
	f.nextID++
	f.authors[author.Username] = author
	return nil
}

func (f *fakeAuthorRepo) GetAuthor(_ context.Context, id uint64) (*model.Author, error) {
	for _, author := range f.authors {
		if author.ID == id {
			return author, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthorRepo) GetAuthorByUsername(_ context.Context, username string) (*model.Author, error) {
	author, ok := f.authors[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return author, nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*model.Category
}

func (f *fakeCategoryRepo) ListCategories(_ context.Context) ([]*model.Category, error) {
	var all []*model.Category
	for _, category := range f.categories {
		all = append(all, category)
	}
	return all, nil
}

func (f *fakeCategoryRepo) GetCategory(_ context.Context, id uint64) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) GetCategoryBySlug(_ context.Context, slug string) (*model.Category, error) {
	for _, category := range f.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeTagRepo struct {
	nextID uint64
	tags   map[string]*model.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{nextID: 1, tags: make(map[string]*model.Tag)}
}

func (f *fakeTagRepo) GetOrCreateTags(_ context.Context, tagNames []string) ([]*model.Tag, error) {
	var result []*model.Tag
	for _, name := range tagNames {
		if tag, ok := f.tags[name]; ok {
			result = append(result, tag)
			continue
		}
		tag := &model.Tag{ID: f.nextID, Name: name}
		f.nextID++
		f.tags[name] = tag
		result = append(result, tag)
	}
	return result, nil
}

func (f *fakeTagRepo) ListTags(_ context.Context) ([]*model.Tag, error) {
	var all []*model.Tag
	for _, tag := range f.tags {
		all = append(all, tag)
	}
	return all, nil
}

func (f *fakeTagRepo) AddCount(_ context.Context, tagName string, delta int) error {
	if tag, ok := f.tags[tagName]; ok {
		tag.Count += delta
	}
	return nil
}

func newTestPostService(postRepo *fakePostRepo) PostService {
	return NewPostService(postRepo, newFakeAuthorRepo(), &fakeCategoryRepo{
		categories: map[uint64]*model.Category{1: {ID: 1, Name: "经验分享", Slug: "experience"}},
	}, newFakeTagRepo())
}

func testClaims() *security.UserClaims {
	return &security.UserClaims{UserID: 7, Username: "alice", TrustLevel: 2}
}

func TestSubmitPostDefaultsToPending(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newTestPostService(postRepo)

	result, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:   "标题",
		Content: "<p>正文内容</p>",
	})
	if err != nil {
		t.Fatalf("SubmitPost() error = %v", err)
	}

	if result.Status != consts.PostStatusPendingApproval {
		t.Errorf("默认状态 = %s, want pending_approval", result.Status)
	}

	post := postRepo.posts[result.PostID]
	if post == nil {
		t.Fatal("帖子未落库")
	}
	if post.Excerpt != "正文内容" {
		t.Errorf("摘要 = %q", post.Excerpt)
	}
	if post.PostType != consts.PostTypeOriginal || post.SourcePlatform != consts.SourcePlatformOriginal {
		t.Errorf("来源字段 = %s/%s", post.PostType, post.SourcePlatform)
	}
}

func TestSubmitPostSaveAsDraft(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newTestPostService(postRepo)

	result, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:       "草稿",
		Content:     "内容",
		SaveAsDraft: true,
	})
	if err != nil {
		t.Fatalf("SubmitPost() error = %v", err)
	}
	if result.Status != consts.PostStatusDraft {
		t.Errorf("状态 = %s, want draft", result.Status)
	}
}

func TestSubmitPostMatureContent(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newTestPostService(postRepo)

	result, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:         "标题",
		Content:       "内容",
		MatureContent: true,
		MinTrustLevel: 9,
	})
	if err != nil {
		t.Fatalf("SubmitPost() error = %v", err)
	}

	post := postRepo.posts[result.PostID]
	if len(post.ContentWarnings) != 1 || post.ContentWarnings[0] != "成人内容" {
		t.Errorf("内容警告 = %v", post.ContentWarnings)
	}
	if post.MinTrustLevel != consts.TrustLevelMax {
		t.Errorf("信任等级未被收敛: %d", post.MinTrustLevel)
	}
}

func TestSubmitPostCategoryNotFound(t *testing.T) {
	svc := newTestPostService(newFakePostRepo())

	missing := uint64(99)
	_, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:      "标题",
		Content:    "内容",
		CategoryID: &missing,
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("SubmitPost() error = %v, want ErrCategoryNotFound", err)
	}
}

func TestSubmitPostSharedSource(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newTestPostService(postRepo)

	result, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:     "转载",
		Content:   "内容",
		SourceURL: "https://linux.do/t/topic/8888",
	})
	if err != nil {
		t.Fatalf("SubmitPost() error = %v", err)
	}

	post := postRepo.posts[result.PostID]
	if post.PostType != consts.PostTypeShared || post.SourcePlatform != consts.SourcePlatformLinuxDo {
		t.Errorf("来源字段 = %s/%s", post.PostType, post.SourcePlatform)
	}
	if post.SourceID != "8888" {
		t.Errorf("SourceID = %q", post.SourceID)
	}
}

func TestSubmitPostInvalidSourceURL(t *testing.T) {
	svc := newTestPostService(newFakePostRepo())

	_, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:     "转载",
		Content:   "内容",
		SourceURL: "https://example.com/t/topic/1",
	})
	if !errors.Is(err, ErrInvalidSourceURL) {
		t.Errorf("SubmitPost() error = %v, want ErrInvalidSourceURL", err)
	}
}

func TestSubmitPostLongExcerpt(t *testing.T) {
	postRepo := newFakePostRepo()
	svc := newTestPostService(postRepo)

	result, err := svc.SubmitPost(context.Background(), testClaims(), &dto.SubmitPostReq{
		Title:   "标题",
		Content: strings.Repeat("长", 500),
	})
	if err != nil {
		t.Fatalf("SubmitPost() error = %v", err)
	}

	excerpt := postRepo.posts[result.PostID].Excerpt
	if len([]rune(excerpt)) != consts.ExcerptMaxLen+3 || !strings.HasSuffix(excerpt, "...") {
		t.Errorf("摘要截断异常，长度 = %d", len([]rune(excerpt)))
	}
}

func TestGetPostHiddenFromViewer(t *testing.T) {
	pending := &model.Post{ID: "p1", Status: consts.PostStatusPendingApproval, CreatedAt: time.Now()}
	gated := &model.Post{ID: "p2", Status: consts.PostStatusPublished, MinTrustLevel: 3, CreatedAt: time.Now()}
	svc := newTestPostService(newFakePostRepo(pending, gated))

	if _, err := svc.GetPost(context.Background(), "p1", 4, false); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("待审核帖子对普通用户 error = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.GetPost(context.Background(), "p2", 1, false); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("等级不足 error = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.GetPost(context.Background(), "p2", 3, false); err != nil {
		t.Errorf("等级足够 error = %v", err)
	}
	if _, err := svc.GetPost(context.Background(), "p1", 0, true); err != nil {
		t.Errorf("管理员可见任意状态 error = %v", err)
	}
}
