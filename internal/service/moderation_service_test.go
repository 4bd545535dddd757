package service

import (
	"Camellia/internal/api/dto"
	"Camellia/internal/model"
	"Camellia/internal/pkg/consts"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type fakePostRepo struct {
	posts map[string]*model.Post
}

func newFakePostRepo(posts ...*model.Post) *fakePostRepo {
	repo := &fakePostRepo{posts: make(map[string]*model.Post)}
	for _, post := range posts {
		repo.posts[post.ID] = post
	}
	return repo
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post, _ []*model.PostImage, _ []*model.Tag) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id string) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

func (f *fakePostRepo) GetPostBySource(_ context.Context, platform, sourceID string) (*model.Post, error) {
	for _, post := range f.posts {
		if post.SourcePlatform == platform && post.SourceID == sourceID {
			return post, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePostRepo) ListVisible(_ context.Context, trustLevel, page, size int) ([]*model.Post, int64, error) {
	var all []*model.Post
	for _, post := range f.posts {
		all = append(all, post)
	}
	visible := FilterVisible(all, trustLevel)
	return visible, int64(len(visible)), nil
}

func (f *fakePostRepo) ListByStatus(_ context.Context, status string, page, size int) ([]*model.Post, int64, error) {
	var matched []*model.Post
	for _, post := range f.posts {
		if post.Status == status {
			matched = append(matched, post)
		}
	}
	return matched, int64(len(matched)), nil
}

func (f *fakePostRepo) ListFeatured(_ context.Context, limit int) ([]*model.Post, error) {
	var featured []*model.Post
	for _, post := range f.posts {
		if post.Featured {
			featured = append(featured, post)
		}
	}
	return featured, nil
}

func (f *fakePostRepo) UpdateStatusFrom(_ context.Context, id, fromStatus string, updates map[string]interface{}) (int64, error) {
	post, ok := f.posts[id]
	if !ok || post.Status != fromStatus {
		return 0, nil
	}
	if status, ok := updates["status"].(string); ok {
		post.Status = status
	}
	if approved, ok := updates["approved"].(bool); ok {
		post.Approved = approved
	}
	if featured, ok := updates["featured"].(bool); ok {
		post.Featured = featured
	}
	// 与真实 SQL 同义：COALESCE(published_at, ?) 与 CONCAT(processing_notes, ?)
	if expr, ok := updates["published_at"].(clause.Expr); ok && post.PublishedAt == nil {
		if ts, ok := expr.Vars[0].(time.Time); ok {
			post.PublishedAt = &ts
		}
	}
	if expr, ok := updates["processing_notes"].(clause.Expr); ok {
		if line, ok := expr.Vars[0].(string); ok {
			post.ProcessingNotes += line
		}
	}
	return 1, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) AddEngagement(_ context.Context, id string, views, likes, replies int64, score float64) error {
	post, ok := f.posts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	post.Views += int(views)
	post.Likes += int(likes)
	post.Replies += int(replies)
	return nil
}

func (f *fakePostRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, post := range f.posts {
		counts[post.Status]++
	}
	return counts, nil
}

type fakeRecordRepo struct {
	records []*model.ModerationRecord
}

func (f *fakeRecordRepo) CreateRecord(_ context.Context, record *model.ModerationRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRecordRepo) ListByPost(_ context.Context, postID string) ([]*model.ModerationRecord, error) {
	var matched []*model.ModerationRecord
	for _, record := range f.records {
		if record.PostID == postID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (f *fakeRecordRepo) CountSince(_ context.Context, action string, since time.Time) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.Action == action && !record.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func TestModerateApprove(t *testing.T) {
	post := &model.Post{ID: "p1", Status: consts.PostStatusPendingApproval}
	postRepo := newFakePostRepo(post)
	recordRepo := &fakeRecordRepo{}
	svc := NewModerationService(postRepo, recordRepo)

	result, err := svc.Moderate(context.Background(), "alice", "p1", &dto.ModerateReq{Action: "approve"})
	if err != nil {
		t.Fatalf("Moderate() error = %v", err)
	}

	if result.PostID != "p1" ||
		result.PreviousStatus != consts.PostStatusPendingApproval ||
		result.NewStatus != consts.PostStatusPublished {
		t.Errorf("Moderate() = %+v", result)
	}
	if post.Status != consts.PostStatusPublished || !post.Approved {
		t.Errorf("approve 后帖子状态 = %s approved = %v", post.Status, post.Approved)
	}
	if post.PublishedAt == nil {
		t.Errorf("approve 后 published_at 未写入")
	}
	if !strings.Contains(post.ProcessingNotes, "管理员 alice 批准发布") {
		t.Errorf("审核文本未追加: %q", post.ProcessingNotes)
	}
	if len(recordRepo.records) != 1 || recordRepo.records[0].Action != "approve" {
		t.Errorf("审核记录 = %+v", recordRepo.records)
	}
}

// 已有 published_at 的帖子再次过审时不覆盖首次过审时间
func TestModerateApproveKeepsFirstPublishedAt(t *testing.T) {
	first := time.Now().Add(-72 * time.Hour)
	post := &model.Post{ID: "p1", Status: consts.PostStatusPendingApproval, PublishedAt: &first}
	svc := NewModerationService(newFakePostRepo(post), &fakeRecordRepo{})

	if _, err := svc.Moderate(context.Background(), "alice", "p1", &dto.ModerateReq{Action: "approve"}); err != nil {
		t.Fatalf("Moderate() error = %v", err)
	}
	if post.PublishedAt == nil || !post.PublishedAt.Equal(first) {
		t.Errorf("published_at = %v, 期望保留首次过审时间 %v", post.PublishedAt, first)
	}
}

func TestModerateRejectDefaultReason(t *testing.T) {
	post := &model.Post{ID: "p1", Status: consts.PostStatusPendingApproval}
	postRepo := newFakePostRepo(post)
	recordRepo := &fakeRecordRepo{}
	svc := NewModerationService(postRepo, recordRepo)

	result, err := svc.Moderate(context.Background(), "bob", "p1", &dto.ModerateReq{Action: "reject"})
	if err != nil {
		t.Fatalf("Moderate() error = %v", err)
	}

	if result.NewStatus != consts.PostStatusRejected {
		t.Errorf("NewStatus = %s, want rejected", result.NewStatus)
	}
	if post.Status != consts.PostStatusRejected || post.Approved {
		t.Errorf("reject 后帖子状态 = %s approved = %v", post.Status, post.Approved)
	}
	if len(recordRepo.records) != 1 || recordRepo.records[0].Reason != consts.DefaultRejectReason {
		t.Errorf("默认拒绝理由未填充: %+v", recordRepo.records)
	}
}

func TestModerateConflictingState(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"已发布", consts.PostStatusPublished},
		{"草稿", consts.PostStatusDraft},
		{"已拒绝", consts.PostStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &model.Post{ID: "p1", Status: tt.status}
			svc := NewModerationService(newFakePostRepo(post), &fakeRecordRepo{})

			_, err := svc.Moderate(context.Background(), "alice", "p1", &dto.ModerateReq{Action: "approve"})
			if !errors.Is(err, ErrConflictingState) {
				t.Errorf("Moderate() error = %v, want ErrConflictingState", err)
			}
			if post.Status != tt.status {
				t.Errorf("冲突时状态被改写为 %s", post.Status)
			}
		})
	}
}

func TestModerateNotFound(t *testing.T) {
	svc := NewModerationService(newFakePostRepo(), &fakeRecordRepo{})

	_, err := svc.Moderate(context.Background(), "alice", "missing", &dto.ModerateReq{Action: "reject"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("Moderate() error = %v, want ErrPostNotFound", err)
	}
}

func TestModerateInvalidAction(t *testing.T) {
	post := &model.Post{ID: "p1", Status: consts.PostStatusPendingApproval}
	svc := NewModerationService(newFakePostRepo(post), &fakeRecordRepo{})

	_, err := svc.Moderate(context.Background(), "alice", "p1", &dto.ModerateReq{Action: "publish"})
	if !errors.Is(err, ErrInvalidAction) {
		t.Errorf("Moderate() error = %v, want ErrInvalidAction", err)
	}
	if post.Status != consts.PostStatusPendingApproval {
		t.Errorf("无效动作不应改变状态，当前 = %s", post.Status)
	}
}

func TestSetFeaturedOnlyPublished(t *testing.T) {
	published := &model.Post{ID: "p1", Status: consts.PostStatusPublished}
	pending := &model.Post{ID: "p2", Status: consts.PostStatusPendingApproval}
	svc := NewModerationService(newFakePostRepo(published, pending), &fakeRecordRepo{})

	if err := svc.SetFeatured(context.Background(), "p1", true); err != nil {
		t.Fatalf("SetFeatured() error = %v", err)
	}
	if !published.Featured {
		t.Errorf("已发布帖子未被推荐")
	}

	if err := svc.SetFeatured(context.Background(), "p2", true); !errors.Is(err, ErrConflictingState) {
		t.Errorf("SetFeatured() 非发布态 error = %v, want ErrConflictingState", err)
	}
}

func TestStats(t *testing.T) {
	posts := []*model.Post{
		{ID: "p1", Status: consts.PostStatusPublished},
		{ID: "p2", Status: consts.PostStatusPublished},
		{ID: "p3", Status: consts.PostStatusPendingApproval},
		{ID: "p4", Status: consts.PostStatusRejected},
		{ID: "p5", Status: consts.PostStatusDraft},
	}
	// 当天按本地零点起算
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	recordRepo := &fakeRecordRepo{records: []*model.ModerationRecord{
		{Action: "approve", CreatedAt: startOfToday.Add(30 * time.Minute)},
		{Action: "approve", CreatedAt: startOfToday.Add(-30 * time.Minute)},
		{Action: "reject", CreatedAt: now.Add(-48 * time.Hour)},
	}}
	svc := NewModerationService(newFakePostRepo(posts...), recordRepo)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.TotalPosts != 5 || stats.PublishedPosts != 2 || stats.PendingPosts != 1 ||
		stats.RejectedPosts != 1 || stats.DraftPosts != 1 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.ApprovedToday != 1 {
		t.Errorf("ApprovedToday = %d, want 1", stats.ApprovedToday)
	}
	if stats.RejectedToday != 0 {
		t.Errorf("RejectedToday = %d, want 0", stats.RejectedToday)
	}
}
