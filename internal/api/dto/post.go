package dto

// AuthorDTO 帖子作者
type AuthorDTO struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	ProfileURL  string `json:"profile_url"`
	TrustLevel  int    `json:"trust_level"`
	BadgeCount  int    `json:"badge_count"`
	IsStaff     bool   `json:"is_staff"`
}

// CategoryDTO 分类
type CategoryDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
}

// TagDTO 标签
type TagDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PostImageDTO 帖子图片
type PostImageDTO struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Alt          string `json:"alt,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	IsFeatured   bool   `json:"is_featured"`
}

// PostDTO 帖子明细
type PostDTO struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Excerpt         string          `json:"excerpt"`
	SourceURL       string          `json:"source_url,omitempty"`
	SourcePlatform  string          `json:"source_platform"`
	PostType        string          `json:"post_type"`
	Status          string          `json:"status"`
	Featured        bool            `json:"featured"`
	MinTrustLevel   int             `json:"min_trust_level"`
	MatureContent   bool            `json:"mature_content"`
	ContentWarnings []string        `json:"content_warnings,omitempty"`
	Tags            []string        `json:"tags"`
	Views           int             `json:"views"`
	Likes           int             `json:"likes"`
	Replies         int             `json:"replies"`
	Author          *AuthorDTO      `json:"author,omitempty"`
	Category        *CategoryDTO    `json:"category,omitempty"`
	Images          []*PostImageDTO `json:"images,omitempty"`
	CreatedAt       string          `json:"created_at"`
	PublishedAt     string          `json:"published_at,omitempty"`
}

// PostAdminDTO 管理端帖子明细，附带审核轨迹
type PostAdminDTO struct {
	PostDTO
	ProcessingNotes string `json:"processing_notes"`
}

// SubmitPostReq 帖子投稿请求
type SubmitPostReq struct {
	Title         string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Content       string   `json:"content" binding:"required" validate:"min=1"`
	CategoryID    *uint64  `json:"category_id"`
	Tags          []string `json:"tags" validate:"max=10"`
	TagsText      string   `json:"tags_text"`
	MinTrustLevel int      `json:"min_trust_level" validate:"min=0,max=4"`
	MatureContent bool     `json:"mature_content"`
	PostType      string   `json:"post_type" validate:"omitempty,oneof=original collected shared"`
	SourceURL     string   `json:"source_url" validate:"max=512"`
	SaveAsDraft   bool     `json:"save_as_draft"`
}

// SubmitPostResp 投稿结果
type SubmitPostResp struct {
	PostID string `json:"post_id"`
	Status string `json:"status"`
}

// ModerateReq 审核请求
type ModerateReq struct {
	Action string `json:"action" binding:"required" validate:"oneof=approve reject"`
	Reason string `json:"reason" validate:"max=255"`
}

// ModerateResp 审核结果
type ModerateResp struct {
	PostID         string `json:"postId"`
	PreviousStatus string `json:"previousStatus"`
	NewStatus      string `json:"newStatus"`
}

// CollectReq 帖子采集请求
type CollectReq struct {
	URL string `json:"url" binding:"required" validate:"max=512"`
}

// CollectionTaskDTO 采集任务
type CollectionTaskDTO struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Status       string `json:"status"`
	Progress     int    `json:"progress"`
	Error        string `json:"error,omitempty"`
	ResultPostID string `json:"result_post_id,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// StatsDTO 管理端统计
type StatsDTO struct {
	TotalPosts      int64 `json:"total_posts"`
	PublishedPosts  int64 `json:"published_posts"`
	PendingPosts    int64 `json:"pending_posts"`
	RejectedPosts   int64 `json:"rejected_posts"`
	DraftPosts      int64 `json:"draft_posts"`
	ApprovedToday   int64 `json:"approved_today"`
	RejectedToday   int64 `json:"rejected_today"`
}
