package consts

// 帖子审核状态（闭集，见 model.Post.Status）
const (
	PostStatusDraft           = "draft"
	PostStatusPendingApproval = "pending_approval"
	PostStatusPublished       = "published"
	PostStatusHidden          = "hidden"
	PostStatusDeleted         = "deleted"
	PostStatusRejected        = "rejected"
)

// 帖子类型
const (
	PostTypeOriginal  = "original"
	PostTypeCollected = "collected"
	PostTypeShared    = "shared"
)

// 来源平台
const (
	SourcePlatformLinuxDo  = "linux.do"
	SourcePlatformOriginal = "original"
)

// 采集任务状态
const (
	TaskStatusPending    = "pending"
	TaskStatusProcessing = "processing"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

// 审核动作
const (
	ModerationActionApprove = "approve"
	ModerationActionReject  = "reject"
)

const (
	// TrustLevelMin / TrustLevelMax 信任等级取值范围（linux.do 0-4）
	TrustLevelMin = 0
	TrustLevelMax = 4

	// ExcerptMaxLen 摘要最大字符数
	ExcerptMaxLen = 200

	// FeaturedHomeLimit 首页推荐位数量
	FeaturedHomeLimit = 6

	// DefaultRejectReason 拒绝时未填写理由的默认文案
	DefaultRejectReason = "内容不符合社区规范"
)

// AuthTokenCookie 会话 Cookie 名
const AuthTokenCookie = "auth_token"
