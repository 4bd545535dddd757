package service

import (
	"Camellia/internal/api/config"
	"Camellia/internal/api/dto"
	"Camellia/internal/model"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/oauth"
	"Camellia/internal/pkg/redis"
	"Camellia/internal/pkg/security"
	"Camellia/internal/pkg/util"
	"Camellia/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// oauthStateTTL 授权回调 state 的有效期
const oauthStateTTL = 10 * time.Minute

type AuthService interface {
	LoginURL(ctx context.Context) (string, error)
	HandleCallback(ctx context.Context, state, code string) (string, *dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	Me(claims *security.UserClaims) *dto.UserDTO
}

type authServiceImpl struct {
	oauthClient  *oauth.Client
	authorRepo   repository.AuthorRepo
	adminChecker *AdminChecker
}

func NewAuthService(oauthClient *oauth.Client, authorRepo repository.AuthorRepo, adminChecker *AdminChecker) AuthService {
	return &authServiceImpl{
		oauthClient:  oauthClient,
		authorRepo:   authorRepo,
		adminChecker: adminChecker,
	}
}

// LoginURL 生成授权跳转地址，state 暂存 redis 供回调校验
func (s *authServiceImpl) LoginURL(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := redis.SetWithExpiration(ctx, consts.OAuthStateKey+state, "1", oauthStateTTL); err != nil {
		log.ErrorContext(ctx, "LoginURL 写入 state 失败", "err", err)
		return "", UnExpectedError
	}
	return s.oauthClient.AuthorizeURL(state), nil
}

// HandleCallback 授权回调。校验 state 后换取身份并签发会话 Token。
func (s *authServiceImpl) HandleCallback(ctx context.Context, state, code string) (string, *dto.UserDTO, error) {
	if state == "" || code == "" {
		return "", nil, ErrMissingLoginCredentials
	}
	// GetDel 对不存在的键返回空串，未签发或已过期的 state 一律拒绝
	stored, err := redis.GetDel(ctx, consts.OAuthStateKey+state)
	if err != nil || stored == "" {
		return "", nil, ErrOAuthStateMismatch
	}

	accessToken, err := s.oauthClient.ExchangeCode(ctx, code)
	if err != nil {
		log.WarnContext(ctx, "HandleCallback 换取 token 失败", "err", err)
		return "", nil, ErrOAuthExchange
	}

	info, err := s.oauthClient.FetchUserInfo(ctx, accessToken)
	if err != nil {
		log.WarnContext(ctx, "HandleCallback 拉取用户信息失败", "err", err)
		return "", nil, ErrOAuthExchange
	}

	trustLevel := util.ClampTrustLevel(info.TrustLevel, consts.TrustLevelMin, consts.TrustLevelMax)

	// 登录即同步一份作者档案，投稿时直接关联
	author := &model.Author{
		Username:    info.Username,
		DisplayName: info.Name,
		Avatar:      info.AvatarURL,
		ProfileURL:  config.Cfg.Collector.BaseURL + "/u/" + info.Username,
		TrustLevel:  trustLevel,
		IsStaff:     info.IsStaff,
	}
	if err = s.authorRepo.UpsertByUsername(ctx, author); err != nil {
		log.ErrorContext(ctx, "HandleCallback 写入作者失败", "err", err)
		return "", nil, UnExpectedError
	}

	isAdmin := s.adminChecker.IsAdmin(info.ID, info.Username)
	token, err := security.GenerateToken(info.ID, info.Username, trustLevel, info.IsStaff, isAdmin)
	if err != nil {
		log.ErrorContext(ctx, "HandleCallback 签发 token 失败", "err", err)
		return "", nil, UnExpectedError
	}

	log.InfoContext(ctx, "用户登录成功",
		"user_id", info.ID, "username", info.Username, "trust_level", trustLevel, "is_admin", isAdmin)

	return token, &dto.UserDTO{
		ID:         info.ID,
		Username:   info.Username,
		Name:       info.Name,
		Avatar:     info.AvatarURL,
		TrustLevel: trustLevel,
		IsStaff:    info.IsStaff,
		IsAdmin:    isAdmin,
	}, nil
}

// Logout 将当前 Token 签名拉黑到过期为止
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		// 已过期或伪造的 Token 无需拉黑
		return nil
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err = redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, "1", ttl); err != nil {
		log.ErrorContext(ctx, "Logout 写入黑名单失败", "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *authServiceImpl) Me(claims *security.UserClaims) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         claims.UserID,
		Username:   claims.Username,
		TrustLevel: claims.TrustLevel,
		IsStaff:    claims.IsStaff,
		IsAdmin:    claims.IsAdmin,
	}
}
