package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 定义了会话令牌中携带的业务身份信息
type UserClaims struct {
	UserID     uint64 `json:"user_id"`
	Username   string `json:"username"`
	TrustLevel int    `json:"trust_level"`
	IsStaff    bool   `json:"is_staff"`
	IsAdmin    bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
