package middleware

import (
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/security"
	"context"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入身份，失败或缺失按匿名处理。
// 匿名观察者的信任等级为 0。
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Set("user_id", uint64(0))
			c.Set("trust_level", consts.TrustLevelMin)
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Set("user_id", uint64(0))
			c.Set("trust_level", consts.TrustLevelMin)
		} else {
			c.Set(ClaimsKey, claims)
			c.Set("user_id", claims.UserID)
			c.Set("trust_level", claims.TrustLevel)
			newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
