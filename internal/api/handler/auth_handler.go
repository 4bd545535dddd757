package handler

import (
	"Camellia/internal/api/config"
	"Camellia/internal/api/middleware"
	"Camellia/internal/pkg/consts"
	"Camellia/internal/pkg/response"
	"Camellia/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Login 跳转到 linux.do 授权页
func (s *AuthHandler) Login(c *gin.Context) {
	loginURL, err := s.authSvc.LoginURL(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, loginURL)
}

// Callback 授权回调，签发会话并种 Cookie
func (s *AuthHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")

	token, user, err := s.authSvc.HandleCallback(c.Request.Context(), state, code)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := config.Cfg.JWT.ExpireHours * 3600
	c.SetCookie(consts.AuthTokenCookie, token, maxAge, "/", "", false, true)

	response.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout 注销当前会话
func (s *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := ""
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else if cookie, err := c.Cookie(consts.AuthTokenCookie); err == nil {
		token = cookie
	}

	if token != "" {
		if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}

	c.SetCookie(consts.AuthTokenCookie, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// Me 当前登录用户信息
func (s *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, response.Unauthorized, "未登录")
		return
	}
	response.Success(c, s.authSvc.Me(claims))
}
