package api

import (
	"Camellia/internal/api/middleware"
	"Camellia/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.GET("/login", group.AuthHandler.Login)
			authGroup.GET("/callback", group.AuthHandler.Callback)
			authGroup.POST("/logout", group.AuthHandler.Logout)

			meGroup := authGroup.Group("")
			meGroup.Use(middleware.AuthMiddleware())
			{
				meGroup.GET("/me", group.AuthHandler.Me)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			// 游客可访问，信任等级按登录态判定
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.GetFeed)
				authOptGroup.GET("/featured", group.PostHandler.GetFeatured)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/submit", group.PostHandler.SubmitPost)
				authGroup.POST("/collect", group.CollectHandler.Collect)
				authGroup.GET("/collect/:task_id", group.CollectHandler.GetTask)
			}
		}

		apiGroup.GET("/categories", group.PostHandler.ListCategories)
		apiGroup.GET("/tags", group.PostHandler.ListTags)

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckAdmin())
		{
			adminGroup.GET("/posts/pending", group.AdminHandler.PendingPosts)
			adminGroup.GET("/posts/rejected", group.AdminHandler.RejectedPosts)
			adminGroup.POST("/posts/:post_id/moderate", group.AdminHandler.Moderate)
			adminGroup.PUT("/posts/:post_id/featured", group.AdminHandler.SetFeatured)
			adminGroup.GET("/stats", group.AdminHandler.Stats)
		}
	}

	return r
}
