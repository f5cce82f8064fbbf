package app

import (
	"pattern_edu_backend/docs"
	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/middleware"
	"pattern_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 目录与讲义允许游客浏览；登录用户的详情响应会附带进度
		public.GET("/patterns", c.pattern.ListPatterns)
		public.GET("/patterns/:id",
			middleware.TryAuthMiddleware(cfg, a.services.auth),
			c.pattern.GetPattern)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(
		middleware.AuthMiddleware(cfg, a.services.auth),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar/upload", c.user.UploadAvatar)

		// 学习进度
		authGroup.GET("/learning/progress", c.learning.GetAllProgress)
		authGroup.GET("/learning/progress/:patternId", c.learning.GetProgress)
		authGroup.PUT("/learning/progress/:patternId", c.learning.UpdateProgress)

		// 测验
		authGroup.POST("/learning/quiz/:patternId", c.learning.SubmitQuizAnswer)
		authGroup.GET("/learning/quiz/:patternId/stats", c.learning.GetQuizPatternStats)
		authGroup.GET("/learning/quiz-answers", c.learning.GetQuizAnswers)

		// 历史与统计
		authGroup.GET("/learning/history", c.learning.GetHistory)
		authGroup.GET("/learning/stats", c.learning.GetStats)
		authGroup.GET("/learning/activity", c.learning.GetActivity)
	}
}
