package middleware

import (
	"strings"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/service"
	"pattern_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer 令牌并把 claims 注入上下文。
// 已注销（黑名单中的 jti）的令牌视同未认证
func AuthMiddleware(cfg *config.Config, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg, auth)
		if !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware 可选认证：令牌有效则注入 claims，无效或缺失时放行为游客
func TryAuthMiddleware(cfg *config.Config, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, cfg, auth); ok {
			c.Set("user", claims)
		}
		c.Next()
	}
}

func parseToken(c *gin.Context, cfg *config.Config, auth *service.AuthService) (*util.Claims, bool) {
	tokenString := ""
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	if tokenString == "" {
		tokenString = c.Query("token")
	}

	if tokenString == "" {
		return nil, false
	}

	claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
	if err != nil {
		return nil, false
	}

	revoked, err := auth.IsTokenRevoked(c.Request.Context(), claims.ID)
	if err != nil || revoked {
		return nil, false
	}

	return claims, true
}

type UserActivityRepo interface {
	UpdateLastSeen(userID uint) error
}

func ActivityMiddleware(repo UserActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			// 异步更新，不阻塞主流程
			go repo.UpdateLastSeen(claims.UserID)
		}
		c.Next()
	}
}
