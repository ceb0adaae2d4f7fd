package middleware

import (
	"net/http"
	"strings"

	"github.com/anoixa/photo-album/api/common"
	"github.com/anoixa/photo-album/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// JWTAuth 校验 Bearer 令牌，并把 user_id 写入上下文
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization 头
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.RespondFail(c, http.StatusUnauthorized, "No Authorization request header")
			c.Abort()
			return
		}

		// 解析 Scheme 和 Token
		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || token == "" {
			common.RespondFail(c, http.StatusUnauthorized, "Authorization field format error")
			c.Abort()
			return
		}
		if !strings.EqualFold(scheme, "Bearer") {
			common.RespondFail(c, http.StatusUnauthorized, "Unsupported authentication scheme")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			common.RespondFail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// GetUserID 读取认证中间件写入的用户 ID
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok && userID != 0
}
