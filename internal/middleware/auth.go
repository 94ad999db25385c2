package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/0xj4an-Work/landing-latam/internal/config"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth 管理后台鉴权：接受Basic凭证或Bearer会话令牌。
// 凭证未配置时所有 /admin 请求一律401（默认关闭）。
func AdminAuth(cfg config.AdminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Configured() {
			unauthorized(c, "Admin auth not configured")
			return
		}

		if user, pass, ok := c.Request.BasicAuth(); ok {
			if CheckCredentials(cfg, user, pass) {
				c.Next()
				return
			}
			unauthorized(c, "Invalid credentials")
			return
		}

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if err := ValidateSession(cfg, token); err == nil {
				c.Next()
				return
			}
			unauthorized(c, "Invalid or expired session")
			return
		}

		unauthorized(c, "Authorization required")
	}
}

// CheckCredentials 校验管理员凭证。密码配置为bcrypt哈希（$2开头）时按哈希比对，
// 否则按常数时间明文比对。
func CheckCredentials(cfg config.AdminConfig, user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1

	var passOK bool
	if strings.HasPrefix(cfg.Password, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.Password), []byte(pass)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
	}

	return userOK && passOK
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Basic realm="Admin"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
