package middleware

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/0xj4an-Work/landing-latam/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// IssueSession 为管理后台签发HS256会话令牌
func IssueSession(cfg config.AdminConfig) (string, error) {
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   cfg.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret(cfg))
}

// ValidateSession 校验会话令牌
func ValidateSession(cfg config.AdminConfig, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return sessionSecret(cfg), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid session token")
	}
	return nil
}

// sessionSecret 未显式配置时从管理员凭证派生，避免裸跑出空密钥
func sessionSecret(cfg config.AdminConfig) []byte {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret)
	}
	sum := sha256.Sum256([]byte("buildathon-session:" + cfg.Username + ":" + cfg.Password))
	return sum[:]
}
