package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shiftline-backend/shared/config"
	"shiftline-backend/shared/utils/cache"
)

// LoginRateLimit limits authentication attempts per client IP using redis
// counters. When redis is unavailable the limiter is skipped: losing rate
// limiting must not take down login.
func LoginRateLimit() gin.HandlerFunc {
	cfg := config.GetConfig()
	maxAttempts := int64(cfg.GetLoginRateLimitMaxAttempts())
	window := time.Duration(cfg.GetLoginRateLimitWindowSeconds()) * time.Second

	return func(c *gin.Context) {
		cm := cache.GetCacheManager()
		if cm == nil {
			c.Next()
			return
		}

		key := cache.LoginAttemptKey("ip", c.ClientIP())
		count, err := cm.IncrementWithWindow(key, window)
		if err != nil {
			zap.L().Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count > maxAttempts {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many attempts. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
