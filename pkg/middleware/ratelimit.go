package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

// RateLimit throttles by client ip using one bucket per address.
func RateLimit(store memcache.LimiterStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !store.Allow(key) {
			log.Warn("rate limit exceeded",
				zap.String("client_ip", key),
				zap.String("path", c.Request.URL.Path))
			utils.HandleServiceError(c, utils.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
