package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RateStore counts requests per fixed window. Satisfied by the redis client.
type RateStore interface {
	IncrWindow(key string, window time.Duration) (int64, error)
}

// Throttle enforces the two request-rate tiers: anonymous callers share a
// per-IP ceiling, authenticated callers get their own per-user one. Must run
// after Identity so the user tier applies.
func Throttle(store RateStore, anonPerMinute, userPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, limit := throttleKey(c, anonPerMinute, userPerMinute)
		n, err := store.IncrWindow(key, time.Minute)
		if err != nil {
			// A broken counter store should not take the API down.
			log.Printf("throttle counter unavailable: %v", err)
			c.Next()
			return
		}
		if n > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "request was throttled"})
			return
		}
		c.Next()
	}
}

func throttleKey(c *gin.Context, anonLimit, userLimit int) (string, int) {
	if user := CurrentUser(c); user != nil {
		return fmt.Sprintf("user:%d", user.ID), userLimit
	}
	return "anon:" + c.ClientIP(), anonLimit
}
