package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/akbarw/onlinebank/internal/services/throttle"
)

// LoginAttempts records an attempt for the client's IP before the login
// handler runs and rejects clients that are over the limit. The attempt is
// counted regardless of whether the credentials later check out
func LoginAttempts(limiter *throttle.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := limiter.RecordAttempt(c.ClientIP())
		if !decision.Allowed {
			log.Debug().
				Str("ip", c.ClientIP()).Str("path", c.FullPath()).Int("retryAfter", decision.RetryAfter).
				Msg("Login attempt limit exceeded")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf(
					"attempt limit exceeded, wait %d seconds before trying again", decision.RetryAfter,
				),
				"retry_after": decision.RetryAfter,
			})
			return
		}
		c.Next()
	}
}
