package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
)

// WebhookTokenHeader carries the processor's shared secret
const WebhookTokenHeader = "X-Webhook-Token"

// WebhookAuthMiddleware authenticates processor callbacks with a shared
// secret. The token may arrive in X-Webhook-Token or as a bearer token; the
// comparison is constant-time. With no secret configured every callback is
// rejected rather than silently accepted.
func WebhookAuthMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			logger.Error(c.Request.Context(), "webhook token not configured, rejecting callback")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "webhook authentication not configured",
			})
			return
		}

		got := c.GetHeader(WebhookTokenHeader)
		if got == "" {
			got = strings.TrimPrefix(c.GetHeader(AuthorizationHeader), BearerPrefix)
		}

		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			logger.Warn(c.Request.Context(), "webhook token mismatch",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid webhook token",
			})
			return
		}

		c.Next()
	}
}
