package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/jwt"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// MerchantIDKey is the context key for merchant ID
	MerchantIDKey = "merchantId"
	// MerchantEmailKey is the context key for merchant email
	MerchantEmailKey = "merchantEmail"
)

// AuthMiddleware validates the merchant bearer token and stores the merchant
// identity in the gin context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.Warn(c.Request.Context(), "token validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(MerchantIDKey, claims.MerchantID)
		c.Set(MerchantEmailKey, claims.Email)

		c.Next()
	}
}

// GetMerchantID gets the authenticated merchant ID from context
func GetMerchantID(c *gin.Context) (uuid.UUID, bool) {
	merchantID, exists := c.Get(MerchantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return merchantID.(uuid.UUID), true
}

// GetMerchantEmail gets the authenticated merchant email from context
func GetMerchantEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(MerchantEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
