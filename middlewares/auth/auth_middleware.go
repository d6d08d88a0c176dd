package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

func unauthorized(c *gin.Context, code, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": code, "error": msg})
}

// AuthMiddleware verifies an HMAC-signed bearer token and stores its subject
// (the "user_id" claim, else "sub") under utils.ContextSubjectKey. With an
// empty secret every request is let through.
func AuthMiddleware(secret string) gin.HandlerFunc {
	if secret == "" {
		logger.WarnLogger.Warn("JWT_SECRET not set, admin routes are unauthenticated")
		return func(c *gin.Context) { c.Next() }
	}
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "NO_TOKEN", "No authorization token provided.")
			return
		}
		if len(authHeader) <= 7 || !strings.EqualFold(authHeader[:7], "bearer ") {
			unauthorized(c, "INVALID_AUTH_FORMAT", "Invalid authorization format.")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(authHeader[7:], claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			logger.WarnLogger.Warnf("Rejected token from %s: %v", c.ClientIP(), err)
			unauthorized(c, "INVALID_TOKEN", "Invalid token.")
			return
		}

		subject, _ := claims["user_id"].(string)
		if subject == "" {
			subject, _ = claims.GetSubject()
		}
		if subject == "" {
			unauthorized(c, "UNAUTHORIZED", "Unauthorized: Missing user identification from token.")
			return
		}

		c.Set(utils.ContextSubjectKey, subject)
		c.Next()
	}
}
