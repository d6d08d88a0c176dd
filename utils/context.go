// utils/context.go
package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
)

// ContextSubjectKey is where the auth middleware stores the token subject.
const ContextSubjectKey = "sub"

// RespondError writes {"error": msg} with the status matching err's kind.
// Internal causes are logged, never returned to the client.
func RespondError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status >= 500 {
		logger.ErrorLogger.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": PublicMessage(err)})
}

// GetSubjectFromContext returns the authenticated subject, if any.
func GetSubjectFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(ContextSubjectKey)
	if !exists {
		return "", ErrUserIDNotFound
	}
	sub, ok := v.(string)
	if !ok || sub == "" {
		return "", ErrUnauthorized
	}
	return sub, nil
}
