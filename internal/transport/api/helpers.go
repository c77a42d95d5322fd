package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fds-bd/fds-server/internal/transport/api/middlewares"
)

// getUserIDFromContext returns the id set by middlewares.AuthRequired, or ""
// when the request carries no session.
func getUserIDFromContext(c *gin.Context) string {
	value, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return ""
	}
	userID, ok := value.(string)
	if !ok {
		return ""
	}
	return userID
}
