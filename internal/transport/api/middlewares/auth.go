package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/transport/api/tokens"
)

var ErrSessionNotExist = errors.New("session not exist")

// SessionCookieName is the HTTP-only cookie carrying the signed session token.
const SessionCookieName = "fds_session"

const (
	CurrentUserIDKey   = "currentUserID"
	CurrentUserRoleKey = "currentUserRole"
)

// checkSession reads the session cookie and validates its token. A missing
// cookie returns ErrSessionNotExist.
func checkSession(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	cookie, cookieErr := c.Cookie(SessionCookieName)
	if cookieErr != nil || cookie == "" {
		return nil, ErrSessionNotExist
	}

	claims, err := tokens.ValidateUserJWT(cookie, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	return claims, nil
}

// AuthRequired rejects requests without a valid session and records the
// session's user id and role in the context (CurrentUserIDKey,
// CurrentUserRoleKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkSession(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrSessionNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Set(CurrentUserRoleKey, claims.Role)
		c.Next()
	}
}

// RoleRequired rejects sessions whose role differs from role. Must run after
// AuthRequired.
func RoleRequired(role domain.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get(CurrentUserRoleKey)
		currentRole, ok := value.(domain.RoleType)
		if !exist || !ok || currentRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
