package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/service"
	"github.com/fds-bd/fds-server/internal/transport/api/middlewares"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type LoginParams struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password"`
	Role     string `binding:"required"       json:"role"`
}

// Login POST RouteGroup + LoginRoute. Authenticates by email, password and
// role; on success sets the HTTP-only session cookie and returns the user.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	role, ok := domain.ParseRole(params.Role)
	if !ok {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("role must be ACCOUNTANT or MEMBER")).
			SetType(gin.ErrorTypePublic)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	setSessionCookie(c, token, int(service.SessionTokenExpire.Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(*user)})
}

// Logout POST RouteGroup + LogoutRoute. Clears the session cookie; there is no
// server-side session to tear down.
func (h *AuthHandler) Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me GET RouteGroup + MeRoute. Returns a fresh copy of the session's user, not
// the data baked into the token.
func (h *AuthHandler) Me(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.GetByID(ctx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("user not found")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(*user)})
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middlewares.SessionCookieName, token, maxAge, "/", "", false, true)
}
