package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/service"
)

type MembersHandler struct {
	memberSvs MemberServicer
}

func NewMembersHandler(memberSvs MemberServicer) *MembersHandler {
	return &MembersHandler{
		memberSvs: memberSvs,
	}
}

// Index GET RouteGroup + MembersRoute.
func (h *MembersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	members, err := h.memberSvs.List(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]MemberResponse, len(members))
	for i, member := range members {
		response[i] = newMemberResponse(member)
	}
	c.JSON(http.StatusOK, gin.H{"members": response})
}

// Mine GET RouteGroup + MemberMeRoute. Resolves the member record behind the
// session's user; the member dashboard loads itself from this.
func (h *MembersHandler) Mine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	member, err := h.memberSvs.GetByUserID(ctx, getUserIDFromContext(c))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("member not found")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": newMemberResponse(*member)})
}

type MemberCreateParams struct {
	Name       string `binding:"required"            json:"name"`
	Email      string `binding:"required,email"      json:"email"`
	Password   string `binding:"required,min=6"      json:"password"`
	Phone      string `binding:"required"            json:"phone"`
	Address    string `json:"address"`
	MonthlyFee int64  `binding:"omitempty,min=0"     json:"monthlyFee"`
}

// Create POST RouteGroup + MembersRoute. Registers a new member together with
// its MEMBER user account. Accountant only.
func (h *MembersHandler) Create(c *gin.Context) {
	var params MemberCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	member, createErr := h.memberSvs.Register(ctx, service.RegisterMemberArgs{
		Name:       params.Name,
		Email:      params.Email,
		Password:   params.Password,
		Phone:      params.Phone,
		Address:    params.Address,
		MonthlyFee: params.MonthlyFee,
	})
	if createErr != nil {
		var valErr *domain.ValidationError
		switch {
		case errors.Is(createErr, domain.ErrDuplicateKey):
			_ = c.AbortWithError(http.StatusConflict, errors.New("member with this email already exists")).
				SetType(gin.ErrorTypePublic)
		case errors.As(createErr, &valErr):
			_ = c.AbortWithError(http.StatusBadRequest, valErr).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": newMemberResponse(*member)})
}
