package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fds-bd/fds-server/internal/domain"
	"github.com/fds-bd/fds-server/internal/service"
)

type PaymentsHandler struct {
	paymentSvs PaymentServicer
}

func NewPaymentsHandler(paymentSvs PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{
		paymentSvs: paymentSvs,
	}
}

// Index GET RouteGroup + PaymentsRoute. With ?status=pending only payments
// awaiting a decision are returned; any other value means the full ledger.
func (h *PaymentsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var payments []domain.PaymentDetail
	var err error
	if strings.EqualFold(c.Query("status"), "pending") {
		payments, err = h.paymentSvs.ListPending(ctx)
	} else {
		payments, err = h.paymentSvs.List(ctx)
	}
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PaymentDetailResponse, len(payments))
	for i, payment := range payments {
		response[i] = newPaymentDetailResponse(payment)
	}
	c.JSON(http.StatusOK, gin.H{"payments": response})
}

type PaymentCreateParams struct {
	MemberID      string `binding:"required"       json:"memberId"`
	UserID        string `binding:"required"       json:"userId"`
	Amount        int64  `binding:"required,gt=0"  json:"amount"`
	PaymentMethod string `binding:"required"       json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
	CashNote      string `json:"cashNote"`
}

// Create POST RouteGroup + PaymentsRoute. Submits a dues payment; it enters
// the ledger as PENDING until an accountant decides.
func (h *PaymentsHandler) Create(c *gin.Context) {
	var params PaymentCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, createErr := h.paymentSvs.Create(ctx, service.CreatePaymentArgs{
		MemberID:      params.MemberID,
		UserID:        params.UserID,
		Amount:        params.Amount,
		PaymentMethod: domain.PaymentMethodType(strings.ToUpper(params.PaymentMethod)),
		TransactionID: params.TransactionID,
		CashNote:      params.CashNote,
	})
	if createErr != nil {
		var valErr *domain.ValidationError
		switch {
		case errors.As(createErr, &valErr):
			_ = c.AbortWithError(http.StatusBadRequest, valErr).SetType(gin.ErrorTypePublic)
		case errors.Is(createErr, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("member or user not found")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": newPaymentResponse(*payment)})
}

type PaymentApproveParams struct {
	Status string `binding:"required" json:"status"`
}

// Approve POST RouteGroup + PaymentApproveRoute. Accountant only; moves the
// payment to APPROVED or REJECTED. A payment already decided answers 409.
func (h *PaymentsHandler) Approve(c *gin.Context) {
	paymentID := c.Param("id")

	var params PaymentApproveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status := domain.PaymentStatusType(strings.ToUpper(params.Status))
	payment, err := h.paymentSvs.SetStatus(ctx, paymentID, status, getUserIDFromContext(c))
	if err != nil {
		var valErr *domain.ValidationError
		switch {
		case errors.As(err, &valErr):
			_ = c.AbortWithError(http.StatusBadRequest, valErr).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrAccountantOnly):
			_ = c.AbortWithError(http.StatusForbidden, errors.New("only an accountant may decide payments")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("payment not found")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrPaymentFinalized):
			_ = c.AbortWithError(http.StatusConflict, errors.New("payment already decided")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": newPaymentResponse(*payment)})
}
