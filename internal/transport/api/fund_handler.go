package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FundHandler struct {
	fundSvs FundServicer
}

func NewFundHandler(fundSvs FundServicer) *FundHandler {
	return &FundHandler{
		fundSvs: fundSvs,
	}
}

// Show GET RouteGroup + FundRoute.
func (h *FundHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	fund, err := h.fundSvs.Snapshot(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fund": FundResponse{
		ID:               fund.ID,
		Name:             fund.Name,
		TotalAmount:      fund.TotalAmount,
		TotalMembers:     fund.TotalMembers,
		MonthlyCollected: fund.MonthlyCollected,
		LastUpdated:      fund.LastUpdated,
	}})
}
