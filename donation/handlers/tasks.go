package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummah-orphan-care/donations/framework/web"
)

// ReconcileDonationsHandler recomputes orphan donor counts, runs daily
func (h *Donations) ReconcileDonationsHandler(ctx *gin.Context) error {
	if err := h.service.ReconcileDonorCounts(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// MonthlyReportsHandler emails admins the monthly donations report
func (h *Donations) MonthlyReportsHandler(ctx *gin.Context) error {
	if err := h.service.SendMonthlyReports(ctx); err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
