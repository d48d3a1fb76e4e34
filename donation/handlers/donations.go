package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	donationDal "github.com/ummah-orphan-care/donations/donation/dal"
	"github.com/ummah-orphan-care/donations/donation/domain"
	"github.com/ummah-orphan-care/donations/donation/iface"
	"github.com/ummah-orphan-care/donations/donation/service"
	donorDal "github.com/ummah-orphan-care/donations/donor/dal"
	"github.com/ummah-orphan-care/donations/framework/connection"
	"github.com/ummah-orphan-care/donations/framework/web"
	"github.com/ummah-orphan-care/donations/logger"
	orphanDal "github.com/ummah-orphan-care/donations/orphan/dal"
	"github.com/ummah-orphan-care/donations/stripe"
)

type Donations struct {
	loggerProvider logger.Provider
	service        iface.DonationsService
	webhookService iface.DonationsWebhookService
}

// NewDonations creates new donation package handlers
func NewDonations(loggerProvider logger.Provider, conn *connection.Connection) *Donations {
	ctx := context.Background()

	stripeClient, err := stripe.NewClient(ctx)
	if err != nil {
		panic(err)
	}

	donationService, err := service.NewDonationService(loggerProvider, conn, stripeClient)
	if err != nil {
		panic(err)
	}

	webhookService, err := service.NewDonationWebhookService(loggerProvider, conn, stripeClient)
	if err != nil {
		panic(err)
	}

	return &Donations{
		loggerProvider,
		donationService,
		webhookService,
	}
}

// SubscribeHandler starts a monthly recurring donation for an orphan
func (h *Donations) SubscribeHandler(ctx *gin.Context) error {
	donorID := ctx.GetString("uid")
	if donorID == "" {
		return web.NewRequestError(web.ErrUnauthorized, http.StatusUnauthorized)
	}

	var req domain.SubscribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	result, err := h.service.Subscribe(ctx, donorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, donorDal.ErrNotFound),
			errors.Is(err, orphanDal.ErrNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, result, http.StatusOK)
}

// CancelHandler cancels a donation owned by the caller
func (h *Donations) CancelHandler(ctx *gin.Context) error {
	donorID := ctx.GetString("uid")
	if donorID == "" {
		return web.NewRequestError(web.ErrUnauthorized, http.StatusUnauthorized)
	}

	var req domain.CancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.Cancel(ctx, donorID, req.DonationID); err != nil {
		switch {
		case errors.Is(err, donationDal.ErrNotFound):
			return web.NewRequestError(err, http.StatusNotFound)
		case errors.Is(err, service.ErrNotDonationOwner):
			return web.NewRequestError(err, http.StatusForbidden)
		default:
			return web.NewRequestError(err, http.StatusInternalServerError)
		}
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

// HistoryHandler returns the donor's donation history
func (h *Donations) HistoryHandler(ctx *gin.Context) error {
	donorID := ctx.GetString("uid")
	if donorID == "" {
		return web.NewRequestError(web.ErrUnauthorized, http.StatusUnauthorized)
	}

	donations, err := h.service.History(ctx, donorID)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, donations, http.StatusOK)
}
