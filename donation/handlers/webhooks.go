package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummah-orphan-care/donations/donation/service"
	"github.com/ummah-orphan-care/donations/framework/web"
)

type webhookResponse struct {
	Success  bool `json:"success"`
	Received bool `json:"received"`
}

// WebhookHandler handles events from stripe
func (h *Donations) WebhookHandler(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	signature := ctx.Request.Header.Get("Stripe-Signature")
	if signature == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	if err := h.webhookService.HandleEvent(ctx, body, signature); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, webhookResponse{Success: true, Received: true}, http.StatusOK)
}
