package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	donationHandlers "github.com/ummah-orphan-care/donations/donation/handlers"
	"github.com/ummah-orphan-care/donations/framework/connection"
	"github.com/ummah-orphan-care/donations/framework/mid"
	"github.com/ummah-orphan-care/donations/framework/web"
	"github.com/ummah-orphan-care/donations/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	donations := donationHandlers.NewDonations(loggerProvider, a.conn)

	app.Get("/health", healthCheckHandler)

	donationsGroup := web.NewGroup(app, "/donations", mid.AuthRequired())
	{
		donationsGroup.Post("/subscribe", donations.SubscribeHandler)
		donationsGroup.Post("/cancel", donations.CancelHandler)
		donationsGroup.Get("/history", donations.HistoryHandler)
	}

	webhooksGroup := web.NewGroup(app, "/webhooks")
	{
		webhooksGroup.Post("/stripe", donations.WebhookHandler)
	}

	tasksGroup := web.NewGroup(app, "/tasks",
		mid.AuthServiceAccount(mid.GetAllowedCloudJobsEmails()),
	)
	{
		donationsTasksGroup := tasksGroup.NewSubgroup("/donations")
		{
			donationsTasksGroup.Post("/reconcile", donations.ReconcileDonationsHandler)
		}

		reportsTasksGroup := tasksGroup.NewSubgroup("/reports")
		{
			reportsTasksGroup.Post("/monthly", donations.MonthlyReportsHandler)
		}
	}

	return app
}

func healthCheckHandler(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}
