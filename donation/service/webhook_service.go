package service

import (
	"context"

	donationDal "github.com/ummah-orphan-care/donations/donation/dal"
	donorDal "github.com/ummah-orphan-care/donations/donor/dal"
	"github.com/ummah-orphan-care/donations/framework/connection"
	"github.com/ummah-orphan-care/donations/logger"
	"github.com/ummah-orphan-care/donations/mailer"
	"github.com/ummah-orphan-care/donations/stripe"
	stripeIface "github.com/ummah-orphan-care/donations/stripe/iface"
)

type DonationWebhookService struct {
	loggerProvider logger.Provider
	*connection.Connection
	payments     stripeIface.Payments
	donationsDAL donationDal.Donations
	donorsDAL    donorDal.Donors
	mailer       mailer.IMailer
}

func NewDonationWebhookService(loggerProvider logger.Provider, conn *connection.Connection, stripeClient *stripe.Client) (*DonationWebhookService, error) {
	ctx := context.Background()

	mailerService, err := mailer.NewMailer(ctx)
	if err != nil {
		return nil, err
	}

	return &DonationWebhookService{
		loggerProvider,
		conn,
		stripeClient,
		donationDal.NewDonationsFirestoreWithClient(conn.Firestore),
		donorDal.NewDonorsFirestoreWithClient(conn.Firestore),
		mailerService,
	}, nil
}
