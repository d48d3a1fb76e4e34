package service

import (
	"context"

	donationDal "github.com/ummah-orphan-care/donations/donation/dal"
	donorDal "github.com/ummah-orphan-care/donations/donor/dal"
	"github.com/ummah-orphan-care/donations/framework/connection"
	"github.com/ummah-orphan-care/donations/logger"
	"github.com/ummah-orphan-care/donations/mailer"
	orphanDal "github.com/ummah-orphan-care/donations/orphan/dal"
	"github.com/ummah-orphan-care/donations/stripe"
	stripeIface "github.com/ummah-orphan-care/donations/stripe/iface"
)

type DonationService struct {
	loggerProvider logger.Provider
	*connection.Connection
	payments     stripeIface.Payments
	donationsDAL donationDal.Donations
	donorsDAL    donorDal.Donors
	orphansDAL   orphanDal.Orphans
	mailer       mailer.IMailer
}

func NewDonationService(loggerProvider logger.Provider, conn *connection.Connection, stripeClient *stripe.Client) (*DonationService, error) {
	ctx := context.Background()

	mailerService, err := mailer.NewMailer(ctx)
	if err != nil {
		return nil, err
	}

	return &DonationService{
		loggerProvider,
		conn,
		stripeClient,
		donationDal.NewDonationsFirestoreWithClient(conn.Firestore),
		donorDal.NewDonorsFirestoreWithClient(conn.Firestore),
		orphanDal.NewOrphansFirestoreWithClient(conn.Firestore),
		mailerService,
	}, nil
}
