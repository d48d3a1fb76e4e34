//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

type DonationsService interface {
	Subscribe(ctx context.Context, donorID string, req *domain.SubscribeRequest) (*domain.SubscribeResult, error)
	Cancel(ctx context.Context, donorID, donationID string) error
	History(ctx context.Context, donorID string) ([]*domain.Donation, error)

	// Scheduled jobs
	ReconcileDonorCounts(ctx context.Context) error
	SendMonthlyReports(ctx context.Context) error
}

type DonationsWebhookService interface {
	HandleEvent(ctx context.Context, body []byte, signature string) error
}
