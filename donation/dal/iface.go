package dal

import (
	"context"
	"time"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

//go:generate mockery --name Donations --output ./mocks
type Donations interface {
	Create(ctx context.Context, donation *domain.Donation) (string, error)
	Get(ctx context.Context, donationID string) (*domain.Donation, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Donation, error)
	GetByDonor(ctx context.Context, donorID string) ([]*domain.Donation, error)
	GetActiveRecurring(ctx context.Context) ([]*domain.Donation, error)
	GetCreatedInRange(ctx context.Context, start, end time.Time) ([]*domain.Donation, error)
	UpdateStatus(ctx context.Context, donationID string, status domain.Status) error
	UpdateLastPaymentDate(ctx context.Context, donationID string, paymentDate time.Time) error
}
