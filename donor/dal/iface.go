package dal

import (
	"context"

	"github.com/ummah-orphan-care/donations/donor/domain"
)

//go:generate mockery --name Donors --output ./mocks
type Donors interface {
	Get(ctx context.Context, donorID string) (*domain.Donor, error)
	UpdateStripeCustomerID(ctx context.Context, donorID, stripeCustomerID string) error
	GetAdmins(ctx context.Context) ([]*domain.Donor, error)
}
