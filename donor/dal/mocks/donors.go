package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/donor/domain"
)

type Donors struct {
	mock.Mock
}

func (m *Donors) Get(ctx context.Context, donorID string) (*domain.Donor, error) {
	args := m.Called(ctx, donorID)

	var donor *domain.Donor
	if args.Get(0) != nil {
		donor = args.Get(0).(*domain.Donor)
	}

	return donor, args.Error(1)
}

func (m *Donors) UpdateStripeCustomerID(ctx context.Context, donorID, stripeCustomerID string) error {
	args := m.Called(ctx, donorID, stripeCustomerID)
	return args.Error(0)
}

func (m *Donors) GetAdmins(ctx context.Context) ([]*domain.Donor, error) {
	args := m.Called(ctx)

	var admins []*domain.Donor
	if args.Get(0) != nil {
		admins = args.Get(0).([]*domain.Donor)
	}

	return admins, args.Error(1)
}
