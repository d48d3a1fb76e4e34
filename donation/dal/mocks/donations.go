package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

type Donations struct {
	mock.Mock
}

func (m *Donations) Create(ctx context.Context, donation *domain.Donation) (string, error) {
	args := m.Called(ctx, donation)
	return args.String(0), args.Error(1)
}

func (m *Donations) Get(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)

	var donation *domain.Donation
	if args.Get(0) != nil {
		donation = args.Get(0).(*domain.Donation)
	}

	return donation, args.Error(1)
}

func (m *Donations) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Donation, error) {
	args := m.Called(ctx, subscriptionID)

	var donation *domain.Donation
	if args.Get(0) != nil {
		donation = args.Get(0).(*domain.Donation)
	}

	return donation, args.Error(1)
}

func (m *Donations) GetByDonor(ctx context.Context, donorID string) ([]*domain.Donation, error) {
	args := m.Called(ctx, donorID)

	var donations []*domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*domain.Donation)
	}

	return donations, args.Error(1)
}

func (m *Donations) GetActiveRecurring(ctx context.Context) ([]*domain.Donation, error) {
	args := m.Called(ctx)

	var donations []*domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*domain.Donation)
	}

	return donations, args.Error(1)
}

func (m *Donations) GetCreatedInRange(ctx context.Context, start, end time.Time) ([]*domain.Donation, error) {
	args := m.Called(ctx, start, end)

	var donations []*domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*domain.Donation)
	}

	return donations, args.Error(1)
}

func (m *Donations) UpdateStatus(ctx context.Context, donationID string, status domain.Status) error {
	args := m.Called(ctx, donationID, status)
	return args.Error(0)
}

func (m *Donations) UpdateLastPaymentDate(ctx context.Context, donationID string, paymentDate time.Time) error {
	args := m.Called(ctx, donationID, paymentDate)
	return args.Error(0)
}
