package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/stripe/domain"
)

type Payments struct {
	mock.Mock
}

func (m *Payments) CreateCustomer(ctx context.Context, email, donorID string) (string, error) {
	args := m.Called(ctx, email, donorID)
	return args.String(0), args.Error(1)
}

func (m *Payments) CreateSubscription(ctx context.Context, customerID, orphanID string, amount int64, currency string) (*domain.Subscription, error) {
	args := m.Called(ctx, customerID, orphanID, amount, currency)

	var sub *domain.Subscription
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.Subscription)
	}

	return sub, args.Error(1)
}

func (m *Payments) CancelSubscription(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

func (m *Payments) WebhookSignKey() string {
	args := m.Called()
	return args.String(0)
}
