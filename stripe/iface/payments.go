package iface

import (
	"context"

	"github.com/ummah-orphan-care/donations/stripe/domain"
)

//go:generate mockery --name Payments --output ./mocks
type Payments interface {
	CreateCustomer(ctx context.Context, email, donorID string) (string, error)
	CreateSubscription(ctx context.Context, customerID, orphanID string, amount int64, currency string) (*domain.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	WebhookSignKey() string
}
