package stripe

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v74"

	"github.com/ummah-orphan-care/donations/stripe/domain"
)

const (
	monthlyInterval = "month"

	// Collect the first payment on the client with the subscription's
	// payment intent instead of failing the subscription outright.
	paymentBehaviorDefaultIncomplete = "default_incomplete"
)

// CreateCustomer creates a stripe customer for a donor and returns its ID.
func (c *Client) CreateCustomer(ctx context.Context, email, donorID string) (string, error) {
	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}
	params.AddMetadata("donorId", donorID)

	customer, err := c.Customers.New(params)
	if err != nil {
		return "", err
	}

	return customer.ID, nil
}

// CreateSubscription creates a monthly subscription billed in the smallest
// currency unit. Amount is in whole currency units.
func (c *Client) CreateSubscription(ctx context.Context, customerID, orphanID string, amount int64, currency string) (*domain.Subscription, error) {
	productParams := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(fmt.Sprintf("Monthly sponsorship for orphan %s", orphanID)),
	}

	product, err := c.Products.New(productParams)
	if err != nil {
		return nil, err
	}

	params := &stripe.SubscriptionParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{
				PriceData: &stripe.SubscriptionItemPriceDataParams{
					Currency: stripe.String(currency),
					Product:  stripe.String(product.ID),
					Recurring: &stripe.SubscriptionItemPriceDataRecurringParams{
						Interval: stripe.String(monthlyInterval),
					},
					UnitAmount: stripe.Int64(amount * 100),
				},
			},
		},
		PaymentBehavior: stripe.String(paymentBehaviorDefaultIncomplete),
	}
	params.AddMetadata("orphanId", orphanID)
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := c.Subscriptions.New(params)
	if err != nil {
		return nil, err
	}

	result := &domain.Subscription{ID: sub.ID}

	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}

	return result, nil
}

// CancelSubscription cancels a subscription immediately.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{
		Params: stripe.Params{Context: ctx},
	}

	if _, err := c.Subscriptions.Cancel(subscriptionID, params); err != nil {
		return err
	}

	return nil
}
