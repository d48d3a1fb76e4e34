package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	donationDal "github.com/ummah-orphan-care/donations/donation/dal"
	"github.com/ummah-orphan-care/donations/donation/domain"
	"github.com/ummah-orphan-care/donations/mailer"
)

const (
	eventInvoicePaymentSucceeded = "invoice.payment_succeeded"
	eventInvoicePaymentFailed    = "invoice.payment_failed"
	eventSubscriptionDeleted     = "customer.subscription.deleted"
)

func (s *DonationWebhookService) constructWebhookEvent(body []byte, signature string) (*stripe.Event, error) {
	signKey := s.payments.WebhookSignKey()
	if signKey == "" {
		return nil, ErrInvalidSignature
	}

	// Stripe may deliver events with an older api version than the SDK uses.
	event, err := webhook.ConstructEventWithOptions(body, signature, signKey, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	}

	return &event, nil
}

// HandleEvent verifies the event signature and reconciles donations with
// the stripe billing state.
func (s *DonationWebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	l := s.loggerProvider(ctx)

	event, err := s.constructWebhookEvent(body, signature)
	if err != nil {
		return err
	}

	l.SetLabels(map[string]string{
		"eventType": event.Type,
	})

	l.Infof("event type: %s", event.Type)

	switch event.Type {
	case eventInvoicePaymentSucceeded:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		return s.handleInvoicePaymentSucceeded(ctx, &invoice)
	case eventInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return err
		}

		return s.handleInvoicePaymentFailed(ctx, &invoice)
	case eventSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return err
		}

		return s.handleSubscriptionDeleted(ctx, &subscription)
	default:
		l.Warningf("unhandled stripe webhook event type: %s", event.Type)
		return nil
	}
}

func (s *DonationWebhookService) handleInvoicePaymentSucceeded(ctx context.Context, invoice *stripe.Invoice) error {
	l := s.loggerProvider(ctx)

	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		l.Infof("invoice %s is not tied to a subscription, skipping", invoice.ID)
		return nil
	}

	donation, err := s.donationsDAL.GetBySubscriptionID(ctx, invoice.Subscription.ID)
	if err != nil {
		if errors.Is(err, donationDal.ErrNotFound) {
			l.Warningf("no donation found for subscription %s", invoice.Subscription.ID)
			return nil
		}

		return err
	}

	if err := s.donationsDAL.UpdateLastPaymentDate(ctx, donation.ID, time.Now().UTC()); err != nil {
		return err
	}

	l.Infof("payment succeeded for donation %s", donation.ID)

	donor, err := s.donorsDAL.Get(ctx, donation.DonorID)
	if err != nil {
		l.Errorf("failed to get donor %s: %s", donation.DonorID, err)
		return nil
	}

	sn := &mailer.SimpleNotification{
		Subject:    "Thank you for your donation",
		TemplateID: s.mailer.ThankYouTemplateID(),
		Categories: []string{mailer.CategoryDonations},
	}

	params := map[string]interface{}{
		"donor_name": donor.DisplayName,
		"orphan_id":  donation.OrphanID,
		"amount":     donation.Amount,
		"currency":   donation.Currency,
	}

	// The payment is already recorded, a failed email should not make
	// stripe redeliver the event.
	if err := s.mailer.SendNotification(ctx, sn, donor.Email, params); err != nil {
		l.Errorf("failed to send thank you notification to %s: %s", donor.Email, err)
	}

	return nil
}

func (s *DonationWebhookService) handleInvoicePaymentFailed(ctx context.Context, invoice *stripe.Invoice) error {
	l := s.loggerProvider(ctx)

	if invoice.Subscription == nil || invoice.Subscription.ID == "" {
		l.Infof("invoice %s is not tied to a subscription, skipping", invoice.ID)
		return nil
	}

	donation, err := s.donationsDAL.GetBySubscriptionID(ctx, invoice.Subscription.ID)
	if err != nil {
		if errors.Is(err, donationDal.ErrNotFound) {
			l.Warningf("no donation found for subscription %s", invoice.Subscription.ID)
			return nil
		}

		return err
	}

	l.Warningf("payment failed for donation %s", donation.ID)

	donor, err := s.donorsDAL.Get(ctx, donation.DonorID)
	if err != nil {
		l.Errorf("failed to get donor %s: %s", donation.DonorID, err)
		return nil
	}

	sn := &mailer.SimpleNotification{
		Subject:    "Your donation payment failed",
		TemplateID: s.mailer.PaymentFailedTemplateID(),
		Categories: []string{mailer.CategoryDonations},
	}

	params := map[string]interface{}{
		"donor_name": donor.DisplayName,
		"orphan_id":  donation.OrphanID,
		"amount":     donation.Amount,
		"currency":   donation.Currency,
	}

	// A failed notification should not make stripe retry the event.
	if err := s.mailer.SendNotification(ctx, sn, donor.Email, params); err != nil {
		l.Errorf("failed to send payment failed notification to %s: %s", donor.Email, err)
	}

	return nil
}

func (s *DonationWebhookService) handleSubscriptionDeleted(ctx context.Context, subscription *stripe.Subscription) error {
	l := s.loggerProvider(ctx)

	donation, err := s.donationsDAL.GetBySubscriptionID(ctx, subscription.ID)
	if err != nil {
		if errors.Is(err, donationDal.ErrNotFound) {
			l.Warningf("no donation found for subscription %s", subscription.ID)
			return nil
		}

		return err
	}

	// Already cancelled through the API, nothing to do
	if donation.Status == domain.StatusCancelled {
		return nil
	}

	if err := s.donationsDAL.UpdateStatus(ctx, donation.ID, domain.StatusCancelled); err != nil {
		return err
	}

	l.Infof("donation %s cancelled for deleted subscription %s", donation.ID, subscription.ID)

	return nil
}
