package service

import (
	"context"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

// Subscribe starts a monthly recurring donation for an orphan. The stripe
// customer is created lazily on the donor's first subscription.
func (s *DonationService) Subscribe(ctx context.Context, donorID string, req *domain.SubscribeRequest) (*domain.SubscribeResult, error) {
	l := s.loggerProvider(ctx)

	donor, err := s.donorsDAL.Get(ctx, donorID)
	if err != nil {
		return nil, err
	}

	orphan, err := s.orphansDAL.Get(ctx, req.OrphanID)
	if err != nil {
		return nil, err
	}

	customerID := donor.StripeCustomerID
	if customerID == "" {
		customerID, err = s.payments.CreateCustomer(ctx, donor.Email, donor.ID)
		if err != nil {
			return nil, err
		}

		if err := s.donorsDAL.UpdateStripeCustomerID(ctx, donor.ID, customerID); err != nil {
			return nil, err
		}
	}

	subscription, err := s.payments.CreateSubscription(ctx, customerID, req.OrphanID, req.Amount, domain.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	donation := &domain.Donation{
		DonorID:              donor.ID,
		OrphanID:             req.OrphanID,
		Amount:               req.Amount,
		Currency:             domain.DefaultCurrency,
		Type:                 domain.TypeRecurring,
		Status:               domain.StatusActive,
		StripeSubscriptionID: subscription.ID,
	}

	donationID, err := s.donationsDAL.Create(ctx, donation)
	if err != nil {
		return nil, err
	}

	l.Infof("donor %s subscribed to orphan %s with donation %s", donor.ID, orphan.ID, donationID)

	return &domain.SubscribeResult{
		DonationID:     donationID,
		SubscriptionID: subscription.ID,
		ClientSecret:   subscription.ClientSecret,
	}, nil
}

// Cancel cancels a donation owned by the donor. The stripe subscription is
// cancelled first when the donation is backed by one.
func (s *DonationService) Cancel(ctx context.Context, donorID, donationID string) error {
	l := s.loggerProvider(ctx)

	donation, err := s.donationsDAL.Get(ctx, donationID)
	if err != nil {
		return err
	}

	if donation.DonorID != donorID {
		return ErrNotDonationOwner
	}

	if donation.StripeSubscriptionID != "" {
		if err := s.payments.CancelSubscription(ctx, donation.StripeSubscriptionID); err != nil {
			return err
		}
	}

	if err := s.donationsDAL.UpdateStatus(ctx, donationID, domain.StatusCancelled); err != nil {
		return err
	}

	l.Infof("donor %s cancelled donation %s", donorID, donationID)

	return nil
}

// History returns the donor's donations, most recent first.
func (s *DonationService) History(ctx context.Context, donorID string) ([]*domain.Donation, error) {
	return s.donationsDAL.GetByDonor(ctx, donorID)
}
