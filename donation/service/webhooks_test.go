package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	donationDal "github.com/ummah-orphan-care/donations/donation/dal"
	donationDalMocks "github.com/ummah-orphan-care/donations/donation/dal/mocks"
	"github.com/ummah-orphan-care/donations/donation/domain"
	donorDalMocks "github.com/ummah-orphan-care/donations/donor/dal/mocks"
	donorDomain "github.com/ummah-orphan-care/donations/donor/domain"
	"github.com/ummah-orphan-care/donations/logger"
	mailerMocks "github.com/ummah-orphan-care/donations/mailer/mocks"
	stripeMocks "github.com/ummah-orphan-care/donations/stripe/iface/mocks"
)

const testSignKey = "whsec_test_key"

type webhookFields struct {
	payments     *stripeMocks.Payments
	donationsDAL *donationDalMocks.Donations
	donorsDAL    *donorDalMocks.Donors
	mailer       *mailerMocks.IMailer
}

func newWebhookFields() *webhookFields {
	return &webhookFields{
		payments:     &stripeMocks.Payments{},
		donationsDAL: &donationDalMocks.Donations{},
		donorsDAL:    &donorDalMocks.Donors{},
		mailer:       &mailerMocks.IMailer{},
	}
}

func newTestWebhookService(f *webhookFields) *DonationWebhookService {
	return &DonationWebhookService{
		loggerProvider: logger.FromContext,
		payments:       f.payments,
		donationsDAL:   f.donationsDAL,
		donorsDAL:      f.donorsDAL,
		mailer:         f.mailer,
	}
}

// signPayload builds a stripe webhook signature header for the payload.
func signPayload(payload []byte, signKey string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(signKey))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)

	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType, object string) []byte {
	return []byte(fmt.Sprintf(`{"id":"evt_1","object":"event","api_version":"2022-11-15","type":"%s","data":{"object":%s}}`, eventType, object))
}

func TestDonationWebhookService_HandleEvent_InvalidSignature(t *testing.T) {
	ctx := context.Background()

	payload := eventPayload("invoice.payment_succeeded", `{"id":"in_1","subscription":"sub_123"}`)

	tests := []struct {
		name      string
		signKey   string
		signature string
	}{
		{
			name:      "signature signed with wrong key",
			signKey:   testSignKey,
			signature: signPayload(payload, "whsec_other_key", time.Now()),
		},
		{
			name:      "garbage signature header",
			signKey:   testSignKey,
			signature: "t=123,v1=deadbeef",
		},
		{
			name:      "expired signature",
			signKey:   testSignKey,
			signature: signPayload(payload, testSignKey, time.Now().Add(-time.Hour)),
		},
		{
			name:      "missing sign key",
			signKey:   "",
			signature: signPayload(payload, testSignKey, time.Now()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFields()
			f.payments.On("WebhookSignKey").Return(tt.signKey)

			s := newTestWebhookService(f)

			err := s.HandleEvent(ctx, payload, tt.signature)
			assert.ErrorIs(t, err, ErrInvalidSignature)

			// Nothing should be read or written for unauthenticated events
			f.donationsDAL.AssertNotCalled(t, "GetBySubscriptionID", mock.Anything, mock.Anything)
			f.donationsDAL.AssertNotCalled(t, "UpdateLastPaymentDate", mock.Anything, mock.Anything, mock.Anything)
			f.donationsDAL.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDonationWebhookService_HandleEvent_PaymentSucceeded(t *testing.T) {
	ctx := context.Background()

	donation := &domain.Donation{
		ID:                   "donation1",
		DonorID:              "donor1",
		OrphanID:             "orphan1",
		Amount:               500,
		Currency:             domain.DefaultCurrency,
		Status:               domain.StatusActive,
		StripeSubscriptionID: "sub_123",
	}

	donor := &donorDomain.Donor{
		ID:          "donor1",
		Email:       "donor@example.com",
		DisplayName: "Donor One",
	}

	tests := []struct {
		name    string
		object  string
		wantErr bool
		on      func(f *webhookFields)
	}{
		{
			name:   "marks payment succeeded and thanks the donor",
			object: `{"id":"in_1","subscription":"sub_123"}`,
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(donation, nil)
				f.donationsDAL.On("UpdateLastPaymentDate", ctx, "donation1", mock.AnythingOfType("time.Time")).Return(nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(donor, nil)
				f.mailer.On("ThankYouTemplateID").Return("d-thank-you")
				f.mailer.On("SendNotification", ctx, mock.AnythingOfType("*mailer.SimpleNotification"), "donor@example.com", mock.Anything).
					Return(nil)
			},
		},
		{
			name:   "thank you failure does not fail the event",
			object: `{"id":"in_1","subscription":"sub_123"}`,
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(donation, nil)
				f.donationsDAL.On("UpdateLastPaymentDate", ctx, "donation1", mock.AnythingOfType("time.Time")).Return(nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(donor, nil)
				f.mailer.On("ThankYouTemplateID").Return("d-thank-you")
				f.mailer.On("SendNotification", ctx, mock.AnythingOfType("*mailer.SimpleNotification"), "donor@example.com", mock.Anything).
					Return(assert.AnError)
			},
		},
		{
			name:   "missing donor does not fail the event",
			object: `{"id":"in_1","subscription":"sub_123"}`,
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(donation, nil)
				f.donationsDAL.On("UpdateLastPaymentDate", ctx, "donation1", mock.AnythingOfType("time.Time")).Return(nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(nil, assert.AnError)
			},
		},
		{
			name:   "late payment event does not resurrect a cancelled donation",
			object: `{"id":"in_1","subscription":"sub_123"}`,
			on: func(f *webhookFields) {
				cancelled := &domain.Donation{
					ID:                   "donation1",
					DonorID:              "donor1",
					Status:               domain.StatusCancelled,
					StripeSubscriptionID: "sub_123",
				}
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(cancelled, nil)
				f.donationsDAL.On("UpdateLastPaymentDate", ctx, "donation1", mock.AnythingOfType("time.Time")).Return(nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(donor, nil)
				f.mailer.On("ThankYouTemplateID").Return("d-thank-you")
				f.mailer.On("SendNotification", ctx, mock.AnythingOfType("*mailer.SimpleNotification"), "donor@example.com", mock.Anything).
					Return(nil)
			},
		},
		{
			name:   "unknown subscription is ignored",
			object: `{"id":"in_1","subscription":"sub_unknown"}`,
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_unknown").Return(nil, donationDal.ErrNotFound)
			},
		},
		{
			name:   "invoice without subscription is ignored",
			object: `{"id":"in_1"}`,
		},
		{
			name:    "dal error is propagated",
			object:  `{"id":"in_1","subscription":"sub_123"}`,
			wantErr: true,
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFields()
			f.payments.On("WebhookSignKey").Return(testSignKey)

			if tt.on != nil {
				tt.on(f)
			}

			s := newTestWebhookService(f)

			payload := eventPayload("invoice.payment_succeeded", tt.object)
			signature := signPayload(payload, testSignKey, time.Now())

			err := s.HandleEvent(ctx, payload, signature)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			f.donationsDAL.AssertExpectations(t)
			f.mailer.AssertExpectations(t)

			// Payment events only stamp the payment date.
			f.donationsDAL.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDonationWebhookService_HandleEvent_PaymentFailed(t *testing.T) {
	ctx := context.Background()

	donation := &domain.Donation{
		ID:                   "donation1",
		DonorID:              "donor1",
		OrphanID:             "orphan1",
		Amount:               500,
		Currency:             domain.DefaultCurrency,
		StripeSubscriptionID: "sub_123",
	}

	donor := &donorDomain.Donor{
		ID:          "donor1",
		Email:       "donor@example.com",
		DisplayName: "Donor One",
	}

	tests := []struct {
		name string
		on   func(f *webhookFields)
	}{
		{
			name: "notifies the donor",
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(donation, nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(donor, nil)
				f.mailer.On("PaymentFailedTemplateID").Return("d-template")
				f.mailer.On("SendNotification", ctx, mock.AnythingOfType("*mailer.SimpleNotification"), "donor@example.com", mock.Anything).
					Return(nil)
			},
		},
		{
			name: "notification failure does not fail the event",
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(donation, nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(donor, nil)
				f.mailer.On("PaymentFailedTemplateID").Return("d-template")
				f.mailer.On("SendNotification", ctx, mock.AnythingOfType("*mailer.SimpleNotification"), "donor@example.com", mock.Anything).
					Return(assert.AnError)
			},
		},
		{
			name: "missing donor does not fail the event",
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(donation, nil)
				f.donorsDAL.On("Get", ctx, "donor1").Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFields()
			f.payments.On("WebhookSignKey").Return(testSignKey)
			tt.on(f)

			s := newTestWebhookService(f)

			payload := eventPayload("invoice.payment_failed", `{"id":"in_1","subscription":"sub_123"}`)
			signature := signPayload(payload, testSignKey, time.Now())

			err := s.HandleEvent(ctx, payload, signature)
			assert.NoError(t, err)

			f.donationsDAL.AssertExpectations(t)
			f.donorsDAL.AssertExpectations(t)
			f.mailer.AssertExpectations(t)
		})
	}
}

func TestDonationWebhookService_HandleEvent_SubscriptionDeleted(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		on   func(f *webhookFields)
	}{
		{
			name: "cancels the donation",
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(&domain.Donation{
					ID:     "donation1",
					Status: domain.StatusActive,
				}, nil)
				f.donationsDAL.On("UpdateStatus", ctx, "donation1", domain.StatusCancelled).Return(nil)
			},
		},
		{
			name: "already cancelled donation is left untouched",
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(&domain.Donation{
					ID:     "donation1",
					Status: domain.StatusCancelled,
				}, nil)
			},
		},
		{
			name: "unknown subscription is ignored",
			on: func(f *webhookFields) {
				f.donationsDAL.On("GetBySubscriptionID", ctx, "sub_123").Return(nil, donationDal.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFields()
			f.payments.On("WebhookSignKey").Return(testSignKey)
			tt.on(f)

			s := newTestWebhookService(f)

			payload := eventPayload("customer.subscription.deleted", `{"id":"sub_123","status":"canceled"}`)
			signature := signPayload(payload, testSignKey, time.Now())

			err := s.HandleEvent(ctx, payload, signature)
			assert.NoError(t, err)

			f.donationsDAL.AssertExpectations(t)
			f.donationsDAL.AssertNotCalled(t, "UpdateLastPaymentDate", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDonationWebhookService_HandleEvent_UnhandledType(t *testing.T) {
	ctx := context.Background()

	f := newWebhookFields()
	f.payments.On("WebhookSignKey").Return(testSignKey)

	s := newTestWebhookService(f)

	payload := eventPayload("customer.created", `{"id":"cus_123"}`)
	signature := signPayload(payload, testSignKey, time.Now())

	err := s.HandleEvent(ctx, payload, signature)
	assert.NoError(t, err)

	f.donationsDAL.AssertNotCalled(t, "GetBySubscriptionID", mock.Anything, mock.Anything)
}
