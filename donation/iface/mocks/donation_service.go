package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

type DonationsService struct {
	mock.Mock
}

func (m *DonationsService) Subscribe(ctx context.Context, donorID string, req *domain.SubscribeRequest) (*domain.SubscribeResult, error) {
	args := m.Called(ctx, donorID, req)

	var result *domain.SubscribeResult
	if args.Get(0) != nil {
		result = args.Get(0).(*domain.SubscribeResult)
	}

	return result, args.Error(1)
}

func (m *DonationsService) Cancel(ctx context.Context, donorID, donationID string) error {
	args := m.Called(ctx, donorID, donationID)
	return args.Error(0)
}

func (m *DonationsService) History(ctx context.Context, donorID string) ([]*domain.Donation, error) {
	args := m.Called(ctx, donorID)

	var donations []*domain.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*domain.Donation)
	}

	return donations, args.Error(1)
}

func (m *DonationsService) ReconcileDonorCounts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *DonationsService) SendMonthlyReports(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type DonationsWebhookService struct {
	mock.Mock
}

func (m *DonationsWebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	args := m.Called(ctx, body, signature)
	return args.Error(0)
}
