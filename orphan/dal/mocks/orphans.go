package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/orphan/domain"
)

type Orphans struct {
	mock.Mock
}

func (m *Orphans) Get(ctx context.Context, orphanID string) (*domain.Orphan, error) {
	args := m.Called(ctx, orphanID)

	var orphan *domain.Orphan
	if args.Get(0) != nil {
		orphan = args.Get(0).(*domain.Orphan)
	}

	return orphan, args.Error(1)
}

func (m *Orphans) UpdateCurrentDonors(ctx context.Context, orphanID string, currentDonors int64) error {
	args := m.Called(ctx, orphanID, currentDonors)
	return args.Error(0)
}
