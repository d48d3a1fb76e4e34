package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

func TestDonationService_ReconcileDonorCounts(t *testing.T) {
	ctx := context.Background()

	activeDonations := []*domain.Donation{
		{ID: "donation1", OrphanID: "orphan1", Type: domain.TypeRecurring, Status: domain.StatusActive},
		{ID: "donation2", OrphanID: "orphan1", Type: domain.TypeRecurring, Status: domain.StatusActive},
		{ID: "donation3", OrphanID: "orphan2", Type: domain.TypeRecurring, Status: domain.StatusActive},
	}

	t.Run("counts active donations per orphan", func(t *testing.T) {
		f := newServiceFields()
		f.donationsDAL.On("GetActiveRecurring", ctx).Return(activeDonations, nil)
		f.orphansDAL.On("UpdateCurrentDonors", ctx, "orphan1", int64(2)).Return(nil)
		f.orphansDAL.On("UpdateCurrentDonors", ctx, "orphan2", int64(1)).Return(nil)

		s := newTestService(f)

		err := s.ReconcileDonorCounts(ctx)
		assert.NoError(t, err)

		f.orphansDAL.AssertExpectations(t)
	})

	t.Run("orphans without active donations are not touched", func(t *testing.T) {
		f := newServiceFields()
		f.donationsDAL.On("GetActiveRecurring", ctx).Return([]*domain.Donation{}, nil)

		s := newTestService(f)

		err := s.ReconcileDonorCounts(ctx)
		assert.NoError(t, err)

		f.orphansDAL.AssertNotCalled(t, "UpdateCurrentDonors", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update failures are reported after the sweep", func(t *testing.T) {
		f := newServiceFields()
		f.donationsDAL.On("GetActiveRecurring", ctx).Return(activeDonations, nil)
		f.orphansDAL.On("UpdateCurrentDonors", ctx, "orphan1", int64(2)).Return(assert.AnError)
		f.orphansDAL.On("UpdateCurrentDonors", ctx, "orphan2", int64(1)).Return(nil)

		s := newTestService(f)

		err := s.ReconcileDonorCounts(ctx)
		assert.Error(t, err)

		// Other orphans are still updated when one fails
		f.orphansDAL.AssertExpectations(t)
	})

	t.Run("query error is propagated", func(t *testing.T) {
		f := newServiceFields()
		f.donationsDAL.On("GetActiveRecurring", ctx).Return(nil, assert.AnError)

		s := newTestService(f)

		err := s.ReconcileDonorCounts(ctx)
		assert.Error(t, err)
	})
}
