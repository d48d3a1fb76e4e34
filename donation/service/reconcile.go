package service

import (
	"context"
	"fmt"

	"github.com/ummah-orphan-care/donations/donation/domain"
)

// ReconcileDonorCounts recomputes orphan donor counts from the active
// recurring donations. Counts drift when webhook events are missed, the
// daily sweep overwrites them with the derived value.
func (s *DonationService) ReconcileDonorCounts(ctx context.Context) error {
	l := s.loggerProvider(ctx)

	donations, err := s.donationsDAL.GetActiveRecurring(ctx)
	if err != nil {
		return err
	}

	counts := make(map[string]int64)

	for _, donation := range donations {
		if donation.Type != domain.TypeRecurring || donation.Status != domain.StatusActive {
			continue
		}

		counts[donation.OrphanID]++
	}

	var failed int

	for orphanID, count := range counts {
		if err := s.orphansDAL.UpdateCurrentDonors(ctx, orphanID, count); err != nil {
			l.Errorf("failed to update donor count for orphan %s: %s", orphanID, err)

			failed++
		}
	}

	l.Infof("reconciled donor counts for %d orphans from %d active donations", len(counts), len(donations))

	if failed > 0 {
		return fmt.Errorf("failed to update donor counts for %d orphans", failed)
	}

	return nil
}
