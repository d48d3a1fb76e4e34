package dal

import (
	"context"

	"github.com/ummah-orphan-care/donations/orphan/domain"
)

//go:generate mockery --name Orphans --output ./mocks
type Orphans interface {
	Get(ctx context.Context, orphanID string) (*domain.Orphan, error)
	UpdateCurrentDonors(ctx context.Context, orphanID string, currentDonors int64) error
}
