package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ummah-orphan-care/donations/donation/domain"
	"github.com/ummah-orphan-care/donations/mailer"
)

// SendMonthlyReports emails every admin a summary of the donations created
// during the previous calendar month.
func (s *DonationService) SendMonthlyReports(ctx context.Context) error {
	l := s.loggerProvider(ctx)

	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, -1, 0)

	donations, err := s.donationsDAL.GetCreatedInRange(ctx, start, end)
	if err != nil {
		return err
	}

	var (
		totalAmount    int64
		recurringCount int
	)

	donors := make(map[string]struct{})

	for _, donation := range donations {
		totalAmount += donation.Amount
		donors[donation.DonorID] = struct{}{}

		if donation.Type == domain.TypeRecurring {
			recurringCount++
		}
	}

	admins, err := s.donorsDAL.GetAdmins(ctx)
	if err != nil {
		return err
	}

	if len(admins) == 0 {
		l.Warning("no admins found, skipping monthly report")
		return nil
	}

	month := start.Format("January 2006")

	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Donations report for %s", month),
		TemplateID: s.mailer.MonthlyReportTemplateID(),
		Categories: []string{mailer.CategoryReports},
	}

	params := map[string]interface{}{
		"month":           month,
		"donation_count":  len(donations),
		"recurring_count": recurringCount,
		"donor_count":     len(donors),
		"total_amount":    totalAmount,
		"currency":        strings.ToUpper(domain.DefaultCurrency),
	}

	for _, admin := range admins {
		if err := s.mailer.SendNotification(ctx, sn, admin.Email, params); err != nil {
			l.Errorf("failed to send monthly report to %s: %s", admin.Email, err)
		}
	}

	l.Infof("monthly report for %s sent to %d admins", month, len(admins))

	return nil
}
