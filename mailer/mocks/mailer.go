package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ummah-orphan-care/donations/mailer"
)

type IMailer struct {
	mock.Mock
}

func (m *IMailer) SendNotification(ctx context.Context, sn *mailer.SimpleNotification, to string, params map[string]interface{}) error {
	args := m.Called(ctx, sn, to, params)
	return args.Error(0)
}

func (m *IMailer) MonthlyReportTemplateID() string {
	args := m.Called()
	return args.String(0)
}

func (m *IMailer) PaymentFailedTemplateID() string {
	args := m.Called()
	return args.String(0)
}

func (m *IMailer) ThankYouTemplateID() string {
	args := m.Called()
	return args.String(0)
}
