package mailer

import (
	"context"
	"encoding/json"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/ummah-orphan-care/donations/secretmanager"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <noreply@ummahorphancare.org>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`

	// Dynamic templates IDs
	DynamicTemplates DynamicTemplates `json:"dynamic_templates"`
}

type DynamicTemplates struct {
	MonthlyDonationsReport string `json:"monthly_donations_report"`
	PaymentFailed          string `json:"payment_failed"`
	ThankYou               string `json:"thank_you"`
	SimpleNotification     string `json:"simple_notification"`
}

const (
	CategoryDonations string = "donations"
	CategoryReports   string = "reports"
)

// SimpleNotification : Simple notification template data
type SimpleNotification struct {
	Subject    string
	Preheader  string
	Body       string
	CCs        []string
	TemplateID string
	Categories []string
}

//go:generate mockery --name IMailer --output ./mocks
type IMailer interface {
	SendNotification(ctx context.Context, sn *SimpleNotification, to string, params map[string]interface{}) error
	MonthlyReportTemplateID() string
	PaymentFailedTemplateID() string
	ThankYouTemplateID() string
}

type Mailer struct {
	cfg SendGridConfig
}

// NewMailer loads the sendgrid config from Secret Manager.
func NewMailer(ctx context.Context) (*Mailer, error) {
	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
	if err != nil {
		return nil, err
	}

	var cfg SendGridConfig
	if err := json.Unmarshal(secretData, &cfg); err != nil {
		return nil, err
	}

	return &Mailer{cfg: cfg}, nil
}

func (m *Mailer) SendNotification(ctx context.Context, sn *SimpleNotification, to string, params map[string]interface{}) error {
	v3 := mail.NewV3Mail()
	v3.SetTemplateID(sn.TemplateID)
	v3.SetFrom(mail.NewEmail(m.cfg.NoReplyName, m.cfg.NoReplyEmail))

	enable := false
	v3.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})
	v3.AddCategories(sn.Categories...)

	personalization := mail.NewPersonalization()
	tos := []*mail.Email{
		mail.NewEmail("", to),
	}
	personalization.AddTos(tos...)

	if len(sn.CCs) > 0 {
		ccs := make([]*mail.Email, 0)

		for _, cc := range sn.CCs {
			if cc != to {
				ccs = append(ccs, mail.NewEmail("", cc))
			}
		}

		if len(ccs) > 0 {
			personalization.AddCCs(ccs...)
		}
	}

	personalization.SetDynamicTemplateData("subject", sn.Subject)
	personalization.SetDynamicTemplateData("preheader", sn.Preheader)
	personalization.SetDynamicTemplateData("body", sn.Body)

	for key, param := range params {
		personalization.SetDynamicTemplateData(key, param)
	}

	v3.AddPersonalizations(personalization)

	request := sendgrid.GetRequest(m.cfg.APIKey, m.cfg.MailSendPath, m.cfg.BaseURL)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(v3)

	if _, err := sendgrid.MakeRequestRetryWithContext(ctx, request); err != nil {
		return err
	}

	return nil
}

func (m *Mailer) MonthlyReportTemplateID() string {
	return m.cfg.DynamicTemplates.MonthlyDonationsReport
}

func (m *Mailer) PaymentFailedTemplateID() string {
	return m.cfg.DynamicTemplates.PaymentFailed
}

func (m *Mailer) ThankYouTemplateID() string {
	return m.cfg.DynamicTemplates.ThankYou
}
