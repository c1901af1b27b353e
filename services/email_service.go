package services

import (
	"fmt"
	"sync"

	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService sends transactional mail through resend.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOnboardingEmail mails a retailer their payment onboarding link.
func (es *EmailService) SendOnboardingEmail(retailer *tables.Retailer, onboardingURL string) error {
	subject := fmt.Sprintf("Finish setting up payments for %s", retailer.Name)
	body := fmt.Sprintf(`
		<h2>Welcome to OllaCart, %s!</h2>
		<p>Your seller account has been created. To start receiving payouts,
		complete your payment onboarding:</p>
		<p><a href="%s">Complete payment setup</a></p>
		<p>Until onboarding is complete, buyers cannot check out with your store.</p>
	`, retailer.Name, onboardingURL)

	return es.SendEmail([]string{retailer.Email}, subject, body)
}
