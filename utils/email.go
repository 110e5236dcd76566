package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. With no API key
// configured it is a no-op, so local setups work without an account.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService(apiKey, sender string) *EmailService {
	es := &EmailService{sender: sender}
	if apiKey != "" {
		es.client = sendgrid.NewSendClient(apiKey)
	}
	return es
}

// SendWelcomeEmail greets a newly registered user. Best effort: failures
// are logged and never affect the registration response.
func (es *EmailService) SendWelcomeEmail(toEmail, name string) {
	if es.client == nil {
		return
	}

	from := mail.NewEmail("Shopcart", es.sender)
	to := mail.NewEmail(name, toEmail)
	subject := "Welcome to Shopcart"
	body := fmt.Sprintf("Hi %s, your account has been created. Happy shopping!", name)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	if _, err := es.client.Send(message); err != nil {
		log.Printf("Error sending welcome email to %s: %v", toEmail, err)
	}
}
