package notifications

import (
	"context"
	"fmt"

	"payflow/payments"

	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"
)

const defaultFromEmail = "no-reply@example.com"

// EmailNotifier composes a fixed confirmation email and hands it to a gomail
// Sender. The sender is typically an SMTP dialer owned by the caller; tests
// inject a capturing fake.
type EmailNotifier struct {
	from   string
	sender gomail.Sender
	logger *zap.SugaredLogger
}

func NewEmailNotifier(from string, sender gomail.Sender, logger *zap.SugaredLogger) *EmailNotifier {
	if from == "" {
		from = defaultFromEmail
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &EmailNotifier{from: from, sender: sender, logger: logger}
}

// SendConfirmation builds the confirmation message for the customer's email
// address. Fails with ErrMissingContactField when no email is on file.
func (n *EmailNotifier) SendConfirmation(_ context.Context, customer payments.CustomerData) error {
	email := customer.ContactInfo.Email
	if email == "" {
		return fmt.Errorf("%w: email", ErrMissingContactField)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", confirmationSubject)
	m.SetBody("text/plain", confirmationBody)

	if err := gomail.Send(n.sender, m); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	n.logger.Infow("email sent", "to", email)
	return nil
}
