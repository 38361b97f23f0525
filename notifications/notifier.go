package notifications

import (
	"context"
	"errors"

	"payflow/payments"
)

// ErrMissingContactField is returned when the customer's contact info lacks
// the channel a notifier needs. Customer validation only guarantees that
// some channel exists, so a caller can pair an email-less customer with the
// email notifier and only find out here.
var ErrMissingContactField = errors.New("missing contact field")

// Notifier informs a customer that their payment went through. Every
// implementation composes the message and hands it to an external transport;
// delivery itself happens outside this module.
type Notifier interface {
	SendConfirmation(ctx context.Context, customer payments.CustomerData) error
}

const (
	confirmationSubject = "Payment Confirmation"
	confirmationBody    = "Thank you for your payment."
)
