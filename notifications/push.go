package notifications

import (
	"context"
	"fmt"

	"payflow/payments"

	"github.com/9ssi7/exponent"
	"go.uber.org/zap"
)

// PushNotifier composes an Expo push message for the customer's device and
// hands it to a PushSender.
type PushNotifier struct {
	sender PushSender
	logger *zap.SugaredLogger
}

func NewPushNotifier(sender PushSender, logger *zap.SugaredLogger) *PushNotifier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &PushNotifier{sender: sender, logger: logger}
}

// SendConfirmation pushes the confirmation to the customer's registered
// device token. Fails with ErrMissingContactField when no token is on file.
func (n *PushNotifier) SendConfirmation(ctx context.Context, customer payments.CustomerData) error {
	if customer.ContactInfo.PushToken == "" {
		return fmt.Errorf("%w: push token", ErrMissingContactField)
	}

	token := exponent.Token(customer.ContactInfo.PushToken)
	msg := &exponent.Message{
		To:    []*exponent.Token{&token},
		Title: confirmationSubject,
		Body:  confirmationBody,
		Data: map[string]string{
			"type": "payment",
		},
	}

	if _, err := n.sender.PublishSingle(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation push: %w", err)
	}

	n.logger.Infow("push sent", "to", customer.ContactInfo.PushToken)
	return nil
}
