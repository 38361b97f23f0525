package notifications

import (
	"context"
	"fmt"

	"payflow/payments"

	"go.uber.org/zap"
)

// SMSGateway is the outbound SMS capability. The real implementation lives
// with whichever SMS provider the caller contracts; this module only builds
// the message.
type SMSGateway interface {
	SendSMS(ctx context.Context, to, message string) error
}

// SMSNotifier composes the confirmation text and hands it to an SMSGateway.
type SMSNotifier struct {
	gateway SMSGateway
	logger  *zap.SugaredLogger
}

func NewSMSNotifier(gateway SMSGateway, logger *zap.SugaredLogger) *SMSNotifier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SMSNotifier{gateway: gateway, logger: logger}
}

// SendConfirmation texts the customer's phone number. Fails with
// ErrMissingContactField when no phone is on file.
func (n *SMSNotifier) SendConfirmation(ctx context.Context, customer payments.CustomerData) error {
	phone := customer.ContactInfo.Phone
	if phone == "" {
		return fmt.Errorf("%w: phone", ErrMissingContactField)
	}

	if err := n.gateway.SendSMS(ctx, phone, confirmationBody); err != nil {
		return fmt.Errorf("send confirmation sms: %w", err)
	}

	n.logger.Infow("sms sent", "to", phone)
	return nil
}
