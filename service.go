package payflow

import (
	"context"

	"payflow/notifications"
	"payflow/payments"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerValidator checks a customer before any gateway call is made.
type CustomerValidator interface {
	Validate(customer payments.CustomerData) error
}

// PaymentValidator checks payment data before any gateway call is made.
type PaymentValidator interface {
	Validate(payment payments.PaymentData) error
}

// TransactionLogger records a completed charge.
type TransactionLogger interface {
	Log(customer payments.CustomerData, payment payments.PaymentData, charge payments.Charge) error
}

// PaymentService runs the payment pipeline: validate customer, validate
// payment, charge, notify, log. All collaborators are fixed at construction;
// the service holds no other state and can be reused across sequential
// transactions.
type PaymentService struct {
	customerValidator CustomerValidator
	paymentValidator  PaymentValidator
	processor         payments.Processor
	notifier          notifications.Notifier
	transactionLogger TransactionLogger
	logger            *zap.SugaredLogger
}

func NewPaymentService(
	customerValidator CustomerValidator,
	paymentValidator PaymentValidator,
	processor payments.Processor,
	notifier notifications.Notifier,
	transactionLogger TransactionLogger,
	logger *zap.SugaredLogger,
) *PaymentService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &PaymentService{
		customerValidator: customerValidator,
		paymentValidator:  paymentValidator,
		processor:         processor,
		notifier:          notifier,
		transactionLogger: transactionLogger,
		logger:            logger,
	}
}

// ProcessTransaction runs the five steps strictly in order. The first error
// aborts the rest of the pipeline and is returned unchanged; there is no
// retry and no compensation. If notification or logging fails the charge
// has already gone through.
//
// Calling twice with the same inputs charges twice: no idempotency key is
// sent to the gateway.
func (s *PaymentService) ProcessTransaction(ctx context.Context, customer payments.CustomerData, payment payments.PaymentData) (payments.Charge, error) {
	txID := uuid.NewString()

	if err := s.customerValidator.Validate(customer); err != nil {
		return payments.Charge{}, err
	}
	if err := s.paymentValidator.Validate(payment); err != nil {
		return payments.Charge{}, err
	}

	charge, err := s.processor.ProcessTransaction(ctx, customer, payment)
	if err != nil {
		s.logger.Errorw("payment failed", "tx", txID, "err", err)
		return payments.Charge{}, err
	}
	s.logger.Infow("payment successful", "tx", txID, "amount", payment.Amount, "status", charge.Status)

	if err := s.notifier.SendConfirmation(ctx, customer); err != nil {
		return payments.Charge{}, err
	}
	if err := s.transactionLogger.Log(customer, payment, charge); err != nil {
		return payments.Charge{}, err
	}

	return charge, nil
}
