package validation

import (
	"errors"
	"fmt"

	"payflow/payments"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var Validate *validator.Validate

// Matching on these with errors.Is is the supported way to tell a local
// precondition failure from a gateway one.
var (
	ErrInvalidCustomerData = errors.New("invalid customer data")
	ErrInvalidPaymentData  = errors.New("invalid payment data")
)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Register custom validation for contact info: the chosen notifier
	// decides which channel it needs, so here "valid" only means at least
	// one channel is populated.
	Validate.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		info, ok := fl.Field().Interface().(payments.ContactInfo)
		return ok && !info.Empty()
	})
}

// CustomerValidator checks customer preconditions before any money moves.
type CustomerValidator struct {
	logger *zap.SugaredLogger
}

func NewCustomerValidator(logger *zap.SugaredLogger) *CustomerValidator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CustomerValidator{logger: logger}
}

// Validate fails with ErrInvalidCustomerData when the name is empty or no
// contact channel is populated. It performs no side effects beyond a log
// line.
func (v *CustomerValidator) Validate(customer payments.CustomerData) error {
	if err := Validate.Struct(customer); err != nil {
		detail := "invalid fields"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Name":
				detail = "missing name"
			case "ContactInfo":
				detail = "missing contact info"
			}
		}
		v.logger.Warnw("customer validation failed", "reason", detail)
		return fmt.Errorf("%w: %s", ErrInvalidCustomerData, detail)
	}
	return nil
}

// PaymentValidator checks payment preconditions. Amount is deliberately not
// checked; a zero or negative amount is left for the gateway to reject.
type PaymentValidator struct {
	logger *zap.SugaredLogger
}

func NewPaymentValidator(logger *zap.SugaredLogger) *PaymentValidator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &PaymentValidator{logger: logger}
}

// Validate fails with ErrInvalidPaymentData when the source token is empty.
func (v *PaymentValidator) Validate(payment payments.PaymentData) error {
	if err := Validate.Struct(payment); err != nil {
		v.logger.Warnw("payment validation failed", "reason", "missing source")
		return fmt.Errorf("%w: missing source", ErrInvalidPaymentData)
	}
	return nil
}
