package payflow

import (
	"context"
	"errors"
	"io"

	"payflow/payments"
)

// Common test errors
var (
	ErrMockValidation = errors.New("mock validation error")
	ErrMockGateway    = errors.New("mock gateway error")
	ErrMockNotify     = errors.New("mock notify error")
	ErrMockLog        = errors.New("mock log error")
)

// callRecorder keeps the order collaborators were invoked in, shared by all
// mocks of one test case.
type callRecorder struct {
	Calls []string
}

func (r *callRecorder) record(name string) {
	r.Calls = append(r.Calls, name)
}

// MockCustomerValidator implements CustomerValidator for testing.
type MockCustomerValidator struct {
	rec          *callRecorder
	CallCount    int
	LastCustomer payments.CustomerData
	Err          error
}

func (m *MockCustomerValidator) Validate(customer payments.CustomerData) error {
	m.CallCount++
	m.LastCustomer = customer
	m.rec.record("customer_validate")
	return m.Err
}

// MockPaymentValidator implements PaymentValidator for testing.
type MockPaymentValidator struct {
	rec         *callRecorder
	CallCount   int
	LastPayment payments.PaymentData
	Err         error
}

func (m *MockPaymentValidator) Validate(payment payments.PaymentData) error {
	m.CallCount++
	m.LastPayment = payment
	m.rec.record("payment_validate")
	return m.Err
}

// MockProcessor implements payments.Processor for testing.
type MockProcessor struct {
	rec          *callRecorder
	CallCount    int
	LastCustomer payments.CustomerData
	LastPayment  payments.PaymentData
	Charge       payments.Charge
	Err          error
}

func (m *MockProcessor) ProcessTransaction(_ context.Context, customer payments.CustomerData, payment payments.PaymentData) (payments.Charge, error) {
	m.CallCount++
	m.LastCustomer = customer
	m.LastPayment = payment
	m.rec.record("charge")
	if m.Err != nil {
		return payments.Charge{}, m.Err
	}
	return m.Charge, nil
}

// MockNotifier implements notifications.Notifier for testing.
type MockNotifier struct {
	rec          *callRecorder
	CallCount    int
	LastCustomer payments.CustomerData
	Err          error
}

func (m *MockNotifier) SendConfirmation(_ context.Context, customer payments.CustomerData) error {
	m.CallCount++
	m.LastCustomer = customer
	m.rec.record("notify")
	return m.Err
}

// MockTransactionLogger implements TransactionLogger for testing.
type MockTransactionLogger struct {
	rec        *callRecorder
	CallCount  int
	LastCharge payments.Charge
	Err        error
}

func (m *MockTransactionLogger) Log(_ payments.CustomerData, _ payments.PaymentData, charge payments.Charge) error {
	m.CallCount++
	m.LastCharge = charge
	m.rec.record("log")
	return m.Err
}

// capturingMailSender implements gomail.Sender for the email scenario.
type capturingMailSender struct {
	CallCount int
	LastFrom  string
	LastTo    []string
}

func (s *capturingMailSender) Send(from string, to []string, msg io.WriterTo) error {
	s.CallCount++
	s.LastFrom = from
	s.LastTo = to
	_, err := msg.WriteTo(io.Discard)
	return err
}

// pipeline bundles a service with its mocks so tests can assert counts and
// ordering in one place.
type pipeline struct {
	rec               *callRecorder
	customerValidator *MockCustomerValidator
	paymentValidator  *MockPaymentValidator
	processor         *MockProcessor
	notifier          *MockNotifier
	transactionLogger *MockTransactionLogger
	service           *PaymentService
}

func newPipeline() *pipeline {
	rec := &callRecorder{}
	p := &pipeline{
		rec:               rec,
		customerValidator: &MockCustomerValidator{rec: rec},
		paymentValidator:  &MockPaymentValidator{rec: rec},
		processor:         &MockProcessor{rec: rec, Charge: payments.Charge{ID: "ch_1", Status: "succeeded", Amount: 500}},
		notifier:          &MockNotifier{rec: rec},
		transactionLogger: &MockTransactionLogger{rec: rec},
	}
	p.service = NewPaymentService(
		p.customerValidator,
		p.paymentValidator,
		p.processor,
		p.notifier,
		p.transactionLogger,
		nil,
	)
	return p
}
