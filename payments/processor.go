package payments

import "context"

// Processor defines a common interface for anything that can charge a
// payment source. One call means one charge attempt against the provider:
// there is no idempotency key, so callers that retry will double-charge.
type Processor interface {
	ProcessTransaction(ctx context.Context, customer CustomerData, payment PaymentData) (Charge, error)
}
