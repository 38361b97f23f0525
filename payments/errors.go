package payments

import "fmt"

// GatewayError carries a charge failure reported by the payment provider,
// message included verbatim. It is returned as-is to the caller; nothing in
// this module retries on it.
type GatewayError struct {
	Type       string
	Code       string
	Message    string
	StatusCode int
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment gateway error (%s/%s): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("payment gateway error (%s): %s", e.Type, e.Message)
}
