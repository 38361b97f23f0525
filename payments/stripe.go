package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultStripeBaseURL = "https://api.stripe.com"

// Every charge goes out in USD; the provider account is dollar-denominated
// and callers pass amounts in cents.
const chargeCurrency = "usd"

// StripeAdapter charges card tokens through Stripe's charge-creation
// endpoint. The API key comes in through the constructor; no package-level
// key is ever set.
type StripeAdapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewStripeAdapter builds an adapter for the given secret key. baseURL is
// optional and exists so tests can point the adapter at a local server.
func NewStripeAdapter(apiKey, baseURL string) *StripeAdapter {
	if baseURL == "" {
		baseURL = defaultStripeBaseURL
	}
	return &StripeAdapter{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

func (s *StripeAdapter) chargeURL() string {
	return strings.TrimRight(s.baseURL, "/") + "/v1/charges"
}

// ProcessTransaction creates one charge: amount in cents, fixed USD
// currency, the caller's source token, and a description built from the
// customer's name. A provider-reported failure comes back as *GatewayError
// with the provider's message; nothing is retried.
func (s *StripeAdapter) ProcessTransaction(ctx context.Context, customer CustomerData, payment PaymentData) (Charge, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(payment.Amount, 10))
	form.Set("currency", chargeCurrency)
	form.Set("source", payment.Source)
	form.Set("description", "Charge for "+customer.Name)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.chargeURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return Charge{}, fmt.Errorf("stripe charge request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return Charge{}, fmt.Errorf("stripe charge request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		// Stripe wraps failures in an error envelope; surface its message
		// verbatim so support can read it.
		var res struct {
			Error struct {
				Type    string `json:"type"`
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(raw, &res); err != nil || res.Error.Message == "" {
			return Charge{}, &GatewayError{
				Type:       "api_error",
				Message:    fmt.Sprintf("http=%d body=%s", resp.StatusCode, string(raw)),
				StatusCode: resp.StatusCode,
			}
		}
		return Charge{}, &GatewayError{
			Type:       res.Error.Type,
			Code:       res.Error.Code,
			Message:    res.Error.Message,
			StatusCode: resp.StatusCode,
		}
	}

	var res struct {
		ID       string `json:"id"`
		Status   string `json:"status"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Source   struct {
			ID string `json:"id"`
		} `json:"source"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return Charge{}, fmt.Errorf("stripe charge decode: %w body=%s", err, string(raw))
	}

	return Charge{
		ID:          res.ID,
		Status:      res.Status,
		Amount:      res.Amount,
		Currency:    res.Currency,
		Source:      res.Source.ID,
		Description: res.Description,
	}, nil
}
