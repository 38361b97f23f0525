package payments

// ContactInfo holds the channels a customer can be reached on. Which field
// must be populated depends on the notifier the caller wires in; the
// customer validator only checks that at least one is set.
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	PushToken string `json:"push_token,omitempty"`
}

// Empty reports whether no contact channel is populated.
func (c ContactInfo) Empty() bool {
	return c.Email == "" && c.Phone == "" && c.PushToken == ""
}

// CustomerData identifies the paying customer for one transaction. It is
// built by the caller per transaction and never mutated while processing.
type CustomerData struct {
	Name        string      `json:"name" validate:"required"`
	ContactInfo ContactInfo `json:"contact_info" validate:"contact"`
}

// PaymentData carries the payment instrument for one transaction. Amount is
// in minor currency units (cents). Source is the opaque token the gateway's
// client-side tokenization produced.
type PaymentData struct {
	Amount int64  `json:"amount"`
	Source string `json:"source" validate:"required"`
	// CVV arrives in some caller payloads but the gateway token already
	// covers it, so it is carried and ignored.
	CVV string `json:"cvv,omitempty"`
}

// Charge is the gateway's record of a charge attempt. The pipeline only
// reads Status (for the transaction log) and otherwise hands it back to the
// caller untouched.
type Charge struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Source      string `json:"source"`
	Description string `json:"description"`
}
