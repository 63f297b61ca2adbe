package models

// IncomingPaymentRequest is the body received when the storefront completes a
// PayPal payment. Token and PayerID are not needed for express payments, which
// reuse the order's existing PaypalCheckout.
type IncomingPaymentRequest struct {
	Token           string `json:"token"             validate:"required_unless=Express true"`
	PayerID         string `json:"payer_id"          validate:"required_unless=Express true"`
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	Express         bool   `json:"express"`
}

// OrderRest is the public representation of an order returned after a PayPal step
type OrderRest struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	State          string          `json:"state"`
	Email          string          `json:"email,omitempty"`
	Currency       string          `json:"currency"`
	Total          string          `json:"total"`
	ShipAddress    *Address        `json:"ship_address,omitempty"`
	BillAddress    *Address        `json:"bill_address,omitempty"`
	PaypalCheckout *PaypalCheckout `json:"paypal_checkout,omitempty"`
	Payments       []PaymentRest   `json:"payments,omitempty"`
}

// PaymentRest is the public representation of a payment
type PaymentRest struct {
	ID              string `json:"id"`
	Amount          string `json:"amount"`
	PaymentMethodID string `json:"payment_method_id"`
	Token           string `json:"token"`
	PayerID         string `json:"payer_id"`
	State           string `json:"state"`
}

// ValidityResponse reports whether a PayPal order id can still be used
type ValidityResponse struct {
	Valid bool `json:"valid"`
}
