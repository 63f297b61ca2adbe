package models

import "github.com/shopspring/decimal"

// Order is the host platform order that a PayPal checkout is attached to
type Order struct {
	ID             string
	Number         string
	Currency       string
	Total          decimal.Decimal
	Email          string
	State          string
	Token          string
	ShipAddress    *Address
	BillAddress    *Address
	PaypalCheckout *PaypalCheckout
	Payments       []Payment
}

// Address is a host platform address with resolved country and state references
type Address struct {
	Firstname string   `json:"firstname" bson:"firstname"`
	Lastname  string   `json:"lastname"  bson:"lastname"`
	Address1  string   `json:"address1"  bson:"address1"`
	Address2  string   `json:"address2"  bson:"address2,omitempty"`
	City      string   `json:"city"      bson:"city"`
	State     *State   `json:"state"     bson:"state,omitempty"`
	Zipcode   string   `json:"zipcode"   bson:"zipcode"`
	Country   *Country `json:"country"   bson:"country,omitempty"`
	Phone     string   `json:"phone"     bson:"phone,omitempty"`
}

// FullName joins first and last name the way PayPal expects a shipping name
func (a Address) FullName() string {
	return a.Firstname + " " + a.Lastname
}

// Country is reference data, looked up by ISO code
type Country struct {
	ID   string `json:"id"   bson:"_id"`
	ISO  string `json:"iso"  bson:"iso"`
	Name string `json:"name" bson:"name"`
}

// State is reference data, looked up by abbreviation within a country
type State struct {
	ID        string `json:"id"         bson:"_id"`
	Abbr      string `json:"abbr"       bson:"abbr"`
	Name      string `json:"name"       bson:"name"`
	CountryID string `json:"country_id" bson:"country_id"`
}

// PaypalCheckout links an order (or a standalone payment source) to a PayPal
// order token and payer
type PaypalCheckout struct {
	ID      string `json:"id"                 bson:"_id"`
	OrderID string `json:"order_id,omitempty" bson:"order_id,omitempty"`
	Token   string `json:"token"              bson:"token"`
	State   string `json:"state,omitempty"    bson:"state,omitempty"`
	PayerID string `json:"payer_id"           bson:"payer_id"`
}

// Payment is a payment against an order, sourced from a PayPal checkout
type Payment struct {
	ID              string
	OrderID         string
	Amount          decimal.Decimal
	PaymentMethodID string
	Source          PaypalCheckout
	State           string
}

// PaymentMethod is a configured payment method on the host platform
type PaymentMethod struct {
	ID               string `json:"id"                  bson:"_id"`
	Type             string `json:"type"                bson:"type"`
	Name             string `json:"name"                bson:"name"`
	PayLaterTextSize string `json:"pay_later_text_size" bson:"pay_later_text_size,omitempty"`
}

// OrderParams are the generic attributes the host platform applies to an order
// through its update-from-params mechanism
type OrderParams struct {
	Email                 string
	BillAddressAttributes *AddressParams
	UseBilling            bool
}

// AddressParams are address attributes with country and state given by id
type AddressParams struct {
	Firstname string
	Lastname  string
	Address1  string
	Address2  string
	City      string
	StateID   string
	Zipcode   string
	CountryID string
	Phone     string
}

// Checkout states an order moves through
const (
	OrderStateCart     = "cart"
	OrderStateAddress  = "address"
	OrderStateDelivery = "delivery"
	OrderStatePayment  = "payment"
	OrderStateConfirm  = "confirm"
	OrderStateComplete = "complete"
)

// Payment states
const (
	PaymentStateCheckout  = "checkout"
	PaymentStateCompleted = "completed"
	PaymentStateFailed    = "failed"
)

// PaymentMethodTypePayPalCheckout is the payment method type backed by this service
const PaymentMethodTypePayPalCheckout = "PayPalCheckout"
