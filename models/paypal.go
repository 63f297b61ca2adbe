package models

// ShippingPreferenceSetProvidedAddress tells PayPal the merchant already has
// the buyer's shipping address
const ShippingPreferenceSetProvidedAddress = "SET_PROVIDED_ADDRESS"

// DefaultReferenceID is the reference id PayPal gives a purchase unit created
// without one
const DefaultReferenceID = "default"

// OutgoingPayPalOrderRequest is the request sent to PayPal to create an order
type OutgoingPayPalOrderRequest struct {
	Intent             string             `json:"intent"`
	ApplicationContext ApplicationContext `json:"application_context"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	Payer              *Payer             `json:"payer,omitempty"`
}

// OrderRequestOptions are the merchant and journey settings for a new PayPal order
type OrderRequestOptions struct {
	Intent     string
	ReturnURL  string
	CancelURL  string
	BrandName  string
	UserAction string
}

// ApplicationContext customises the PayPal approval experience
type ApplicationContext struct {
	ReturnURL          string `json:"return_url"`
	CancelURL          string `json:"cancel_url"`
	BrandName          string `json:"brand_name"`
	UserAction         string `json:"user_action"`
	ShippingPreference string `json:"shipping_preference,omitempty"`
}

// PurchaseUnit contains an amount and optional shipping details for a PayPal order
type PurchaseUnit struct {
	Amount   Amount    `json:"amount"`
	Shipping *Shipping `json:"shipping,omitempty"`
}

// Amount is the amount object for a PayPal order
type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// Shipping is the name and address a purchase unit ships to
type Shipping struct {
	Name    ShippingName    `json:"name"`
	Address ShippingAddress `json:"address"`
}

// ShippingName holds the recipient full name
type ShippingName struct {
	FullName string `json:"full_name"`
}

// ShippingAddress is PayPal's portable address
type ShippingAddress struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea2   string `json:"admin_area_2"`
	AdminArea1   string `json:"admin_area_1"`
	PostalCode   string `json:"postal_code"`
	CountryCode  string `json:"country_code"`
}

// Payer carries the buyer's email address
type Payer struct {
	EmailAddress string `json:"email_address"`
}

// PatchOperation is a single JSON Patch operation applied to a PayPal order
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}
