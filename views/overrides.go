package views

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/FG-IT/spree-paypal-express/models"
)

// Insertion positions relative to the selected element
const (
	InsertTop    = "insert_top"
	InsertAfter  = "insert_after"
	InsertBefore = "insert_before"
)

// Override inserts a rendered fragment into a storefront page
type Override struct {
	VirtualPath string `json:"virtual_path"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Selector    string `json:"selector"`
	Fragment    string `json:"-"`
}

// Overrides are the storefront insertions for the PayPal buttons and the
// Pay Later message
var Overrides = []Override{
	{
		VirtualPath: "spree/checkout/edit",
		Name:        "add_paypal_button",
		Position:    InsertTop,
		Selector:    `[data-hook="checkout_form_wrapper"]`,
		Fragment:    checkoutButton,
	},
	{
		VirtualPath: "spree/orders/edit",
		Name:        "add_paypal_pay_later_in_cart",
		Position:    InsertAfter,
		Selector:    `[data-hook="cart_summary"]`,
		Fragment:    payLaterMessage,
	},
	{
		VirtualPath: "spree/orders/edit",
		Name:        "add_paypal_button_in_cart",
		Position:    InsertBefore,
		Selector:    `[data-hook="cart_buttons"]`,
		Fragment:    cartButton,
	},
}

const checkoutButton = `<div id="paypal-button-container" data-order-id="{{.OrderID}}" data-order-number="{{.OrderNumber}}" data-currency="{{.Currency}}"></div>`

const payLaterMessage = `<div id="cart-paypal-pay-later">
  <div
    data-pp-message
    data-pp-placement="cart"
    data-pp-style-layout="text"
    data-pp-style-text-size="{{.PayLaterTextSize}}"
    data-pp-style-logo-type="inline"
    data-pp-style-text-color="black"
    data-pp-amount="{{.Amount}}"
  >
  </div>
</div>
<style>
  #cart-paypal-pay-later {
    margin-top: 0.5em;
  }
</style>`

const cartButton = `<div id="cart-paypal-button-container" data-order-id="{{.OrderID}}" data-order-number="{{.OrderNumber}}" data-currency="{{.Currency}}"></div>`

var templates = parse()

func parse() *template.Template {
	root := template.New("overrides")
	for _, o := range Overrides {
		template.Must(root.New(o.Name).Parse(o.Fragment))
	}
	return root
}

// FragmentData is what a fragment is rendered with
type FragmentData struct {
	OrderID          string
	OrderNumber      string
	Currency         string
	Amount           string
	PayLaterTextSize string
}

// NewFragmentData builds the fragment data for an order. paymentMethod may be
// nil, in which case no text size is set.
func NewFragmentData(order *models.Order, paymentMethod *models.PaymentMethod) FragmentData {
	data := FragmentData{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Currency:    order.Currency,
		Amount:      models.FormatAmount(order.Total, order.Currency),
	}
	if paymentMethod != nil {
		data.PayLaterTextSize = paymentMethod.PayLaterTextSize
	}
	return data
}

// Lookup finds an override by name
func Lookup(name string) (Override, bool) {
	for _, o := range Overrides {
		if o.Name == name {
			return o, true
		}
	}
	return Override{}, false
}

// Render renders the fragment of the named override
func Render(name string, data FragmentData) (string, error) {
	if _, ok := Lookup(name); !ok {
		return "", fmt.Errorf("no override named [%s]", name)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("error rendering [%s]: [%w]", name, err)
	}
	return buf.String(), nil
}
