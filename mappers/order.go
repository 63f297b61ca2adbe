package mappers

import (
	"fmt"

	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/normalizer"
)

// AmountPatchPath targets the amount of the single purchase unit of an order
var AmountPatchPath = fmt.Sprintf("/purchase_units/@reference_id=='%s'/amount", models.DefaultReferenceID)

// MapToCreateOrderRequest builds the PayPal create order request for an order
func MapToCreateOrderRequest(order *models.Order, opts models.OrderRequestOptions) models.OutgoingPayPalOrderRequest {
	request := models.OutgoingPayPalOrderRequest{
		Intent: opts.Intent,
		ApplicationContext: models.ApplicationContext{
			ReturnURL:  opts.ReturnURL,
			CancelURL:  opts.CancelURL,
			BrandName:  opts.BrandName,
			UserAction: opts.UserAction,
		},
		PurchaseUnits: []models.PurchaseUnit{MapToPurchaseUnit(order)},
	}

	if order.ShipAddress != nil {
		request.ApplicationContext.ShippingPreference = models.ShippingPreferenceSetProvidedAddress
	}

	if order.Email != "" {
		request.Payer = &models.Payer{EmailAddress: order.Email}
	}

	return request
}

// MapToPurchaseUnit builds the one purchase unit sent for an order
func MapToPurchaseUnit(order *models.Order) models.PurchaseUnit {
	unit := models.PurchaseUnit{
		Amount: MapToAmount(order),
	}

	if order.ShipAddress != nil {
		unit.Shipping = mapToShipping(order.ShipAddress)
	}

	return unit
}

// MapToAmount formats the order total in the order currency
func MapToAmount(order *models.Order) models.Amount {
	return models.Amount{
		CurrencyCode: order.Currency,
		Value:        models.FormatAmount(order.Total, order.Currency),
	}
}

// MapToAmountPatch replaces the amount of an existing PayPal order with the
// current order total
func MapToAmountPatch(order *models.Order) []models.PatchOperation {
	return []models.PatchOperation{
		{
			Op:    "replace",
			Path:  AmountPatchPath,
			Value: MapToAmount(order),
		},
	}
}

func mapToShipping(address *models.Address) *models.Shipping {
	shipping := &models.Shipping{
		Name: models.ShippingName{FullName: address.FullName()},
		Address: models.ShippingAddress{
			AddressLine1: address.Address1,
			AddressLine2: address.Address2,
			AdminArea2:   address.City,
			PostalCode:   address.Zipcode,
		},
	}
	if address.State != nil {
		shipping.Address.AdminArea1 = address.State.Abbr
	}
	if address.Country != nil {
		shipping.Address.CountryCode = address.Country.ISO
	}
	return shipping
}

// PayPalShippingAddress is the shipping address and payer details read back
// from a PayPal order
type PayPalShippingAddress struct {
	GivenName   string
	Surname     string
	Email       string
	Address1    string
	Address2    string
	City        string
	StateAbbr   string
	Zipcode     string
	CountryCode string
	Phone       string
}

// MapFromOrderResponse reads payer and shipping details out of a normalized
// PayPal order. Only the first purchase unit is read.
func MapFromOrderResponse(response normalizer.Node) PayPalShippingAddress {
	payer := response.Get("payer")
	address := response.Path("purchase_units", 0, "shipping", "address")

	phone := address.Get("phone").String()
	if phone == "" {
		phone = payer.Path("phone", "phone_number", "national_number").String()
	}

	return PayPalShippingAddress{
		GivenName:   payer.Path("name", "given_name").String(),
		Surname:     payer.Path("name", "surname").String(),
		Email:       payer.Get("email_address").String(),
		Address1:    address.Get("address_line_1").String(),
		Address2:    address.Get("address_line_2").String(),
		City:        address.Get("admin_area_2").String(),
		StateAbbr:   address.Get("admin_area_1").String(),
		Zipcode:     address.Get("postal_code").String(),
		CountryCode: address.Get("country_code").String(),
		Phone:       phone,
	}
}

// MapToOrderParams builds the host order update for a PayPal shipping
// address. The billing address is set and mirrored into shipping.
func MapToOrderParams(shipping PayPalShippingAddress, countryID, stateID string) models.OrderParams {
	address := &models.AddressParams{
		Firstname: shipping.GivenName,
		Lastname:  shipping.Surname,
		Address1:  shipping.Address1,
		Address2:  shipping.Address2,
		City:      shipping.City,
		StateID:   stateID,
		Zipcode:   shipping.Zipcode,
		CountryID: countryID,
		Phone:     shipping.Phone,
	}

	return models.OrderParams{
		Email:                 shipping.Email,
		BillAddressAttributes: address,
		UseBilling:            true,
	}
}

// MapToPaypalCheckout copies the PayPal order id, status and payer id onto a
// checkout record
func MapToPaypalCheckout(response normalizer.Node, checkout models.PaypalCheckout) models.PaypalCheckout {
	checkout.Token = response.Get("id").String()
	checkout.State = response.Get("status").String()
	checkout.PayerID = response.Path("payer", "payer_id").String()
	return checkout
}
