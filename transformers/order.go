package transformers

import (
	"fmt"

	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/shopspring/decimal"
)

// OrderTransformer transforms order data between domain, rest and database models
type OrderTransformer struct{}

// TransformToDB transforms the order domain model into the order database model
func (ot OrderTransformer) TransformToDB(order models.Order) models.OrderDB {
	return models.OrderDB{
		ID:          order.ID,
		Number:      order.Number,
		Currency:    order.Currency,
		Total:       order.Total.StringFixed(2),
		Email:       order.Email,
		State:       order.State,
		Token:       order.Token,
		ShipAddress: order.ShipAddress,
		BillAddress: order.BillAddress,
	}
}

// TransformToDomain transforms the order database model into the order domain
// model. Checkout and payments are attached by the caller.
func (ot OrderTransformer) TransformToDomain(dbOrder models.OrderDB) (models.Order, error) {
	total, err := parseAmount(dbOrder.Total)
	if err != nil {
		return models.Order{}, fmt.Errorf("error reading total for order [%s]: [%w]", dbOrder.ID, err)
	}

	return models.Order{
		ID:          dbOrder.ID,
		Number:      dbOrder.Number,
		Currency:    dbOrder.Currency,
		Total:       total,
		Email:       dbOrder.Email,
		State:       dbOrder.State,
		Token:       dbOrder.Token,
		ShipAddress: dbOrder.ShipAddress,
		BillAddress: dbOrder.BillAddress,
	}, nil
}

// TransformToRest transforms the order domain model into the public order model
func (ot OrderTransformer) TransformToRest(order models.Order) models.OrderRest {
	rest := models.OrderRest{
		ID:             order.ID,
		Number:         order.Number,
		State:          order.State,
		Email:          order.Email,
		Currency:       order.Currency,
		Total:          models.FormatAmount(order.Total, order.Currency),
		ShipAddress:    order.ShipAddress,
		BillAddress:    order.BillAddress,
		PaypalCheckout: order.PaypalCheckout,
	}

	pt := PaymentTransformer{}
	for _, payment := range order.Payments {
		rest.Payments = append(rest.Payments, pt.TransformToRest(payment))
	}

	return rest
}

// PaymentTransformer transforms payment data between domain, rest and database models
type PaymentTransformer struct{}

// TransformToDB transforms the payment domain model into the payment database model
func (pt PaymentTransformer) TransformToDB(payment models.Payment) models.PaymentDB {
	return models.PaymentDB{
		ID:              payment.ID,
		OrderID:         payment.OrderID,
		Amount:          payment.Amount.StringFixed(2),
		PaymentMethodID: payment.PaymentMethodID,
		Source:          payment.Source,
		State:           payment.State,
	}
}

// TransformToDomain transforms the payment database model into the payment domain model
func (pt PaymentTransformer) TransformToDomain(dbPayment models.PaymentDB) (models.Payment, error) {
	amount, err := parseAmount(dbPayment.Amount)
	if err != nil {
		return models.Payment{}, fmt.Errorf("error reading amount for payment [%s]: [%w]", dbPayment.ID, err)
	}

	return models.Payment{
		ID:              dbPayment.ID,
		OrderID:         dbPayment.OrderID,
		Amount:          amount,
		PaymentMethodID: dbPayment.PaymentMethodID,
		Source:          dbPayment.Source,
		State:           dbPayment.State,
	}, nil
}

// TransformToRest transforms the payment domain model into the public payment model
func (pt PaymentTransformer) TransformToRest(payment models.Payment) models.PaymentRest {
	return models.PaymentRest{
		ID:              payment.ID,
		Amount:          payment.Amount.StringFixed(2),
		PaymentMethodID: payment.PaymentMethodID,
		Token:           payment.Source.Token,
		PayerID:         payment.Source.PayerID,
		State:           payment.State,
	}
}

func parseAmount(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(amount)
}
