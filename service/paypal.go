package service

import (
	"context"
	"fmt"

	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/FG-IT/spree-paypal-express/dao"
	"github.com/FG-IT/spree-paypal-express/mappers"
	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/normalizer"
	"github.com/FG-IT/spree-paypal-express/transformers"
	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/plutov/paypal/v4"
)

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetOrder(ctx context.Context, orderID string) (normalizer.Node, error)
	CreateOrder(ctx context.Context, request models.OutgoingPayPalOrderRequest) (normalizer.Node, error)
	PatchOrder(ctx context.Context, orderID string, operations []models.PatchOperation) error
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
}

// Workflow is the host platform's order state machine
type Workflow interface {
	// Next advances the order to its next checkout state
	Next(order *models.Order) error
	// UpdateState writes the order state without running any transition
	UpdateState(order *models.Order, state string) error
	// UpdateFromParams applies the permitted attributes of params to the order
	UpdateFromParams(order *models.Order, params models.OrderParams, permitted []string) error
}

// PayPalService links host orders to PayPal orders
type PayPalService struct {
	Client   PayPalSDK
	DAO      dao.DAO
	Workflow Workflow
	Config   config.Config
}

// GetOrder loads an order with its PayPal checkout and payments
func (pp *PayPalService) GetOrder(id string) (*models.Order, ResponseType, error) {
	orderDB, err := pp.DAO.GetOrder(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order from db: [%w]", err)
	}
	if orderDB == nil {
		return nil, NotFound, fmt.Errorf("order not found. id: %s", id)
	}

	order, err := transformers.OrderTransformer{}.TransformToDomain(*orderDB)
	if err != nil {
		return nil, Error, err
	}

	order.PaypalCheckout, err = pp.DAO.GetPaypalCheckout(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting paypal checkout from db: [%w]", err)
	}

	payments, err := pp.DAO.GetPayments(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payments from db: [%w]", err)
	}
	for _, p := range payments {
		payment, err := transformers.PaymentTransformer{}.TransformToDomain(p)
		if err != nil {
			return nil, Error, err
		}
		order.Payments = append(order.Payments, payment)
	}

	return &order, Success, nil
}

// CreatePayPalOrder creates a PayPal order for the order total, passing the
// shipping address and email along when the order has them
func (pp *PayPalService) CreatePayPalOrder(ctx context.Context, order *models.Order) (normalizer.Node, ResponseType, error) {
	request := mappers.MapToCreateOrderRequest(order, pp.orderRequestOptions(order))

	response, err := pp.Client.CreateOrder(ctx, request)
	if err != nil {
		return normalizer.Node{}, Error, fmt.Errorf("error creating order: [%w]", err)
	}

	log.Info("created paypal order", log.Data{"order_id": order.ID, "paypal_order_id": response.Get("id").String()})

	return response, Success, nil
}

func (pp *PayPalService) orderRequestOptions(order *models.Order) models.OrderRequestOptions {
	return models.OrderRequestOptions{
		Intent:     pp.Config.PaypalIntent,
		ReturnURL:  fmt.Sprintf("%s/orders/%s/paypal/return", pp.Config.StorefrontURL, order.Number),
		CancelURL:  fmt.Sprintf("%s/orders/%s/paypal/cancel", pp.Config.StorefrontURL, order.Number),
		BrandName:  pp.Config.PaypalBrandName,
		UserAction: pp.Config.PaypalUserAction,
	}
}

// UpdatePayPalOrder brings the amount of the order's PayPal order in line
// with the current order total
func (pp *PayPalService) UpdatePayPalOrder(ctx context.Context, order *models.Order) (ResponseType, error) {
	if order.PaypalCheckout == nil {
		return NotFound, fmt.Errorf("order [%s] has no paypal checkout", order.ID)
	}

	err := pp.Client.PatchOrder(ctx, order.PaypalCheckout.Token, mappers.MapToAmountPatch(order))
	if err != nil {
		return Error, fmt.Errorf("error updating paypal order [%s]: [%w]", order.PaypalCheckout.Token, err)
	}

	return Success, nil
}

// GetPayPalOrder fetches a PayPal order
func (pp *PayPalService) GetPayPalOrder(ctx context.Context, paypalOrderID string) (normalizer.Node, ResponseType, error) {
	response, err := pp.Client.GetOrder(ctx, paypalOrderID)
	if err != nil {
		return normalizer.Node{}, Error, fmt.Errorf("error getting paypal order [%s]: [%w]", paypalOrderID, err)
	}
	return response, Success, nil
}

// IsOrderValid reports whether PayPal knows the order. Every error from the
// client, whatever its cause, collapses to false.
func (pp *PayPalService) IsOrderValid(ctx context.Context, paypalOrderID string) bool {
	_, err := pp.Client.GetOrder(ctx, paypalOrderID)
	if err != nil {
		log.Debug("paypal order is not valid", log.Data{"paypal_order_id": paypalOrderID, "error": err.Error()})
		return false
	}
	return true
}

// AddShippingAddressFromPayPal copies the payer and shipping address of an
// approved PayPal order onto an order that has no shipping address yet, then
// records the PayPal order on the order's checkout and moves the order on.
// An order that already has a shipping address keeps it.
func (pp *PayPalService) AddShippingAddressFromPayPal(order *models.Order, response normalizer.Node, permitted []string) (ResponseType, error) {
	if order.ShipAddress == nil {
		shipping := mappers.MapFromOrderResponse(response)

		country, err := pp.DAO.FindCountryByISO(shipping.CountryCode)
		if err != nil {
			return Error, fmt.Errorf("error finding country: [%w]", err)
		}
		if country == nil {
			return InvalidData, fmt.Errorf("country not found for iso [%s]", shipping.CountryCode)
		}

		state, err := pp.DAO.FindStateByAbbr(shipping.StateAbbr, country.ID)
		if err != nil {
			return Error, fmt.Errorf("error finding state: [%w]", err)
		}
		if state == nil {
			return InvalidData, fmt.Errorf("state not found for abbr [%s] in country [%s]", shipping.StateAbbr, country.ISO)
		}

		params := mappers.MapToOrderParams(shipping, country.ID, state.ID)
		if err = pp.Workflow.UpdateFromParams(order, params, permitted); err != nil {
			return Error, fmt.Errorf("error updating order [%s] from paypal: [%w]", order.ID, err)
		}
	}

	if err := pp.Workflow.UpdateState(order, models.OrderStateAddress); err != nil {
		return Error, fmt.Errorf("error setting order [%s] state: [%w]", order.ID, err)
	}

	if err := pp.upsertPaypalCheckout(order, response); err != nil {
		return Error, err
	}

	if err := pp.Workflow.Next(order); err != nil {
		return Error, fmt.Errorf("error advancing order [%s]: [%w]", order.ID, err)
	}

	return Success, nil
}

func (pp *PayPalService) upsertPaypalCheckout(order *models.Order, response normalizer.Node) error {
	if order.PaypalCheckout != nil {
		checkout := mappers.MapToPaypalCheckout(response, *order.PaypalCheckout)
		if err := pp.DAO.UpdatePaypalCheckout(&checkout); err != nil {
			return fmt.Errorf("error updating paypal checkout for order [%s]: [%w]", order.ID, err)
		}
		order.PaypalCheckout = &checkout
		return nil
	}

	checkout := mappers.MapToPaypalCheckout(response, models.PaypalCheckout{
		ID:      uuid.NewString(),
		OrderID: order.ID,
	})
	if err := pp.DAO.CreatePaypalCheckout(&checkout); err != nil {
		return fmt.Errorf("error creating paypal checkout for order [%s]: [%w]", order.ID, err)
	}
	order.PaypalCheckout = &checkout
	return nil
}

// CompleteWithPayPalCheckout pays the order total from a new PayPal checkout
// source and moves the order on
func (pp *PayPalService) CompleteWithPayPalCheckout(order *models.Order, token, payerID string, paymentMethod *models.PaymentMethod) (*models.Payment, ResponseType, error) {
	source := models.PaypalCheckout{
		ID:      uuid.NewString(),
		Token:   token,
		PayerID: payerID,
	}
	if err := pp.DAO.CreatePaypalCheckout(&source); err != nil {
		return nil, Error, fmt.Errorf("error creating paypal checkout source: [%w]", err)
	}

	return pp.createPayment(order, source, paymentMethod)
}

// CompleteWithPayPalExpressPayment pays the order total from the order's
// existing PayPal checkout and moves the order on
func (pp *PayPalService) CompleteWithPayPalExpressPayment(order *models.Order, paymentMethod *models.PaymentMethod) (*models.Payment, ResponseType, error) {
	if order.PaypalCheckout == nil {
		return nil, NotFound, fmt.Errorf("order [%s] has no paypal checkout", order.ID)
	}

	return pp.createPayment(order, *order.PaypalCheckout, paymentMethod)
}

func (pp *PayPalService) createPayment(order *models.Order, source models.PaypalCheckout, paymentMethod *models.PaymentMethod) (*models.Payment, ResponseType, error) {
	payment := models.Payment{
		ID:              uuid.NewString(),
		OrderID:         order.ID,
		Amount:          order.Total,
		PaymentMethodID: paymentMethod.ID,
		Source:          source,
		State:           models.PaymentStateCheckout,
	}

	paymentDB := transformers.PaymentTransformer{}.TransformToDB(payment)
	if err := pp.DAO.CreatePayment(&paymentDB); err != nil {
		return nil, Error, fmt.Errorf("error creating payment for order [%s]: [%w]", order.ID, err)
	}
	order.Payments = append(order.Payments, payment)

	if err := pp.Workflow.Next(order); err != nil {
		return nil, Error, fmt.Errorf("error advancing order [%s]: [%w]", order.ID, err)
	}

	log.Info("created paypal payment", log.Data{"order_id": order.ID, "payment_id": payment.ID, "amount": paymentDB.Amount})

	return &payment, Success, nil
}

// CapturePayment captures the PayPal order behind a payment and records the
// outcome on the payment
func (pp *PayPalService) CapturePayment(ctx context.Context, payment *models.Payment) (*paypal.CaptureOrderResponse, ResponseType, error) {
	if payment.State != models.PaymentStateCheckout {
		return nil, InvalidData, fmt.Errorf("payment [%s] cannot be captured from state [%s]", payment.ID, payment.State)
	}

	res, err := pp.Client.CaptureOrder(ctx, payment.Source.Token, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, Error, fmt.Errorf("error capturing paypal order [%s]: [%w]", payment.Source.Token, err)
	}

	state := models.PaymentStateFailed
	if res.Status == paypal.OrderStatusCompleted {
		state = models.PaymentStateCompleted
	}

	if err = pp.DAO.UpdatePaymentState(payment.ID, state); err != nil {
		return nil, Error, fmt.Errorf("error updating payment [%s] state: [%w]", payment.ID, err)
	}
	payment.State = state

	return res, Success, nil
}

// GetPayment loads a payment
func (pp *PayPalService) GetPayment(id string) (*models.Payment, ResponseType, error) {
	paymentDB, err := pp.DAO.GetPayment(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment from db: [%w]", err)
	}
	if paymentDB == nil {
		return nil, NotFound, fmt.Errorf("payment not found. id: %s", id)
	}

	payment, err := transformers.PaymentTransformer{}.TransformToDomain(*paymentDB)
	if err != nil {
		return nil, Error, err
	}
	return &payment, Success, nil
}

// GetPaymentMethod loads a payment method and checks it is backed by PayPal
func (pp *PayPalService) GetPaymentMethod(id string) (*models.PaymentMethod, ResponseType, error) {
	paymentMethod, err := pp.DAO.GetPaymentMethod(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment method from db: [%w]", err)
	}
	if paymentMethod == nil {
		return nil, NotFound, fmt.Errorf("payment method not found. id: %s", id)
	}
	if paymentMethod.Type != models.PaymentMethodTypePayPalCheckout {
		return nil, InvalidData, fmt.Errorf("payment method [%s] is of type [%s]", id, paymentMethod.Type)
	}
	return paymentMethod, Success, nil
}

// FindPayPalPaymentMethod returns the configured PayPal payment method, or nil
// when there is none
func (pp *PayPalService) FindPayPalPaymentMethod() (*models.PaymentMethod, error) {
	paymentMethod, err := pp.DAO.FindPaymentMethodByType(models.PaymentMethodTypePayPalCheckout)
	if err != nil {
		return nil, fmt.Errorf("error finding paypal payment method: [%w]", err)
	}
	return paymentMethod, nil
}
