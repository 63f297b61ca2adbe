package workflow

import (
	"errors"
	"fmt"

	"github.com/FG-IT/spree-paypal-express/dao"
	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/transformers"
	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
)

// Steps lists the checkout states in the order an order moves through them
var Steps = []string{
	models.OrderStateCart,
	models.OrderStateAddress,
	models.OrderStateDelivery,
	models.OrderStatePayment,
	models.OrderStateConfirm,
	models.OrderStateComplete,
}

// ErrCannotTransition is returned when an order is not ready to leave its state
var ErrCannotTransition = errors.New("cannot transition")

// Permitted order attributes
const (
	AttrEmail                 = "email"
	AttrBillAddressAttributes = "bill_address_attributes"
	AttrUseBilling            = "use_billing"
)

// Checkout is a linear checkout state machine persisted through the DAO
type Checkout struct {
	DAO dao.DAO
}

// Next moves the order to the step after its current one
func (c *Checkout) Next(order *models.Order) error {
	i := stepIndex(order.State)
	if i < 0 {
		return fmt.Errorf("order [%s] is in unknown state [%s]", order.ID, order.State)
	}
	if i == len(Steps)-1 {
		return fmt.Errorf("order [%s] is already complete: %w", order.ID, ErrCannotTransition)
	}

	if err := canLeave(order); err != nil {
		return err
	}

	next := Steps[i+1]
	if err := c.DAO.UpdateOrderState(order.ID, next); err != nil {
		return fmt.Errorf("error updating order state: [%w]", err)
	}

	log.Debug("order moved to next state", log.Data{"order_id": order.ID, "from": order.State, "to": next})
	order.State = next
	return nil
}

func canLeave(order *models.Order) error {
	switch order.State {
	case models.OrderStateAddress:
		if order.ShipAddress == nil {
			return fmt.Errorf("order [%s] has no shipping address: %w", order.ID, ErrCannotTransition)
		}
	case models.OrderStatePayment:
		if paymentTotal(order).LessThan(order.Total) {
			return fmt.Errorf("payments on order [%s] do not cover the total: %w", order.ID, ErrCannotTransition)
		}
	}
	return nil
}

func paymentTotal(order *models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, p := range order.Payments {
		if p.State == models.PaymentStateFailed {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

// UpdateState sets the order state directly, skipping transition checks
func (c *Checkout) UpdateState(order *models.Order, state string) error {
	if stepIndex(state) < 0 {
		return fmt.Errorf("unknown order state [%s]", state)
	}

	if err := c.DAO.UpdateOrderState(order.ID, state); err != nil {
		return fmt.Errorf("error updating order state: [%w]", err)
	}

	order.State = state
	return nil
}

// UpdateFromParams applies those params whose attribute is in permitted and
// saves the order. Unpermitted attributes are dropped.
func (c *Checkout) UpdateFromParams(order *models.Order, params models.OrderParams, permitted []string) error {
	allowed := make(map[string]bool, len(permitted))
	for _, p := range permitted {
		allowed[p] = true
	}

	if allowed[AttrEmail] && params.Email != "" {
		order.Email = params.Email
	}

	if allowed[AttrBillAddressAttributes] && params.BillAddressAttributes != nil {
		address, err := c.resolveAddress(params.BillAddressAttributes)
		if err != nil {
			return err
		}
		order.BillAddress = address
	}

	if allowed[AttrUseBilling] && params.UseBilling && order.BillAddress != nil {
		ship := *order.BillAddress
		order.ShipAddress = &ship
	}

	orderDB := transformers.OrderTransformer{}.TransformToDB(*order)
	if err := c.DAO.UpdateOrder(&orderDB); err != nil {
		return fmt.Errorf("error saving order [%s]: [%w]", order.ID, err)
	}
	return nil
}

func (c *Checkout) resolveAddress(params *models.AddressParams) (*models.Address, error) {
	country, err := c.DAO.GetCountry(params.CountryID)
	if err != nil {
		return nil, fmt.Errorf("error getting country: [%w]", err)
	}
	if country == nil {
		return nil, fmt.Errorf("country [%s] not found", params.CountryID)
	}

	state, err := c.DAO.GetState(params.StateID)
	if err != nil {
		return nil, fmt.Errorf("error getting state: [%w]", err)
	}
	if state == nil {
		return nil, fmt.Errorf("state [%s] not found", params.StateID)
	}

	return &models.Address{
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Address1:  params.Address1,
		Address2:  params.Address2,
		City:      params.City,
		State:     state,
		Zipcode:   params.Zipcode,
		Country:   country,
		Phone:     params.Phone,
	}, nil
}

func stepIndex(state string) int {
	for i, s := range Steps {
		if s == state {
			return i
		}
	}
	return -1
}
