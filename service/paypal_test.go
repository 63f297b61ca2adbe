package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/FG-IT/spree-paypal-express/dao"
	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/normalizer"
	"github.com/golang/mock/gomock"
	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

const approvedOrderResponse = `{
	"id": "5O190127TN364715T",
	"status": "APPROVED",
	"payer": {
		"name": {"given_name": "John", "surname": "Doe"},
		"email_address": "buyer@example.com",
		"payer_id": "QYR5Z8XDVJNXQ"
	},
	"purchase_units": [{
		"reference_id": "default",
		"amount": {"currency_code": "USD", "value": "100.00"},
		"shipping": {
			"address": {
				"address_line_1": "2211 N First Street",
				"address_line_2": "Building 17",
				"admin_area_2": "San Jose",
				"admin_area_1": "CA",
				"postal_code": "95131",
				"country_code": "US",
				"phone": "4085551234"
			}
		}
	}]
}`

var permitted = []string{"email", "bill_address_attributes", "use_billing"}

func createMockPayPalService(sdk PayPalSDK, d dao.DAO, workflow Workflow) PayPalService {
	cfg := config.DefaultConfig()
	cfg.StorefrontURL = "https://shop.example.com"
	cfg.PaypalBrandName = "Example Shop"

	return PayPalService{
		Client:   sdk,
		DAO:      d,
		Workflow: workflow,
		Config:   *cfg,
	}
}

func approvedOrder() normalizer.Node {
	node, err := normalizer.FromJSON([]byte(approvedOrderResponse))
	if err != nil {
		panic(err)
	}
	return node
}

func cartOrder() *models.Order {
	return &models.Order{
		ID:       "R1",
		Number:   "R123456789",
		Currency: "USD",
		Total:    decimal.RequireFromString("100.00"),
		State:    models.OrderStateCart,
	}
}

func TestUnitGetOrder(t *testing.T) {
	Convey("Order not found", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetOrder("R1").Return(nil, nil)

		order, resType, err := svc.GetOrder("R1")
		So(order, ShouldBeNil)
		So(resType, ShouldEqual, NotFound)
		So(err.Error(), ShouldContainSubstring, "order not found")
	})

	Convey("Error reading order", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetOrder("R1").Return(nil, fmt.Errorf("error"))

		_, resType, err := svc.GetOrder("R1")
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error getting order from db: [error]")
	})

	Convey("Order loaded with checkout and payments", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		checkout := &models.PaypalCheckout{ID: "C1", OrderID: "R1", Token: "PP1"}
		mockDao.EXPECT().GetOrder("R1").Return(&models.OrderDB{ID: "R1", Currency: "USD", Total: "100.00", State: "payment"}, nil)
		mockDao.EXPECT().GetPaypalCheckout("R1").Return(checkout, nil)
		mockDao.EXPECT().GetPayments("R1").Return([]models.PaymentDB{{ID: "P1", OrderID: "R1", Amount: "100.00", State: "checkout"}}, nil)

		order, resType, err := svc.GetOrder("R1")
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(order.Total.String(), ShouldEqual, "100")
		So(order.PaypalCheckout, ShouldEqual, checkout)
		So(order.Payments, ShouldHaveLength, 1)
		So(order.Payments[0].Amount.Equal(decimal.NewFromInt(100)), ShouldBeTrue)
	})
}

func TestUnitCreatePayPalOrder(t *testing.T) {
	Convey("Error when creating an order resource in PayPal", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(normalizer.Node{}, fmt.Errorf("error"))

		_, resType, err := svc.CreatePayPalOrder(context.Background(), cartOrder())
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error creating order: [error]")
	})

	Convey("Order without address is created with the total only", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		var sent models.OutgoingPayPalOrderRequest
		mockSDK.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, request models.OutgoingPayPalOrderRequest) (normalizer.Node, error) {
				sent = request
				return normalizer.Record(normalizer.F("id", normalizer.Scalar("PP1"))), nil
			})

		response, resType, err := svc.CreatePayPalOrder(context.Background(), cartOrder())
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(response.Get("id").String(), ShouldEqual, "PP1")

		So(sent.Intent, ShouldEqual, "CAPTURE")
		So(sent.Payer, ShouldBeNil)
		So(sent.PurchaseUnits, ShouldHaveLength, 1)
		So(sent.PurchaseUnits[0].Amount, ShouldResemble, models.Amount{CurrencyCode: "USD", Value: "100.00"})
		So(sent.PurchaseUnits[0].Shipping, ShouldBeNil)
		So(sent.ApplicationContext.ReturnURL, ShouldEqual, "https://shop.example.com/orders/R123456789/paypal/return")
		So(sent.ApplicationContext.CancelURL, ShouldEqual, "https://shop.example.com/orders/R123456789/paypal/cancel")
		So(sent.ApplicationContext.BrandName, ShouldEqual, "Example Shop")
	})
}

func TestUnitUpdatePayPalOrder(t *testing.T) {
	Convey("Order without a PayPal checkout", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		resType, err := svc.UpdatePayPalOrder(context.Background(), cartOrder())
		So(resType, ShouldEqual, NotFound)
		So(err, ShouldNotBeNil)
	})

	Convey("Amount patch is sent for the checkout token", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		order := cartOrder()
		order.PaypalCheckout = &models.PaypalCheckout{ID: "C1", Token: "PP1"}

		mockSDK.EXPECT().PatchOrder(gomock.Any(), "PP1", []models.PatchOperation{{
			Op:    "replace",
			Path:  "/purchase_units/@reference_id=='default'/amount",
			Value: models.Amount{CurrencyCode: "USD", Value: "100.00"},
		}}).Return(nil)

		resType, err := svc.UpdatePayPalOrder(context.Background(), order)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
	})

	Convey("PayPal rejects the patch", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		order := cartOrder()
		order.PaypalCheckout = &models.PaypalCheckout{ID: "C1", Token: "PP1"}

		mockSDK.EXPECT().PatchOrder(gomock.Any(), "PP1", gomock.Any()).Return(fmt.Errorf("error"))

		resType, err := svc.UpdatePayPalOrder(context.Background(), order)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error updating paypal order [PP1]: [error]")
	})
}

func TestUnitIsOrderValid(t *testing.T) {
	Convey("Order known to PayPal is valid", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		mockSDK.EXPECT().GetOrder(gomock.Any(), "PP1").Return(approvedOrder(), nil)

		So(svc.IsOrderValid(context.Background(), "PP1"), ShouldBeTrue)
	})

	Convey("Any client error means the order is not valid", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		mockSDK.EXPECT().GetOrder(gomock.Any(), "missing").Return(normalizer.Node{}, &paypal.ErrorResponse{Message: "not found"})
		mockSDK.EXPECT().GetOrder(gomock.Any(), "timeout").Return(normalizer.Node{}, context.DeadlineExceeded)

		So(svc.IsOrderValid(context.Background(), "missing"), ShouldBeFalse)
		So(svc.IsOrderValid(context.Background(), "timeout"), ShouldBeFalse)
	})
}

func TestUnitAddShippingAddressFromPayPal(t *testing.T) {
	Convey("Order without a shipping address takes the PayPal address", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		mockWorkflow := NewMockWorkflow(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, mockWorkflow)

		order := cartOrder()
		expectedParams := models.OrderParams{
			Email: "buyer@example.com",
			BillAddressAttributes: &models.AddressParams{
				Firstname: "John",
				Lastname:  "Doe",
				Address1:  "2211 N First Street",
				Address2:  "Building 17",
				City:      "San Jose",
				StateID:   "s-ca",
				Zipcode:   "95131",
				CountryID: "c-us",
				Phone:     "4085551234",
			},
			UseBilling: true,
		}

		gomock.InOrder(
			mockDao.EXPECT().FindCountryByISO("US").Return(&models.Country{ID: "c-us", ISO: "US"}, nil),
			mockDao.EXPECT().FindStateByAbbr("CA", "c-us").Return(&models.State{ID: "s-ca", Abbr: "CA", CountryID: "c-us"}, nil),
			mockWorkflow.EXPECT().UpdateFromParams(order, expectedParams, permitted).Return(nil),
			mockWorkflow.EXPECT().UpdateState(order, models.OrderStateAddress).Return(nil),
			mockDao.EXPECT().CreatePaypalCheckout(gomock.Any()).Return(nil),
			mockWorkflow.EXPECT().Next(order).Return(nil),
		)

		resType, err := svc.AddShippingAddressFromPayPal(order, approvedOrder(), permitted)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(order.PaypalCheckout, ShouldNotBeNil)
		So(order.PaypalCheckout.OrderID, ShouldEqual, "R1")
		So(order.PaypalCheckout.Token, ShouldEqual, "5O190127TN364715T")
		So(order.PaypalCheckout.State, ShouldEqual, "APPROVED")
		So(order.PaypalCheckout.PayerID, ShouldEqual, "QYR5Z8XDVJNXQ")
	})

	Convey("Order with a shipping address keeps it", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		mockWorkflow := NewMockWorkflow(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, mockWorkflow)

		order := cartOrder()
		order.ShipAddress = &models.Address{Firstname: "Jane", Lastname: "Roe"}
		order.PaypalCheckout = &models.PaypalCheckout{ID: "C1", OrderID: "R1", Token: "OLD"}

		mockWorkflow.EXPECT().UpdateState(order, models.OrderStateAddress).Return(nil)
		mockDao.EXPECT().UpdatePaypalCheckout(&models.PaypalCheckout{
			ID:      "C1",
			OrderID: "R1",
			Token:   "5O190127TN364715T",
			State:   "APPROVED",
			PayerID: "QYR5Z8XDVJNXQ",
		}).Return(nil)
		mockWorkflow.EXPECT().Next(order).Return(nil)

		resType, err := svc.AddShippingAddressFromPayPal(order, approvedOrder(), permitted)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(order.ShipAddress.Firstname, ShouldEqual, "Jane")
		So(order.PaypalCheckout.Token, ShouldEqual, "5O190127TN364715T")
	})

	Convey("Unknown country is invalid data", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().FindCountryByISO("US").Return(nil, nil)

		resType, err := svc.AddShippingAddressFromPayPal(cartOrder(), approvedOrder(), permitted)
		So(resType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldContainSubstring, "country not found for iso [US]")
	})

	Convey("Unknown state is invalid data", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().FindCountryByISO("US").Return(&models.Country{ID: "c-us", ISO: "US"}, nil)
		mockDao.EXPECT().FindStateByAbbr("CA", "c-us").Return(nil, nil)

		resType, err := svc.AddShippingAddressFromPayPal(cartOrder(), approvedOrder(), permitted)
		So(resType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldContainSubstring, "state not found for abbr [CA]")
	})

	Convey("Error looking up the country", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().FindCountryByISO("US").Return(nil, fmt.Errorf("error"))

		resType, err := svc.AddShippingAddressFromPayPal(cartOrder(), approvedOrder(), permitted)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error finding country: [error]")
	})

	Convey("Workflow refuses to advance", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		mockWorkflow := NewMockWorkflow(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, mockWorkflow)

		order := cartOrder()
		order.ShipAddress = &models.Address{Firstname: "Jane"}

		mockWorkflow.EXPECT().UpdateState(order, models.OrderStateAddress).Return(nil)
		mockDao.EXPECT().CreatePaypalCheckout(gomock.Any()).Return(nil)
		mockWorkflow.EXPECT().Next(order).Return(fmt.Errorf("cannot transition"))

		resType, err := svc.AddShippingAddressFromPayPal(order, approvedOrder(), permitted)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "cannot transition")
	})
}

func TestUnitCompleteWithPayPalCheckout(t *testing.T) {
	paymentMethod := &models.PaymentMethod{ID: "pm1", Type: models.PaymentMethodTypePayPalCheckout}

	Convey("Payment for the order total is created from a new source", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		mockWorkflow := NewMockWorkflow(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, mockWorkflow)

		order := cartOrder()
		var source *models.PaypalCheckout
		var created *models.PaymentDB

		gomock.InOrder(
			mockDao.EXPECT().CreatePaypalCheckout(gomock.Any()).Do(func(c *models.PaypalCheckout) { source = c }).Return(nil),
			mockDao.EXPECT().CreatePayment(gomock.Any()).Do(func(p *models.PaymentDB) { created = p }).Return(nil),
			mockWorkflow.EXPECT().Next(order).Return(nil),
		)

		payment, resType, err := svc.CompleteWithPayPalCheckout(order, "EC-1", "PAYER1", paymentMethod)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)

		So(source.Token, ShouldEqual, "EC-1")
		So(source.PayerID, ShouldEqual, "PAYER1")
		So(source.OrderID, ShouldBeEmpty)

		So(created.Amount, ShouldEqual, "100.00")
		So(created.PaymentMethodID, ShouldEqual, "pm1")
		So(created.Source.Token, ShouldEqual, "EC-1")

		So(payment.Amount.Equal(order.Total), ShouldBeTrue)
		So(payment.State, ShouldEqual, models.PaymentStateCheckout)
		So(order.Payments, ShouldHaveLength, 1)
	})

	Convey("Failed payment does not advance the order", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().CreatePaypalCheckout(gomock.Any()).Return(nil)
		mockDao.EXPECT().CreatePayment(gomock.Any()).Return(fmt.Errorf("error"))

		payment, resType, err := svc.CompleteWithPayPalCheckout(cartOrder(), "EC-1", "PAYER1", paymentMethod)
		So(payment, ShouldBeNil)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error creating payment for order [R1]: [error]")
	})
}

func TestUnitCompleteWithPayPalExpressPayment(t *testing.T) {
	paymentMethod := &models.PaymentMethod{ID: "pm1", Type: models.PaymentMethodTypePayPalCheckout}

	Convey("Order without a PayPal checkout", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		payment, resType, err := svc.CompleteWithPayPalExpressPayment(cartOrder(), paymentMethod)
		So(payment, ShouldBeNil)
		So(resType, ShouldEqual, NotFound)
		So(err, ShouldNotBeNil)
	})

	Convey("Payment uses the existing checkout as its source", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		mockWorkflow := NewMockWorkflow(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, mockWorkflow)

		order := cartOrder()
		order.PaypalCheckout = &models.PaypalCheckout{ID: "C1", OrderID: "R1", Token: "PP1", PayerID: "PAYER1"}

		mockDao.EXPECT().CreatePayment(gomock.Any()).Return(nil)
		mockWorkflow.EXPECT().Next(order).Return(nil)

		payment, resType, err := svc.CompleteWithPayPalExpressPayment(order, paymentMethod)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(payment.Source, ShouldResemble, *order.PaypalCheckout)
	})
}

func TestUnitCapturePayment(t *testing.T) {
	Convey("Payment not in checkout state", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		_, resType, err := svc.CapturePayment(context.Background(), &models.Payment{ID: "P1", State: models.PaymentStateCompleted})
		So(resType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Completed capture completes the payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(mockSDK, mockDao, NewMockWorkflow(mockCtrl))

		payment := &models.Payment{ID: "P1", State: models.PaymentStateCheckout, Source: models.PaypalCheckout{Token: "PP1"}}
		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "PP1", paypal.CaptureOrderRequest{}).Return(&paypal.CaptureOrderResponse{Status: paypal.OrderStatusCompleted}, nil)
		mockDao.EXPECT().UpdatePaymentState("P1", models.PaymentStateCompleted).Return(nil)

		_, resType, err := svc.CapturePayment(context.Background(), payment)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(payment.State, ShouldEqual, models.PaymentStateCompleted)
	})

	Convey("Declined capture fails the payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(mockSDK, mockDao, NewMockWorkflow(mockCtrl))

		payment := &models.Payment{ID: "P1", State: models.PaymentStateCheckout, Source: models.PaypalCheckout{Token: "PP1"}}
		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "PP1", gomock.Any()).Return(&paypal.CaptureOrderResponse{Status: paypal.OrderStatusVoided}, nil)
		mockDao.EXPECT().UpdatePaymentState("P1", models.PaymentStateFailed).Return(nil)

		_, resType, err := svc.CapturePayment(context.Background(), payment)
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(payment.State, ShouldEqual, models.PaymentStateFailed)
	})

	Convey("Capture call fails", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockSDK := NewMockPayPalSDK(mockCtrl)
		svc := createMockPayPalService(mockSDK, dao.NewMockDAO(mockCtrl), NewMockWorkflow(mockCtrl))

		payment := &models.Payment{ID: "P1", State: models.PaymentStateCheckout, Source: models.PaypalCheckout{Token: "PP1"}}
		mockSDK.EXPECT().CaptureOrder(gomock.Any(), "PP1", gomock.Any()).Return(nil, fmt.Errorf("error"))

		_, resType, err := svc.CapturePayment(context.Background(), payment)
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error capturing paypal order [PP1]: [error]")
		So(payment.State, ShouldEqual, models.PaymentStateCheckout)
	})
}

func TestUnitGetPaymentMethod(t *testing.T) {
	Convey("Payment method of another type is invalid", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetPaymentMethod("pm2").Return(&models.PaymentMethod{ID: "pm2", Type: "Check"}, nil)

		paymentMethod, resType, err := svc.GetPaymentMethod("pm2")
		So(paymentMethod, ShouldBeNil)
		So(resType, ShouldEqual, InvalidData)
		So(err, ShouldNotBeNil)
	})

	Convey("Missing payment method", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetPaymentMethod("pm1").Return(nil, nil)

		_, resType, _ := svc.GetPaymentMethod("pm1")
		So(resType, ShouldEqual, NotFound)
	})

	Convey("PayPal payment method", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetPaymentMethod("pm1").Return(&models.PaymentMethod{ID: "pm1", Type: models.PaymentMethodTypePayPalCheckout}, nil)

		paymentMethod, resType, err := svc.GetPaymentMethod("pm1")
		So(err, ShouldBeNil)
		So(resType, ShouldEqual, Success)
		So(paymentMethod.ID, ShouldEqual, "pm1")
	})
}

func TestUnitGetPayment(t *testing.T) {
	Convey("Missing payment", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetPayment("P1").Return(nil, nil)

		_, resType, err := svc.GetPayment("P1")
		So(resType, ShouldEqual, NotFound)
		So(err.Error(), ShouldContainSubstring, "payment not found")
	})

	Convey("Stored amount that is not a number", t, func() {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()
		mockDao := dao.NewMockDAO(mockCtrl)
		svc := createMockPayPalService(NewMockPayPalSDK(mockCtrl), mockDao, NewMockWorkflow(mockCtrl))

		mockDao.EXPECT().GetPayment("P1").Return(&models.PaymentDB{ID: "P1", Amount: "ten"}, nil)

		_, resType, err := svc.GetPayment("P1")
		So(resType, ShouldEqual, Error)
		So(err.Error(), ShouldContainSubstring, "error reading amount for payment [P1]")
	})
}
