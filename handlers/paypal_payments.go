package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/service"
	"github.com/FG-IT/spree-paypal-express/transformers"
	"github.com/FG-IT/spree-paypal-express/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// handlePaymentMessage allows us to mock the call to producePaymentMessage for unit tests
var handlePaymentMessage = producePaymentMessage

// HandleCreatePayPalPayment pays an order with PayPal. Express payments use the
// order's PayPal checkout; others create a source from the posted token.
func HandleCreatePayPalPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incoming models.IncomingPaymentRequest
	if err := json.NewDecoder(req.Body).Decode(&incoming); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	v := validator.New()
	if err := v.Struct(incoming); err != nil {
		log.ErrorR(req, fmt.Errorf("error validating request: %w", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("error validating request"), http.StatusUnprocessableEntity)
		return
	}

	order, ok := loadOrder(w, req)
	if !ok {
		return
	}

	paymentMethod, responseType, err := paypalService.GetPaymentMethod(incoming.PaymentMethodID)
	if err != nil {
		log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error getting payment method")
		return
	}

	var payment *models.Payment
	if incoming.Express {
		payment, responseType, err = paypalService.CompleteWithPayPalExpressPayment(order, paymentMethod)
	} else {
		payment, responseType, err = paypalService.CompleteWithPayPalCheckout(order, incoming.Token, incoming.PayerID, paymentMethod)
	}
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating paypal payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error creating paypal payment")
		return
	}

	// the payment is stored and the order has moved on, so a failed message
	// must not invite the client to retry
	err = handlePaymentMessage(order.ID, payment.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error producing payment kafka message: [%v]", err), log.Data{"order_id": order.ID, "payment_id": payment.ID})
	}

	log.InfoR(req, "Successful POST request for new paypal payment", log.Data{"order_id": order.ID, "payment_id": payment.ID, "status": http.StatusCreated})
	utils.WriteJSONWithStatus(w, req, transformers.PaymentTransformer{}.TransformToRest(*payment), http.StatusCreated)
}

// HandleCapturePayPalPayment captures the PayPal order behind a payment
func HandleCapturePayPalPayment(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	orderID := vars["order_id"]
	paymentID := vars["payment_id"]
	if orderID == "" || paymentID == "" {
		log.ErrorR(req, fmt.Errorf("order id or payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payment, responseType, err := paypalService.GetPayment(paymentID)
	if err == nil && payment.OrderID != orderID {
		responseType, err = service.NotFound, fmt.Errorf("payment [%s] does not belong to order [%s]", paymentID, orderID)
	}
	if err != nil {
		log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error getting payment")
		return
	}

	res, responseType, err := paypalService.CapturePayment(req.Context(), payment)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing paypal payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error capturing paypal payment")
		return
	}

	log.InfoR(req, "paypal payment captured", log.Data{"payment_id": payment.ID, "paypal_status": res.Status, "state": payment.State})
	utils.WriteJSONWithStatus(w, req, transformers.PaymentTransformer{}.TransformToRest(*payment), http.StatusOK)
}
