package handlers

import (
	"fmt"
	"net/http"

	"github.com/FG-IT/spree-paypal-express/interceptors"
	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/normalizer"
	"github.com/FG-IT/spree-paypal-express/service"
	"github.com/FG-IT/spree-paypal-express/transformers"
	"github.com/FG-IT/spree-paypal-express/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleCreatePayPalOrder creates a PayPal order for the order total
func HandleCreatePayPalOrder(w http.ResponseWriter, req *http.Request) {
	order, ok := loadOrder(w, req)
	if !ok {
		return
	}

	response, responseType, err := paypalService.CreatePayPalOrder(req.Context(), order)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating paypal order: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error creating paypal order")
		return
	}

	log.InfoR(req, "Successful POST request for new paypal order", log.Data{"order_id": order.ID, "status": http.StatusCreated})
	utils.WriteJSONWithStatus(w, req, normalizer.Normalize(response), http.StatusCreated)
}

// HandleUpdatePayPalOrder sends the current order total to the order's PayPal order
func HandleUpdatePayPalOrder(w http.ResponseWriter, req *http.Request) {
	order, ok := loadOrder(w, req)
	if !ok {
		return
	}

	responseType, err := paypalService.UpdatePayPalOrder(req.Context(), order)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating paypal order: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error updating paypal order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetPayPalOrderValidity reports whether PayPal still knows a PayPal order
func HandleGetPayPalOrderValidity(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["paypal_order_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("paypal order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	valid := paypalService.IsOrderValid(req.Context(), id)
	utils.WriteJSONWithStatus(w, req, models.ValidityResponse{Valid: valid}, http.StatusOK)
}

// HandleApprovePayPalOrder is called once the buyer has approved a PayPal
// order. The buyer's PayPal address is copied to the order when it has none.
func HandleApprovePayPalOrder(w http.ResponseWriter, req *http.Request) {
	paypalOrderID := mux.Vars(req)["paypal_order_id"]
	if paypalOrderID == "" {
		log.ErrorR(req, fmt.Errorf("paypal order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	order, ok := loadOrder(w, req)
	if !ok {
		return
	}

	response, responseType, err := paypalService.GetPayPalOrder(req.Context(), paypalOrderID)
	if err != nil {
		log.ErrorR(req, err, log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error getting paypal order")
		return
	}

	responseType, err = paypalService.AddShippingAddressFromPayPal(order, response, permittedAttributes)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error adding paypal address: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error adding paypal address")
		return
	}

	log.InfoR(req, "paypal order approved", log.Data{"order_id": order.ID, "paypal_order_id": paypalOrderID, "state": order.State})
	utils.WriteJSONWithStatus(w, req, transformers.OrderTransformer{}.TransformToRest(*order), http.StatusOK)
}

func loadOrder(w http.ResponseWriter, req *http.Request) (*models.Order, bool) {
	if order, ok := interceptors.OrderFromContext(req.Context()); ok {
		return order, true
	}

	id := mux.Vars(req)["order_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	order, responseType, err := paypalService.GetOrder(id)
	if err != nil {
		log.ErrorR(req, err, log.Data{"order_id": id, "service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, "error getting order")
		return nil, false
	}
	return order, true
}

func writeServiceError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, message string) {
	status := http.StatusInternalServerError
	switch responseType {
	case service.InvalidData:
		status = http.StatusUnprocessableEntity
	case service.NotFound:
		status = http.StatusNotFound
	}
	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(message), status)
}
