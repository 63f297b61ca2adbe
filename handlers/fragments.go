package handlers

import (
	"fmt"
	"net/http"

	"github.com/FG-IT/spree-paypal-express/utils"
	"github.com/FG-IT/spree-paypal-express/views"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleGetFragment renders one of the storefront fragments for an order
func HandleGetFragment(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["fragment"]
	if _, ok := views.Lookup(name); !ok {
		log.ErrorR(req, fmt.Errorf("unknown fragment [%s]", name))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("fragment not found"), http.StatusNotFound)
		return
	}

	order, ok := loadOrder(w, req)
	if !ok {
		return
	}

	paymentMethod, err := paypalService.FindPayPalPaymentMethod()
	if err != nil {
		log.ErrorR(req, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	html, err := views.Render(name, views.NewFragmentData(order, paymentMethod))
	if err != nil {
		log.ErrorR(req, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteHTMLWithStatus(w, req, html, http.StatusOK)
}
