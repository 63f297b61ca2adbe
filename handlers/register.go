package handlers

import (
	"net/http"

	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/FG-IT/spree-paypal-express/dao"
	"github.com/FG-IT/spree-paypal-express/interceptors"
	"github.com/FG-IT/spree-paypal-express/service"
	"github.com/FG-IT/spree-paypal-express/workflow"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var paypalService *service.PayPalService
var permittedAttributes []string

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config, d dao.DAO, client service.PayPalSDK) {
	paypalService = &service.PayPalService{
		Client:   client,
		DAO:      d,
		Workflow: &workflow.Checkout{DAO: d},
		Config:   cfg,
	}
	permittedAttributes = cfg.PermittedAttributes()

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	validityRouter := mainRouter.PathPrefix("/paypal/orders/{paypal_order_id}").Subrouter()
	validityRouter.HandleFunc("/validity", HandleGetPayPalOrderValidity).Methods("GET").Name("get-paypal-order-validity")

	orderRouter := mainRouter.PathPrefix("/orders/{order_id}/paypal").Subrouter()
	orderRouter.HandleFunc("/orders", HandleCreatePayPalOrder).Methods("POST").Name("create-paypal-order")
	orderRouter.HandleFunc("/orders", HandleUpdatePayPalOrder).Methods("PATCH").Name("update-paypal-order")
	orderRouter.HandleFunc("/orders/{paypal_order_id}/approve", HandleApprovePayPalOrder).Methods("POST").Name("approve-paypal-order")
	orderRouter.HandleFunc("/payments", HandleCreatePayPalPayment).Methods("POST").Name("create-paypal-payment")
	orderRouter.HandleFunc("/payments/{payment_id}/capture", HandleCapturePayPalPayment).Methods("POST").Name("capture-paypal-payment")
	orderRouter.HandleFunc("/fragments/{fragment}", HandleGetFragment).Methods("GET").Name("get-paypal-fragment")

	orderAuthInterceptor := interceptors.OrderAuthenticationInterceptor{
		Service: paypalService,
	}

	validityRouter.Use(log.Handler)
	orderRouter.Use(log.Handler, orderAuthInterceptor.OrderAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
