package interceptors

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// OrderTokenHeader is the request header carrying the storefront's order token
const OrderTokenHeader = "X-Spree-Order-Token"

// OrderTokenParam is the query parameter accepted in place of OrderTokenHeader
const OrderTokenParam = "order_token"

type contextKey string

// ContextKeyOrder is the context key of the order loaded by the interceptor
const ContextKeyOrder contextKey = "order"

// OrderAuthenticationInterceptor contains the service used to load orders in the interceptor
type OrderAuthenticationInterceptor struct {
	Service *service.PayPalService
}

// OrderAuthenticationIntercept checks that the request carries the token of the order it acts on
func (orderAuthenticationInterceptor OrderAuthenticationInterceptor) OrderAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["order_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("OrderAuthenticationInterceptor error: no order id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		token := r.Header.Get(OrderTokenHeader)
		if token == "" {
			token = r.URL.Query().Get(OrderTokenParam)
		}
		if token == "" {
			log.InfoR(r, "OrderAuthenticationInterceptor unauthorised: no order token", log.Data{"order_id": id})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		order, responseType, err := orderAuthenticationInterceptor.Service.GetOrder(id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("OrderAuthenticationInterceptor error when retrieving order: [%v]", err), log.Data{"service_response_type": responseType.String()})
			switch responseType {
			case service.NotFound:
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		// an order without a token can't be claimed by anyone
		if order.Token == "" || subtle.ConstantTimeCompare([]byte(order.Token), []byte(token)) != 1 {
			log.InfoR(r, "OrderAuthenticationInterceptor unauthorised: order token mismatch", log.Data{"order_id": id})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyOrder, order)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OrderFromContext returns the order stored by OrderAuthenticationIntercept
func OrderFromContext(ctx context.Context) (*models.Order, bool) {
	order, ok := ctx.Value(ContextKeyOrder).(*models.Order)
	return order, ok && order != nil
}
