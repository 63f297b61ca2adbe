package dao

import (
	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/FG-IT/spree-paypal-express/models"
)

// DAO is an interface for accessing orders, PayPal checkouts, payments and
// reference data from a backend store. Getters return nil, nil when nothing
// matches. Order writes only ever touch the fields named by the method.
type DAO interface {
	GetOrder(id string) (*models.OrderDB, error)
	UpdateOrder(order *models.OrderDB) error
	UpdateOrderState(id, state string) error
	GetPaypalCheckout(orderID string) (*models.PaypalCheckout, error)
	CreatePaypalCheckout(checkout *models.PaypalCheckout) error
	UpdatePaypalCheckout(checkout *models.PaypalCheckout) error
	GetPayments(orderID string) ([]models.PaymentDB, error)
	GetPayment(id string) (*models.PaymentDB, error)
	CreatePayment(payment *models.PaymentDB) error
	UpdatePaymentState(id, state string) error
	GetCountry(id string) (*models.Country, error)
	FindCountryByISO(iso string) (*models.Country, error)
	GetState(id string) (*models.State, error)
	FindStateByAbbr(abbr, countryID string) (*models.State, error)
	GetPaymentMethod(id string) (*models.PaymentMethod, error)
	FindPaymentMethodByType(paymentMethodType string) (*models.PaymentMethod, error)
}

// NewDAOService returns the MongoDB backed DAO
func NewDAOService(cfg *config.Config) DAO {
	return &MongoService{
		db: getMongoDatabase(cfg.MongoDBURL, cfg.Database),
	}
}
