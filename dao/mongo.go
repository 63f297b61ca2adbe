package dao

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	OrdersCollection          = "orders"
	PaypalCheckoutsCollection = "paypal_checkouts"
	PaymentsCollection        = "payments"
	CountriesCollection       = "countries"
	StatesCollection          = "states"
	PaymentMethodsCollection  = "payment_methods"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientWithOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientWithOptions)
	if err != nil {
		log.Error(fmt.Errorf("failed to connect to mongodb: [%v]", err))
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	err = mongoClient.Ping(ctx, nil)
	if err != nil {
		log.Error(fmt.Errorf("ping to mongodb timed out. please check the connection to mongodb and that it is running: [%v]", err))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB
type MongoService struct {
	db MongoDatabaseInterface
}

// findOne decodes the first document matching filter into out. found is false
// when no document matches.
func (m *MongoService) findOne(collection string, filter bson.M, out interface{}) (bool, error) {
	res := m.db.Collection(collection).FindOne(context.Background(), filter)
	err := res.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = res.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoService) setFields(collection, id string, fields bson.M) error {
	res, err := m.db.Collection(collection).UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no document with id [%s] in %s", id, collection)
	}
	return nil
}

// GetOrder gets an order from the DB
func (m *MongoService) GetOrder(id string) (*models.OrderDB, error) {
	var order models.OrderDB
	found, err := m.findOne(OrdersCollection, bson.M{"_id": id}, &order)
	if err != nil || !found {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder writes the email and addresses of an order. The rest of the
// order document belongs to the host platform and is left untouched.
func (m *MongoService) UpdateOrder(order *models.OrderDB) error {
	fields := bson.M{}
	if order.Email != "" {
		fields["email"] = order.Email
	}
	if order.BillAddress != nil {
		fields["bill_address"] = order.BillAddress
	}
	if order.ShipAddress != nil {
		fields["ship_address"] = order.ShipAddress
	}
	if len(fields) == 0 {
		return nil
	}
	return m.setFields(OrdersCollection, order.ID, fields)
}

// UpdateOrderState writes the workflow state of an order and nothing else
func (m *MongoService) UpdateOrderState(id, state string) error {
	return m.setFields(OrdersCollection, id, bson.M{"state": state})
}

// GetPaypalCheckout gets the PayPal checkout attached to an order
func (m *MongoService) GetPaypalCheckout(orderID string) (*models.PaypalCheckout, error) {
	var checkout models.PaypalCheckout
	found, err := m.findOne(PaypalCheckoutsCollection, bson.M{"order_id": orderID}, &checkout)
	if err != nil || !found {
		return nil, err
	}
	return &checkout, nil
}

// CreatePaypalCheckout writes a new PayPal checkout to the DB
func (m *MongoService) CreatePaypalCheckout(checkout *models.PaypalCheckout) error {
	_, err := m.db.Collection(PaypalCheckoutsCollection).InsertOne(context.Background(), checkout)
	return err
}

// UpdatePaypalCheckout overwrites the token, state and payer id of a PayPal checkout
func (m *MongoService) UpdatePaypalCheckout(checkout *models.PaypalCheckout) error {
	return m.setFields(PaypalCheckoutsCollection, checkout.ID, bson.M{
		"token":    checkout.Token,
		"state":    checkout.State,
		"payer_id": checkout.PayerID,
	})
}

// GetPayments gets the payments of an order in creation order
func (m *MongoService) GetPayments(orderID string) ([]models.PaymentDB, error) {
	ctx := context.Background()

	cursor, err := m.db.Collection(PaymentsCollection).Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.PaymentDB{}
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment gets a payment from the DB
func (m *MongoService) GetPayment(id string) (*models.PaymentDB, error) {
	var payment models.PaymentDB
	found, err := m.findOne(PaymentsCollection, bson.M{"_id": id}, &payment)
	if err != nil || !found {
		return nil, err
	}
	return &payment, nil
}

// CreatePayment writes a new payment to the DB
func (m *MongoService) CreatePayment(payment *models.PaymentDB) error {
	_, err := m.db.Collection(PaymentsCollection).InsertOne(context.Background(), payment)
	return err
}

// UpdatePaymentState writes the state of a payment
func (m *MongoService) UpdatePaymentState(id, state string) error {
	return m.setFields(PaymentsCollection, id, bson.M{"state": state})
}

// GetCountry gets a country by id
func (m *MongoService) GetCountry(id string) (*models.Country, error) {
	var country models.Country
	found, err := m.findOne(CountriesCollection, bson.M{"_id": id}, &country)
	if err != nil || !found {
		return nil, err
	}
	return &country, nil
}

// FindCountryByISO gets a country by its ISO 3166 alpha-2 code
func (m *MongoService) FindCountryByISO(iso string) (*models.Country, error) {
	var country models.Country
	found, err := m.findOne(CountriesCollection, bson.M{"iso": iso}, &country)
	if err != nil || !found {
		return nil, err
	}
	return &country, nil
}

// GetState gets a state by id
func (m *MongoService) GetState(id string) (*models.State, error) {
	var state models.State
	found, err := m.findOne(StatesCollection, bson.M{"_id": id}, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// FindStateByAbbr gets a state by abbreviation within a country
func (m *MongoService) FindStateByAbbr(abbr, countryID string) (*models.State, error) {
	var state models.State
	found, err := m.findOne(StatesCollection, bson.M{"abbr": abbr, "country_id": countryID}, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// GetPaymentMethod gets a payment method by id
func (m *MongoService) GetPaymentMethod(id string) (*models.PaymentMethod, error) {
	var paymentMethod models.PaymentMethod
	found, err := m.findOne(PaymentMethodsCollection, bson.M{"_id": id}, &paymentMethod)
	if err != nil || !found {
		return nil, err
	}
	return &paymentMethod, nil
}

// FindPaymentMethodByType gets the first payment method of a type
func (m *MongoService) FindPaymentMethodByType(paymentMethodType string) (*models.PaymentMethod, error) {
	var paymentMethod models.PaymentMethod
	found, err := m.findOne(PaymentMethodsCollection, bson.M{"type": paymentMethodType}, &paymentMethod)
	if err != nil || !found {
		return nil, err
	}
	return &paymentMethod, nil
}
