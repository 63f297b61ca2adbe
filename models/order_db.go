package models

// OrderDB is the order document as stored in the DB
type OrderDB struct {
	ID          string   `bson:"_id"`
	Number      string   `bson:"number"`
	Currency    string   `bson:"currency"`
	Total       string   `bson:"total"`
	Email       string   `bson:"email,omitempty"`
	State       string   `bson:"state"`
	Token       string   `bson:"guest_token,omitempty"`
	ShipAddress *Address `bson:"ship_address,omitempty"`
	BillAddress *Address `bson:"bill_address,omitempty"`
}

// PaymentDB is the payment document as stored in the DB
type PaymentDB struct {
	ID              string         `bson:"_id"`
	OrderID         string         `bson:"order_id"`
	Amount          string         `bson:"amount"`
	PaymentMethodID string         `bson:"payment_method_id"`
	Source          PaypalCheckout `bson:"source"`
	State           string         `bson:"state"`
}
