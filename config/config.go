// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr          string   `env:"BIND_ADDR"                    flag:"bind-addr"                    flagDesc:"Bind address"`
	MongoDBURL        string   `env:"MONGODB_URL"                  flag:"mongodb-url"                  flagDesc:"MongoDB server URL"`
	Database          string   `env:"MONGODB_DATABASE"             flag:"mongodb-database"             flagDesc:"MongoDB database for data"`
	AllowedOrigins    string   `env:"ALLOWED_ORIGINS"              flag:"allowed-origins"              flagDesc:"Comma separated list of storefront origins allowed by CORS"`
	BrokerAddr        []string `env:"KAFKA_BROKER_ADDR"            flag:"broker-addr"                  flagDesc:"Kafka broker address"`
	SchemaRegistryURL string   `env:"SCHEMA_REGISTRY_URL"          flag:"schema-registry-url"          flagDesc:"Schema registry url"`
	PaypalEnv         string   `env:"PAYPAL_ENV"                   flag:"paypal-env"                   flagDesc:"PayPal environment, either live or test"`
	PaypalClientID    string   `env:"PAYPAL_CLIENT_ID"             flag:"paypal-client-id"             flagDesc:"PayPal REST app client ID"`
	PaypalSecret      string   `env:"PAYPAL_SECRET"                flag:"paypal-secret"                flagDesc:"PayPal REST app secret"`
	PaypalIntent      string   `env:"PAYPAL_INTENT"                flag:"paypal-intent"                flagDesc:"Intent used when creating PayPal orders"`
	PaypalBrandName   string   `env:"PAYPAL_BRAND_NAME"            flag:"paypal-brand-name"            flagDesc:"Brand name shown on the PayPal approval pages"`
	PaypalUserAction  string   `env:"PAYPAL_USER_ACTION"           flag:"paypal-user-action"           flagDesc:"PayPal user action, CONTINUE or PAY_NOW"`
	StorefrontURL     string   `env:"STOREFRONT_URL"               flag:"storefront-url"               flagDesc:"Base URL of the storefront used for return and cancel URLs"`
	PermittedAttrs    string   `env:"PERMITTED_CHECKOUT_ATTRIBUTES" flag:"permitted-checkout-attributes" flagDesc:"Comma separated order attributes PayPal data may update"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:         "spree",
		PaypalEnv:        "test",
		PaypalIntent:     "CAPTURE",
		PaypalUserAction: "CONTINUE",
		PermittedAttrs:   "email,bill_address_attributes,use_billing",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// PermittedAttributes splits PermittedAttrs into the attribute names that
// PayPal supplied data is allowed to update on an order.
func (c Config) PermittedAttributes() []string {
	return splitList(c.PermittedAttrs)
}

// Origins returns the configured CORS origins.
func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// Validate checks the options the service cannot run without. An empty origin
// list would let rs/cors accept every origin.
func (c Config) Validate() error {
	if len(c.Origins()) == 0 {
		return errors.New("ALLOWED_ORIGINS must list at least one storefront origin")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
