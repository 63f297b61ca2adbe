package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FG-IT/spree-paypal-express/config"
	"github.com/FG-IT/spree-paypal-express/models"
	"github.com/FG-IT/spree-paypal-express/normalizer"
	"github.com/plutov/paypal/v4"
)

const ordersPath = "/v2/checkout/orders"

var client *SDKClient

// GetPayPalClient returns the PayPal client for the configured environment,
// creating it and fetching an access token on first use
func GetPayPalClient(cfg config.Config) (*SDKClient, error) {
	if client != nil {
		return client, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}

	client = NewSDKClient(c)
	return client, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}

// SDKClient implements PayPalSDK on top of the PayPal SDK. Orders are sent as
// our own request types and responses are returned as normalized nodes.
type SDKClient struct {
	sdk *paypal.Client
}

// NewSDKClient wraps an authenticated PayPal SDK client
func NewSDKClient(sdk *paypal.Client) *SDKClient {
	return &SDKClient{sdk: sdk}
}

// GetOrder fetches a PayPal order by id
func (s *SDKClient) GetOrder(ctx context.Context, orderID string) (normalizer.Node, error) {
	req, err := s.sdk.NewRequest(ctx, http.MethodGet, s.orderURL(orderID), nil)
	if err != nil {
		return normalizer.Node{}, err
	}
	return s.send(req)
}

// CreateOrder creates a PayPal order
func (s *SDKClient) CreateOrder(ctx context.Context, request models.OutgoingPayPalOrderRequest) (normalizer.Node, error) {
	req, err := s.sdk.NewRequest(ctx, http.MethodPost, s.sdk.APIBase+ordersPath, request)
	if err != nil {
		return normalizer.Node{}, err
	}
	return s.send(req)
}

// PatchOrder applies JSON Patch operations to a PayPal order
func (s *SDKClient) PatchOrder(ctx context.Context, orderID string, operations []models.PatchOperation) error {
	req, err := s.sdk.NewRequest(ctx, http.MethodPatch, s.orderURL(orderID), operations)
	if err != nil {
		return err
	}
	return s.sdk.SendWithAuth(req, nil)
}

// CaptureOrder captures the payment of an approved PayPal order
func (s *SDKClient) CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error) {
	return s.sdk.CaptureOrder(ctx, orderID, captureOrderRequest)
}

func (s *SDKClient) orderURL(orderID string) string {
	return fmt.Sprintf("%s%s/%s", s.sdk.APIBase, ordersPath, orderID)
}

func (s *SDKClient) send(req *http.Request) (normalizer.Node, error) {
	var raw json.RawMessage
	if err := s.sdk.SendWithAuth(req, &raw); err != nil {
		return normalizer.Node{}, err
	}
	return normalizer.FromJSON(raw)
}
