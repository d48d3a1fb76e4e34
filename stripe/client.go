package stripe

import (
	"context"
	"encoding/json"

	"github.com/stripe/stripe-go/v74/client"

	"github.com/ummah-orphan-care/donations/secretmanager"
)

type Client struct {
	*client.API
	webhookSignKey string
}

type stripeSecret struct {
	APIKey         string `json:"api_key"`
	WebhookSignKey string `json:"webhook_sign_key"`
}

func NewClient(ctx context.Context) (*Client, error) {
	secret, err := getStripeSecret(ctx)
	if err != nil {
		return nil, err
	}

	// Init stripe client
	var stripeClient client.API

	stripeClient.Init(secret.APIKey, nil)

	return &Client{
		&stripeClient,
		secret.WebhookSignKey,
	}, nil
}

func getStripeSecret(ctx context.Context) (stripeSecret, error) {
	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripe)
	if err != nil {
		return stripeSecret{}, err
	}

	var secret stripeSecret
	if err := json.Unmarshal(data, &secret); err != nil {
		return stripeSecret{}, err
	}

	return secret, nil
}

func (c *Client) WebhookSignKey() string {
	return c.webhookSignKey
}
