package services

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Charger creates a payment with the external provider and returns its
// reference id. amount is in minor units (cents).
type Charger interface {
	Charge(ctx context.Context, amount int64, currency, idempotencyKey string) (string, error)
}

// StripeCharger creates Stripe PaymentIntents.
type StripeCharger struct {
	api *client.API
}

func NewStripeCharger(secretKey string) *StripeCharger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCharger{api: api}
}

func (c *StripeCharger) Charge(ctx context.Context, amount int64, currency, idempotencyKey string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ID, nil
}
