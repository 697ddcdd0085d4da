package payments

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeProvider implements Provider against the Stripe API.  Amounts are
// integer minor units (cents); callers are responsible for the conversion
// from decimal fees.
type StripeProvider struct {
	key string
}

// NewStripe returns a StripeProvider using the given secret key.  The key
// is installed process-wide, matching how the stripe client binds its
// credential.
func NewStripe(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{key: secretKey}
}

func (s *StripeProvider) Name() string { return "stripe" }

// CreateIntent creates a card PaymentIntent and returns its client secret.
func (s *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if s.key == "" {
		return "", errors.New("stripe: secret key not configured")
	}
	if amountCents <= 0 {
		return "", errors.New("stripe: amount must be positive")
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
