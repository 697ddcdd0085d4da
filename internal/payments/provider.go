// Package payments abstracts the external payment-authorization service.
// The backend only asks the gateway for a client secret and later records
// the result of a completed authorization; it never arbitrates payments
// itself.
package payments

import "context"

// Provider creates payment intents with an external gateway.
type Provider interface {
	Name() string

	// CreateIntent authorizes a charge of amountCents in the given currency
	// and returns the client secret the browser completes the payment with.
	CreateIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}
