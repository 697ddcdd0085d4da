// Package stub provides a no-network payment provider for tests and local
// development without gateway credentials.
package stub

import (
	"context"
	"fmt"
)

// Provider fabricates deterministic client secrets.  It records the last
// requested amount so tests can assert on the cents conversion.
type Provider struct {
	LastAmountCents int64
	LastCurrency    string
	Err             error // returned from CreateIntent when set
}

func New() *Provider { return &Provider{} }

func (p *Provider) Name() string { return "stub" }

func (p *Provider) CreateIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	p.LastAmountCents = amountCents
	p.LastCurrency = currency
	return fmt.Sprintf("stub_secret_%d_%s", amountCents, currency), nil
}
