package queries

import (
	"context"
	"time"

	"stay-ledger/internal/domain/pricing"

	"github.com/google/uuid"
)

type QuoteParams struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Selections []pricing.Selection
}

type PricingQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*pricing.Breakdown, error)
}

// Calculator is satisfied by *pricing.Calculator.
type Calculator interface {
	Calculate(ctx context.Context, req pricing.Request) (*pricing.Breakdown, error)
}

type pricingQueriesImpl struct {
	calculator Calculator
}

func NewPricingQueries(calculator Calculator) PricingQueries {
	return &pricingQueriesImpl{calculator: calculator}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*pricing.Breakdown, error) {
	stay, err := pricing.NewStay(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	return q.calculator.Calculate(ctx, pricing.Request{
		PropertyID: params.PropertyID,
		Stay:       stay,
		Selections: params.Selections,
	})
}
