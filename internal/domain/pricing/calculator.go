package pricing

import (
	"context"

	"stay-ledger/internal/domain/money"

	"github.com/google/uuid"
)

type AccommodationPricer interface {
	AccommodationPrice(ctx context.Context, propertyID uuid.UUID, stay Stay) (money.Money, error)
}

// ServiceCatalog returns the services it knows about; unknown ids are simply absent.
type ServiceCatalog interface {
	ServicesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Service, error)
}

type Request struct {
	PropertyID uuid.UUID
	Stay       Stay
	Selections []Selection
}

type Calculator struct {
	rates   AccommodationPricer
	catalog ServiceCatalog
}

func NewCalculator(rates AccommodationPricer, catalog ServiceCatalog) *Calculator {
	return &Calculator{rates: rates, catalog: catalog}
}

func (c *Calculator) Calculate(ctx context.Context, req Request) (*Breakdown, error) {
	accommodation, err := c.rates.AccommodationPrice(ctx, req.PropertyID, req.Stay)
	if err != nil {
		return nil, err
	}

	services := map[uuid.UUID]Service{}
	if ids := selectionIDs(req.Selections); len(ids) > 0 {
		services, err = c.catalog.ServicesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	return Combine(accommodation, req.Stay, services, req.Selections)
}

func selectionIDs(selections []Selection) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(selections))
	ids := make([]uuid.UUID, 0, len(selections))
	for _, s := range selections {
		if _, ok := seen[s.ServiceID]; ok {
			continue
		}
		seen[s.ServiceID] = struct{}{}
		ids = append(ids, s.ServiceID)
	}
	return ids
}
