package usecase

import (
	"time"

	"github.com/avelier/productgraph/internal/model"
	"github.com/avelier/productgraph/internal/schema"
)

const dateLayout = "2006-01-02"

// buildOffer computes the commerce sub-entity for one purchasable unit. The
// price is a pass-through of whatever the catalog displays; a missing price
// still yields an offer with a zero value, never a rejection.
func (uc *groupAggregator) buildOffer(price float64, stock model.StockStatus, saleEnd *time.Time, url, description string) *schema.Offer {
	return &schema.Offer{
		Type:            schema.TypeOffer,
		Description:     description,
		Price:           price,
		PriceCurrency:   uc.cfg.Currency,
		Availability:    availability(stock),
		ItemCondition:   schema.NewCondition,
		PriceValidUntil: uc.priceValidUntil(saleEnd),
		URL:             url,
	}
}

func availability(stock model.StockStatus) string {
	if stock == model.OutOfStock {
		return schema.OutOfStock
	}
	return schema.InStock
}

// priceValidUntil prefers the catalog's sale-end date. Without one it falls
// back to December 31 of next calendar year, computed against the injected
// clock on every call so the default rolls over with the wall clock instead
// of going stale.
func (uc *groupAggregator) priceValidUntil(saleEnd *time.Time) string {
	if saleEnd != nil && !saleEnd.IsZero() {
		return saleEnd.Format(dateLayout)
	}
	yearEnd := time.Date(uc.now().Year()+1, time.December, 31, 0, 0, 0, 0, time.Local)
	return yearEnd.Format(dateLayout)
}
