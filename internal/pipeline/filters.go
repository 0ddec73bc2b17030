package pipeline

import (
	"github.com/shopspring/decimal"

	"zerodte/internal/models"
)

// FilterByStrikeRange keeps records with low <= strike <= high, preserving
// input order.
func FilterByStrikeRange(records []models.OptionRecord, low, high decimal.Decimal) []models.OptionRecord {
	out := make([]models.OptionRecord, 0, len(records))
	for _, r := range records {
		if r.Strike.Cmp(low) >= 0 && r.Strike.Cmp(high) <= 0 {
			out = append(out, r)
		}
	}
	return out
}

// AtTheMoney keeps records whose strike lies within tolerance of the
// underlying: |strike - stock_price| / stock_price <= tolerance.
func AtTheMoney(records []models.OptionRecord, tolerance decimal.Decimal) []models.OptionRecord {
	out := make([]models.OptionRecord, 0, len(records))
	for _, r := range records {
		if r.StockPrice.Sign() <= 0 {
			continue
		}
		diff := r.Strike.Sub(r.StockPrice).Abs()
		if diff.Cmp(r.StockPrice.Mul(tolerance)) <= 0 {
			out = append(out, r)
		}
	}
	return out
}
