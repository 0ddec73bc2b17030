package pipeline

import (
	"fmt"

	"zerodte/internal/models"
)

// Validate performs the last schema and null-safety check before a batch is
// persisted. It never panics or returns an error: a false result means
// "drop this batch", and the reason string is for the caller's log line.
// An empty batch fails closed.
func Validate(records []models.OptionRecord) (bool, string) {
	if len(records) == 0 {
		return false, "empty record set"
	}
	for i := range records {
		r := &records[i]
		if r.Strike.Sign() <= 0 {
			return false, fmt.Sprintf("row %d: strike must be > 0", i)
		}
		if r.OpenInterest < 0 {
			return false, fmt.Sprintf("row %d: open_interest must be >= 0", i)
		}
		if r.OptionType != models.OptionTypeCall && r.OptionType != models.OptionTypePut {
			return false, fmt.Sprintf("row %d: invalid option_type %q", i, r.OptionType)
		}
		if r.ExpirationDate.IsZero() {
			return false, fmt.Sprintf("row %d: missing expiration_date", i)
		}
		if r.StockPrice.Sign() <= 0 {
			return false, fmt.Sprintf("row %d: stock_price must be > 0", i)
		}
		if r.Timestamp.IsZero() {
			return false, fmt.Sprintf("row %d: missing timestamp", i)
		}
		if r.Ticker == "" {
			return false, fmt.Sprintf("row %d: missing ticker", i)
		}
	}
	return true, ""
}
