package pipeline

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"zerodte/internal/client/yahoo"
	"zerodte/internal/models"
)

// Diagnostics reports what Normalize dropped without failing the batch.
type Diagnostics struct {
	// SkippedSides names chain sides ("call"/"put") dropped because they
	// were empty or missing a mandatory source field.
	SkippedSides []string
}

// Normalize converts raw call/put rows into OptionRecords. A side that is
// empty or missing strike/open-interest on any row is dropped whole and
// reported in Diagnostics; only when both sides drop does the batch fail
// with ErrEmptyChain. Calls precede puts in the output, and every record
// carries the same ticker, expiration, stock price and batch timestamp.
func Normalize(calls, puts []yahoo.ChainRow, expiration time.Time, ticker string, stockPrice decimal.Decimal, ts time.Time) ([]models.OptionRecord, Diagnostics, error) {
	var diag Diagnostics
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	records := make([]models.OptionRecord, 0, len(calls)+len(puts))
	for _, side := range []struct {
		optionType string
		rows       []yahoo.ChainRow
	}{
		{models.OptionTypeCall, calls},
		{models.OptionTypePut, puts},
	} {
		if !sideUsable(side.rows) {
			diag.SkippedSides = append(diag.SkippedSides, side.optionType)
			continue
		}
		for _, row := range side.rows {
			records = append(records, buildRecord(row, side.optionType, expiration, ticker, stockPrice, ts))
		}
	}

	if len(records) == 0 {
		return nil, diag, ErrEmptyChain
	}
	return records, diag, nil
}

// sideUsable mirrors the source-schema check: the side counts as usable only
// when it has rows and every row carries both mandatory fields.
func sideUsable(rows []yahoo.ChainRow) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if row.Strike == nil || row.OpenInterest == nil {
			return false
		}
	}
	return true
}

func buildRecord(row yahoo.ChainRow, optionType string, expiration time.Time, ticker string, stockPrice decimal.Decimal, ts time.Time) models.OptionRecord {
	tte := expiration.Sub(ts).Hours() / 24
	rec := models.OptionRecord{
		Ticker:           ticker,
		Strike:           decimal.NewFromFloat(*row.Strike),
		OpenInterest:     *row.OpenInterest,
		ExpirationDate:   expiration,
		OptionType:       optionType,
		StockPrice:       stockPrice,
		Timestamp:        ts,
		Volume:           row.Volume,
		TimeToExpiryDays: &tte,
	}
	if row.Bid != nil {
		bid := decimal.NewFromFloat(*row.Bid)
		rec.Bid = &bid
	}
	if row.Ask != nil {
		ask := decimal.NewFromFloat(*row.Ask)
		rec.Ask = &ask
	}
	if row.LastPrice != nil {
		last := decimal.NewFromFloat(*row.LastPrice)
		rec.LastPrice = &last
	}
	if row.ImpliedVolatility != nil {
		iv := *row.ImpliedVolatility
		rec.ImpliedVolatility = &iv
	}
	return rec
}
