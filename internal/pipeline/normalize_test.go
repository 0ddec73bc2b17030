package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"zerodte/internal/client/yahoo"
	"zerodte/internal/models"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func row(strike float64, oi int64) yahoo.ChainRow {
	return yahoo.ChainRow{Strike: f64(strike), OpenInterest: i64(oi)}
}

var (
	testExp   = time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	testTS    = time.Date(2025, 6, 13, 15, 30, 0, 0, time.UTC)
	testPrice = decimal.NewFromInt(110)
)

func TestNormalize_TagsAndOrder(t *testing.T) {
	calls := []yahoo.ChainRow{row(100, 10), row(105, 20)}
	puts := []yahoo.ChainRow{row(110, 30)}

	records, diag, err := Normalize(calls, puts, testExp, "spy", testPrice, testTS)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(diag.SkippedSides) != 0 {
		t.Fatalf("unexpected skipped sides: %v", diag.SkippedSides)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Calls precede puts, preserving row order within each side.
	wantTypes := []string{models.OptionTypeCall, models.OptionTypeCall, models.OptionTypePut}
	for i, r := range records {
		if r.OptionType != wantTypes[i] {
			t.Fatalf("record %d: option_type=%q, want %q", i, r.OptionType, wantTypes[i])
		}
		if r.Ticker != "SPY" {
			t.Fatalf("record %d: ticker=%q, want SPY", i, r.Ticker)
		}
		if !r.ExpirationDate.Equal(testExp) {
			t.Fatalf("record %d: expiration=%v", i, r.ExpirationDate)
		}
		if !r.Timestamp.Equal(testTS) {
			t.Fatalf("record %d: timestamp differs from batch timestamp", i)
		}
		if !r.StockPrice.Equal(testPrice) {
			t.Fatalf("record %d: stock_price=%s", i, r.StockPrice)
		}
	}
	if !records[0].Strike.Equal(decimal.NewFromInt(100)) || records[0].OpenInterest != 10 {
		t.Fatalf("first record mismatch: %+v", records[0])
	}
}

func TestNormalize_SkipsSideMissingMandatoryField(t *testing.T) {
	calls := []yahoo.ChainRow{{Strike: f64(100), OpenInterest: nil}}
	puts := []yahoo.ChainRow{row(110, 30)}

	records, diag, err := Normalize(calls, puts, testExp, "SPY", testPrice, testTS)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(diag.SkippedSides) != 1 || diag.SkippedSides[0] != models.OptionTypeCall {
		t.Fatalf("diag=%v, want skipped call side", diag.SkippedSides)
	}
	if len(records) != 1 || records[0].OptionType != models.OptionTypePut {
		t.Fatalf("records=%v, want the put row only", records)
	}
}

func TestNormalize_SkipsEmptySide(t *testing.T) {
	records, diag, err := Normalize(nil, []yahoo.ChainRow{row(110, 30)}, testExp, "SPY", testPrice, testTS)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(diag.SkippedSides) != 1 || diag.SkippedSides[0] != models.OptionTypeCall {
		t.Fatalf("diag=%v", diag.SkippedSides)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestNormalize_EmptyChain(t *testing.T) {
	_, diag, err := Normalize(nil, nil, testExp, "SPY", testPrice, testTS)
	if !errors.Is(err, ErrEmptyChain) {
		t.Fatalf("err=%v, want ErrEmptyChain", err)
	}
	if len(diag.SkippedSides) != 2 {
		t.Fatalf("diag=%v, want both sides skipped", diag.SkippedSides)
	}
}

func TestNormalize_CarriesEnrichment(t *testing.T) {
	calls := []yahoo.ChainRow{{
		Strike:            f64(100),
		OpenInterest:      i64(10),
		Volume:            i64(55),
		Bid:               f64(1.25),
		Ask:               f64(1.35),
		LastPrice:         f64(1.30),
		ImpliedVolatility: f64(0.42),
	}}
	records, _, err := Normalize(calls, nil, testExp, "SPY", testPrice, testTS)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	r := records[0]
	if r.Volume == nil || *r.Volume != 55 {
		t.Fatalf("volume=%v", r.Volume)
	}
	if r.Bid == nil || !r.Bid.Equal(decimal.NewFromFloat(1.25)) {
		t.Fatalf("bid=%v", r.Bid)
	}
	if r.ImpliedVolatility == nil || *r.ImpliedVolatility != 0.42 {
		t.Fatalf("iv=%v", r.ImpliedVolatility)
	}
	if r.TimeToExpiryDays == nil {
		t.Fatalf("time_to_expiry_days missing")
	}
	// Expiration is before the intraday batch timestamp here, so the
	// continuous time-to-expiry is negative but finite.
	if *r.TimeToExpiryDays > 0 {
		t.Fatalf("tte=%v, want <= 0 for same-day expiry fetched intraday", *r.TimeToExpiryDays)
	}
}
