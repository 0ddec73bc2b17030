package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"zerodte/internal/models"
)

func validRecord() models.OptionRecord {
	return models.OptionRecord{
		Ticker:         "SPY",
		Strike:         decimal.NewFromInt(100),
		OpenInterest:   500,
		ExpirationDate: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		OptionType:     models.OptionTypeCall,
		StockPrice:     decimal.NewFromInt(110),
		Timestamp:      time.Date(2025, 6, 13, 15, 30, 0, 0, time.UTC),
	}
}

func TestValidate_OK(t *testing.T) {
	ok, reason := Validate([]models.OptionRecord{validRecord()})
	if !ok {
		t.Fatalf("expected valid, got reason %q", reason)
	}
}

func TestValidate_EmptySetFailsClosed(t *testing.T) {
	if ok, _ := Validate(nil); ok {
		t.Fatalf("empty record set must fail validation")
	}
}

func TestValidate_CriticalFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.OptionRecord)
	}{
		{"zero strike", func(r *models.OptionRecord) { r.Strike = decimal.Zero }},
		{"negative strike", func(r *models.OptionRecord) { r.Strike = decimal.NewFromInt(-5) }},
		{"negative open interest", func(r *models.OptionRecord) { r.OpenInterest = -1 }},
		{"bad option type", func(r *models.OptionRecord) { r.OptionType = "straddle" }},
		{"missing option type", func(r *models.OptionRecord) { r.OptionType = "" }},
		{"missing expiration", func(r *models.OptionRecord) { r.ExpirationDate = time.Time{} }},
		{"zero stock price", func(r *models.OptionRecord) { r.StockPrice = decimal.Zero }},
		{"missing timestamp", func(r *models.OptionRecord) { r.Timestamp = time.Time{} }},
		{"missing ticker", func(r *models.OptionRecord) { r.Ticker = "" }},
	}
	for _, tt := range tests {
		good := validRecord()
		bad := validRecord()
		tt.mutate(&bad)
		// One bad row poisons the whole batch.
		ok, reason := Validate([]models.OptionRecord{good, bad})
		if ok {
			t.Fatalf("%s: expected validation failure", tt.name)
		}
		if reason == "" {
			t.Fatalf("%s: expected a reason", tt.name)
		}
	}
}
