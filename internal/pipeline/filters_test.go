package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"

	"zerodte/internal/models"
)

func recordsWithStrikes(stockPrice int64, strikes ...int64) []models.OptionRecord {
	out := make([]models.OptionRecord, 0, len(strikes))
	for _, s := range strikes {
		out = append(out, models.OptionRecord{
			Strike:     decimal.NewFromInt(s),
			StockPrice: decimal.NewFromInt(stockPrice),
		})
	}
	return out
}

func strikesOf(records []models.OptionRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Strike.String())
	}
	return out
}

func assertStrikes(t *testing.T, got []models.OptionRecord, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", strikesOf(got), want)
	}
	for i, s := range want {
		if got[i].Strike.String() != s {
			t.Fatalf("got %v, want %v", strikesOf(got), want)
		}
	}
}

func TestFilterByStrikeRange_InclusiveBounds(t *testing.T) {
	records := recordsWithStrikes(110, 100, 105, 110, 115, 120)
	got := FilterByStrikeRange(records, decimal.NewFromInt(105), decimal.NewFromInt(115))
	assertStrikes(t, got, "105", "110", "115")
}

func TestAtTheMoney_Tolerance(t *testing.T) {
	records := recordsWithStrikes(110, 100, 105, 110, 115, 120)

	// |105-110|/110 = 0.0455, |120-110|/110 = 0.0909.
	exact := AtTheMoney(records, decimal.NewFromFloat(0.04))
	assertStrikes(t, exact, "110")

	mid := AtTheMoney(records, decimal.NewFromFloat(0.05))
	assertStrikes(t, mid, "105", "110", "115")

	wide := AtTheMoney(records, decimal.NewFromFloat(0.10))
	assertStrikes(t, wide, "100", "105", "110", "115", "120")
}

func TestAtTheMoney_SkipsZeroUnderlying(t *testing.T) {
	records := []models.OptionRecord{{
		Strike:     decimal.NewFromInt(100),
		StockPrice: decimal.Zero,
	}}
	if got := AtTheMoney(records, decimal.NewFromFloat(0.10)); len(got) != 0 {
		t.Fatalf("got %v, want empty for zero stock price", strikesOf(got))
	}
}
