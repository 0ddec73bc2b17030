package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"zerodte/internal/models"
	"zerodte/internal/repository"
)

// ChainQueryService serves the read paths over persisted snapshots.
type ChainQueryService struct {
	Repo repository.Repository
}

func (s *ChainQueryService) Latest(ctx context.Context, ticker string) ([]models.OptionRecord, error) {
	return s.Repo.LatestByTicker(ctx, ticker)
}

func (s *ChainQueryService) ByDate(ctx context.Context, ticker string, day *time.Time) ([]models.OptionRecord, error) {
	return s.Repo.ByTickerAndDate(ctx, ticker, day)
}

func (s *ChainQueryService) Historical(ctx context.Context, ticker string, windowDays int) ([]models.OptionRecord, error) {
	return s.Repo.Historical(ctx, ticker, windowDays)
}

func (s *ChainQueryService) Tickers(ctx context.Context) ([]string, error) {
	return s.Repo.ListTickers(ctx)
}

// ChainSummary aggregates one snapshot batch per side.
type ChainSummary struct {
	Ticker           string           `json:"ticker"`
	Timestamp        time.Time        `json:"timestamp"`
	ExpirationDate   time.Time        `json:"expiration_date"`
	StockPrice       decimal.Decimal  `json:"stock_price"`
	Is0DTE           bool             `json:"is_0dte"`
	TotalRecords     int              `json:"total_records"`
	CallContracts    int              `json:"call_contracts"`
	PutContracts     int              `json:"put_contracts"`
	CallOpenInterest int64            `json:"call_open_interest"`
	PutOpenInterest  int64            `json:"put_open_interest"`
	PutCallOIRatio   *float64         `json:"put_call_oi_ratio,omitempty"`
	MaxCallOIStrike  *decimal.Decimal `json:"max_call_oi_strike,omitempty"`
	MaxPutOIStrike   *decimal.Decimal `json:"max_put_oi_strike,omitempty"`
}

// Summary aggregates the most recent batch for the ticker, optionally
// within one calendar day. Returns (nil, nil) when no rows exist: the
// caller maps that to a not-found result, not an error.
func (s *ChainQueryService) Summary(ctx context.Context, ticker string, day *time.Time) (*ChainSummary, error) {
	var (
		records []models.OptionRecord
		err     error
	)
	if day != nil {
		records, err = s.Repo.ByTickerAndDate(ctx, ticker, day)
	} else {
		records, err = s.Repo.LatestByTicker(ctx, ticker)
	}
	if err != nil {
		return nil, err
	}
	records = latestBatch(records)
	if len(records) == 0 {
		return nil, nil
	}

	summary := &ChainSummary{
		Ticker:         records[0].Ticker,
		Timestamp:      records[0].Timestamp,
		ExpirationDate: records[0].ExpirationDate,
		StockPrice:     records[0].StockPrice,
		Is0DTE:         records[0].Is0DTE,
		TotalRecords:   len(records),
	}
	var maxCallOI, maxPutOI int64 = -1, -1
	for i := range records {
		r := &records[i]
		switch r.OptionType {
		case models.OptionTypeCall:
			summary.CallContracts++
			summary.CallOpenInterest += r.OpenInterest
			if r.OpenInterest > maxCallOI {
				maxCallOI = r.OpenInterest
				strike := r.Strike
				summary.MaxCallOIStrike = &strike
			}
		case models.OptionTypePut:
			summary.PutContracts++
			summary.PutOpenInterest += r.OpenInterest
			if r.OpenInterest > maxPutOI {
				maxPutOI = r.OpenInterest
				strike := r.Strike
				summary.MaxPutOIStrike = &strike
			}
		}
	}
	if summary.CallOpenInterest > 0 {
		ratio := float64(summary.PutOpenInterest) / float64(summary.CallOpenInterest)
		summary.PutCallOIRatio = &ratio
	}
	return summary, nil
}

// latestBatch keeps only the rows sharing the maximum timestamp, so a
// day-filtered result collapses to its final snapshot.
func latestBatch(records []models.OptionRecord) []models.OptionRecord {
	if len(records) == 0 {
		return records
	}
	var max time.Time
	for i := range records {
		if records[i].Timestamp.After(max) {
			max = records[i].Timestamp
		}
	}
	out := records[:0:0]
	for i := range records {
		if records[i].Timestamp.Equal(max) {
			out = append(out, records[i])
		}
	}
	return out
}
