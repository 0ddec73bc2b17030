package repository

import (
	"context"
	"time"

	"zerodte/internal/models"
)

// Repository is the persistence surface for chain snapshots. Writes are
// append-only; none of the methods mutate existing rows.
type Repository interface {
	// AppendOptionRecords inserts the whole batch inside one transaction:
	// either every row lands or none do. An empty batch is a no-op, not an
	// error. Returns the number of rows inserted.
	AppendOptionRecords(ctx context.Context, records []models.OptionRecord) (int64, error)

	// LatestByTicker returns every record sharing the maximum timestamp for
	// the ticker, ordered by strike ascending.
	LatestByTicker(ctx context.Context, ticker string) ([]models.OptionRecord, error)

	// ByTickerAndDate returns all records for the ticker, optionally limited
	// to one calendar day of the collection timestamp, ordered by
	// (timestamp, strike).
	ByTickerAndDate(ctx context.Context, ticker string, day *time.Time) ([]models.OptionRecord, error)

	// Historical returns records with timestamp >= now - windowDays, ordered
	// by (timestamp, expiration_date, strike).
	Historical(ctx context.Context, ticker string, windowDays int) ([]models.OptionRecord, error)

	InsertRawSnapshot(ctx context.Context, item *models.RawChainSnapshot) error

	// ListTickers returns the distinct tickers present in the store.
	ListTickers(ctx context.Context) ([]string, error)

	// Ping reports whether the store is reachable. A failed ping aborts the
	// whole collection run since nothing can be persisted.
	Ping(ctx context.Context) error
}
