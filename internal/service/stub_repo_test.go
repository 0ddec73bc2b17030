package service

import (
	"context"
	"sort"
	"time"

	"zerodte/internal/models"
	"zerodte/internal/repository"
)

// stubRepo is an in-memory Repository used by the service tests. It honors
// the append-only contract: AppendOptionRecords only ever grows rows.
type stubRepo struct {
	rows      []models.OptionRecord
	raws      []*models.RawChainSnapshot
	batches   int
	pingErr   error
	appendErr error
}

var _ repository.Repository = (*stubRepo)(nil)

func (r *stubRepo) AppendOptionRecords(_ context.Context, records []models.OptionRecord) (int64, error) {
	if r.appendErr != nil {
		return 0, r.appendErr
	}
	if len(records) == 0 {
		return 0, nil
	}
	for i := range records {
		records[i].Is0DTE = records[i].ComputeIs0DTE()
	}
	r.rows = append(r.rows, records...)
	r.batches++
	return int64(len(records)), nil
}

func (r *stubRepo) LatestByTicker(_ context.Context, ticker string) ([]models.OptionRecord, error) {
	var max time.Time
	for i := range r.rows {
		if r.rows[i].Ticker == ticker && r.rows[i].Timestamp.After(max) {
			max = r.rows[i].Timestamp
		}
	}
	var out []models.OptionRecord
	for i := range r.rows {
		if r.rows[i].Ticker == ticker && r.rows[i].Timestamp.Equal(max) {
			out = append(out, r.rows[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Strike.Cmp(out[j].Strike) < 0 })
	return out, nil
}

func (r *stubRepo) ByTickerAndDate(_ context.Context, ticker string, day *time.Time) ([]models.OptionRecord, error) {
	var out []models.OptionRecord
	for i := range r.rows {
		row := r.rows[i]
		if row.Ticker != ticker {
			continue
		}
		if day != nil {
			dy, dm, dd := day.UTC().Date()
			ty, tm, td := row.Timestamp.UTC().Date()
			if dy != ty || dm != tm || dd != td {
				continue
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *stubRepo) Historical(_ context.Context, ticker string, windowDays int) ([]models.OptionRecord, error) {
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	var out []models.OptionRecord
	for i := range r.rows {
		if r.rows[i].Ticker == ticker && !r.rows[i].Timestamp.Before(since) {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func (r *stubRepo) InsertRawSnapshot(_ context.Context, item *models.RawChainSnapshot) error {
	r.raws = append(r.raws, item)
	return nil
}

func (r *stubRepo) ListTickers(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for i := range r.rows {
		if !seen[r.rows[i].Ticker] {
			seen[r.rows[i].Ticker] = true
			out = append(out, r.rows[i].Ticker)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubRepo) Ping(_ context.Context) error {
	return r.pingErr
}
