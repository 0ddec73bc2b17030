package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"zerodte/internal/client/yahoo"
	"zerodte/internal/config"
	"zerodte/internal/models"
	"zerodte/internal/pipeline"
	"zerodte/internal/repository"
)

// ErrStoreUnavailable aborts a whole run: without persistence no ticker can
// make progress, so the run is not retried ticker by ticker.
var ErrStoreUnavailable = errors.New("store unreachable")

// ChainProvider is the market-data collaborator: synchronous, may fail or
// come back empty, never retried within a run.
type ChainProvider interface {
	GetChain(ctx context.Context, ticker string) (*yahoo.ChainSnapshot, error)
	GetChainForExpiration(ctx context.Context, ticker string, exp time.Time) (*yahoo.ChainSnapshot, error)
}

// CollectorService runs one ingestion pass per scheduled tick: gate check,
// then per ticker fetch -> select expiration -> normalize -> validate ->
// append. Ticker failures are isolated; only store connectivity is fatal
// to the run.
type CollectorService struct {
	Repo     repository.Repository
	Provider ChainProvider
	Logger   *zap.Logger
	Config   config.CollectorConfig

	loc    *time.Location
	target pipeline.ClockTime

	// now is swappable in tests.
	now func() time.Time
}

// Init resolves the exchange time zone and target time from config. Must be
// called once before the service is scheduled.
func (s *CollectorService) Init() error {
	loc, err := time.LoadLocation(s.Config.ExchangeTimezone)
	if err != nil {
		return fmt.Errorf("load exchange timezone %q: %w", s.Config.ExchangeTimezone, err)
	}
	target, err := pipeline.ParseClockTime(s.Config.TargetTime)
	if err != nil {
		return fmt.Errorf("parse target time: %w", err)
	}
	s.loc = loc
	s.target = target
	return nil
}

func (s *CollectorService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// RunResult summarizes one collection run.
type RunResult struct {
	Collected map[string]int64  `json:"collected"`
	Failed    map[string]string `json:"failed,omitempty"`
	Rows      int64             `json:"rows"`
}

// RunScheduled is the cron entry point. It consults the collection gate in
// exchange-local time and does nothing outside the window.
func (s *CollectorService) RunScheduled(ctx context.Context) {
	nowLocal := s.clock().In(s.loc)
	if !pipeline.ShouldCollect(nowLocal, s.target, s.Config.ToleranceMinutes) {
		s.Logger.Debug("outside collection window, skipping",
			zap.Time("now_local", nowLocal),
			zap.String("target", s.target.String()),
		)
		return
	}
	result, err := s.CollectAll(ctx)
	if err != nil {
		s.Logger.Error("collection run aborted", zap.Error(err))
		return
	}
	s.Logger.Info("collection run finished",
		zap.Int64("rows", result.Rows),
		zap.Int("tickers_ok", len(result.Collected)),
		zap.Int("tickers_failed", len(result.Failed)),
	)
}

// CollectAll processes every configured ticker. A failing ticker is logged
// and skipped, the run continues; an unreachable store aborts the run.
func (s *CollectorService) CollectAll(ctx context.Context) (RunResult, error) {
	result := RunResult{
		Collected: map[string]int64{},
		Failed:    map[string]string{},
	}
	if err := s.Repo.Ping(ctx); err != nil {
		return result, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	for _, ticker := range s.Config.Tickers {
		n, err := s.CollectTicker(ctx, ticker)
		if err != nil {
			s.Logger.Warn("ticker collection failed",
				zap.String("ticker", ticker),
				zap.Error(err),
			)
			result.Failed[ticker] = err.Error()
			continue
		}
		result.Collected[ticker] = n
		result.Rows += n
	}
	return result, nil
}

// CollectTicker runs the full pipeline for one ticker and returns the number
// of rows persisted.
func (s *CollectorService) CollectTicker(ctx context.Context, ticker string) (int64, error) {
	snap, err := s.Provider.GetChain(ctx, ticker)
	if err != nil {
		return 0, fmt.Errorf("fetch chain: %w", err)
	}
	if len(snap.Expirations) == 0 {
		return 0, pipeline.ErrNoExpirations
	}

	today := s.clock().In(s.loc)
	exp, err := pipeline.SelectExpiration(snap.Expirations, today)
	if err != nil {
		return 0, err
	}
	if !sameDay(exp, snap.ExpirationDate) {
		snap, err = s.Provider.GetChainForExpiration(ctx, ticker, exp)
		if err != nil {
			return 0, fmt.Errorf("fetch chain for %s: %w", exp.Format("2006-01-02"), err)
		}
	}

	// One timestamp per batch: every row of this ingestion shares it.
	batchTS := s.clock().UTC()

	records, diag, err := pipeline.Normalize(snap.Calls, snap.Puts, exp, ticker, snap.StockPrice, batchTS)
	for _, side := range diag.SkippedSides {
		s.Logger.Warn("chain side skipped",
			zap.String("ticker", ticker),
			zap.String("side", side),
		)
	}
	if err != nil {
		return 0, err
	}

	if ok, reason := pipeline.Validate(records); !ok {
		s.Logger.Error("batch validation failed",
			zap.String("ticker", ticker),
			zap.String("reason", reason),
		)
		return 0, fmt.Errorf("%w: %s", pipeline.ErrValidationFailed, reason)
	}

	n, err := s.Repo.AppendOptionRecords(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("append batch: %w", err)
	}

	if s.Config.StoreRawSnapshots && len(snap.Raw) > 0 {
		raw := &models.RawChainSnapshot{
			Ticker:         records[0].Ticker,
			ExpirationDate: exp,
			FetchedAt:      batchTS,
			Payload:        datatypes.JSON(snap.Raw),
		}
		if err := s.Repo.InsertRawSnapshot(ctx, raw); err != nil {
			// Archive failure does not undo an already-persisted batch.
			s.Logger.Warn("raw snapshot archive failed",
				zap.String("ticker", ticker),
				zap.Error(err),
			)
		}
	}

	s.Logger.Info("chain batch persisted",
		zap.String("ticker", ticker),
		zap.Int64("rows", n),
		zap.Time("expiration", exp),
		zap.Bool("is_0dte", sameDay(exp, batchTS)),
	)
	return n, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
