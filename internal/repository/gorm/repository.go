package gormrepository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"zerodte/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AppendOptionRecords(ctx context.Context, records []models.OptionRecord) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if len(records) == 0 {
		return 0, nil
	}
	// The 0DTE flag is derived here, at the last moment before the insert,
	// from the two fields it depends on.
	for i := range records {
		records[i].Is0DTE = records[i].ComputeIs0DTE()
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&records, 500).Error
	})
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func (s *Store) LatestByTicker(ctx context.Context, ticker string) ([]models.OptionRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	ticker = normalizeTicker(ticker)
	sub := s.db.Model(&models.OptionRecord{}).
		Select("MAX(timestamp)").
		Where("ticker = ?", ticker)
	var items []models.OptionRecord
	err := s.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Where("timestamp = (?)", sub).
		Order("strike asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ByTickerAndDate(ctx context.Context, ticker string, day *time.Time) ([]models.OptionRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.OptionRecord{}).
		Where("ticker = ?", normalizeTicker(ticker))
	if day != nil && !day.IsZero() {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where("timestamp >= ? AND timestamp < ?", start, start.AddDate(0, 0, 1))
	}
	var items []models.OptionRecord
	if err := query.Order("timestamp asc, strike asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Historical(ctx context.Context, ticker string, windowDays int) ([]models.OptionRecord, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if windowDays <= 0 {
		windowDays = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	var items []models.OptionRecord
	err := s.db.WithContext(ctx).
		Where("ticker = ?", normalizeTicker(ticker)).
		Where("timestamp >= ?", since).
		Order("timestamp asc, expiration_date asc, strike asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertRawSnapshot(ctx context.Context, item *models.RawChainSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListTickers(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var tickers []string
	err := s.db.WithContext(ctx).
		Model(&models.OptionRecord{}).
		Distinct("ticker").
		Order("ticker asc").
		Pluck("ticker", &tickers).Error
	if err != nil {
		return nil, err
	}
	return tickers, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
