package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OptionTypeCall = "call"
	OptionTypePut  = "put"
)

// OptionRecord is one row of an ingested option-chain snapshot. Rows are
// append-only: the store never updates or deletes them, so every batch is an
// immutable snapshot keyed by its shared Timestamp.
type OptionRecord struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Ticker         string          `gorm:"type:varchar(10);not null;index:idx_option_records_ticker_expiration" json:"ticker"`
	Strike         decimal.Decimal `gorm:"type:numeric(20,10);not null;index:idx_option_records_strike" json:"strike"`
	OpenInterest   int64           `gorm:"not null" json:"open_interest"`
	ExpirationDate time.Time       `gorm:"type:timestamptz;not null;index:idx_option_records_ticker_expiration" json:"expiration_date"`
	OptionType     string          `gorm:"type:varchar(4);not null" json:"option_type"`
	StockPrice     decimal.Decimal `gorm:"type:numeric(20,10);not null" json:"stock_price"`
	Timestamp      time.Time       `gorm:"type:timestamptz;not null;index:idx_option_records_timestamp" json:"timestamp"`
	Is0DTE         bool            `gorm:"column:is_0dte;not null;index:idx_option_records_is_0dte" json:"is_0dte"`

	// Enrichment columns: only populated when the provider snapshot carries
	// them, nullable in the schema.
	Volume            *int64           `gorm:"" json:"volume,omitempty"`
	Bid               *decimal.Decimal `gorm:"type:numeric(20,10)" json:"bid,omitempty"`
	Ask               *decimal.Decimal `gorm:"type:numeric(20,10)" json:"ask,omitempty"`
	LastPrice         *decimal.Decimal `gorm:"type:numeric(20,10)" json:"last_price,omitempty"`
	ImpliedVolatility *float64         `gorm:"type:numeric(12,8)" json:"implied_volatility,omitempty"`
	TimeToExpiryDays  *float64         `gorm:"type:numeric(12,6)" json:"time_to_expiry_days,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (OptionRecord) TableName() string {
	return "option_records"
}

// ComputeIs0DTE derives the 0DTE flag from ExpirationDate and Timestamp.
// It is re-evaluated immediately before persistence so a stale stored value
// can never leak through.
func (r *OptionRecord) ComputeIs0DTE() bool {
	ey, em, ed := r.ExpirationDate.UTC().Date()
	ty, tm, td := r.Timestamp.UTC().Date()
	return ey == ty && em == tm && ed == td
}
