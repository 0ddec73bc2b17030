package models

import (
	"time"

	"gorm.io/datatypes"
)

// RawChainSnapshot archives the unparsed provider payload for one fetch, so
// a bad normalization can be replayed against the original bytes.
type RawChainSnapshot struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Ticker         string         `gorm:"type:varchar(10);not null;index" json:"ticker"`
	ExpirationDate time.Time      `gorm:"type:timestamptz;not null" json:"expiration_date"`
	FetchedAt      time.Time      `gorm:"type:timestamptz;not null;index" json:"fetched_at"`
	Payload        datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt      time.Time      `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (RawChainSnapshot) TableName() string {
	return "raw_chain_snapshots"
}
