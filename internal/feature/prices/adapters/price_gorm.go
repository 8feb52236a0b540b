// Package adapters provides the GORM-backed persistence for daily prices.
package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_pipeline/internal/feature/prices/domain"
	"stock_pipeline/internal/feature/prices/domain/entity"
	"stock_pipeline/internal/feature/prices/usecase"
)

type priceGorm struct {
	db  *gorm.DB
	log *slog.Logger
}

var _ usecase.PriceRepository = (*priceGorm)(nil)

// NewPriceRepository creates a PriceRepository backed by db. A nil logger
// falls back to slog.Default.
func NewPriceRepository(db *gorm.DB, log *slog.Logger) *priceGorm {
	if log == nil {
		log = slog.Default()
	}
	return &priceGorm{db: db, log: log}
}

// DailyPriceModel is the persistence model for the daily_stock_prices table.
// The composite primary key (symbol, trade_date) is the uniqueness constraint
// the upsert resolves against.
type DailyPriceModel struct {
	Symbol      string    `gorm:"primaryKey"`
	TradeDate   time.Time `gorm:"primaryKey;type:date"`
	Open        float64   `gorm:"type:numeric(18,6)"`
	High        float64   `gorm:"type:numeric(18,6)"`
	Low         float64   `gorm:"type:numeric(18,6)"`
	Close       float64   `gorm:"type:numeric(18,6)"`
	Volume      int64     `gorm:"not null;default:0"`
	LastUpdated time.Time `gorm:"not null"`
}

func (DailyPriceModel) TableName() string {
	return "daily_stock_prices"
}

func toModel(p entity.DailyPrice, now time.Time) DailyPriceModel {
	return DailyPriceModel{
		Symbol:      p.Symbol,
		TradeDate:   p.TradeDate,
		Open:        p.Open,
		High:        p.High,
		Low:         p.Low,
		Close:       p.Close,
		Volume:      p.Volume,
		LastUpdated: now,
	}
}

// EnsureSchema idempotently creates the daily_stock_prices table. Safe to
// call on every run; it is a no-op when the table already exists. There is
// no migration logic beyond that.
func (r *priceGorm) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&DailyPriceModel{}); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", domain.ErrStorage, err)
	}
	return nil
}

// UpsertBatch merges all rows in a single transaction: new (symbol, trade_date)
// pairs are inserted, existing pairs have every value column overwritten and
// last_updated refreshed. All rows commit together or the whole transaction
// rolls back. An empty batch is a logged no-op, not an error.
func (r *priceGorm) UpsertBatch(ctx context.Context, prices []entity.DailyPrice) error {
	if len(prices) == 0 {
		r.log.Info("no rows to upsert")
		return nil
	}

	now := time.Now().UTC()
	ms := make([]DailyPriceModel, 0, len(prices))
	for _, p := range prices {
		ms = append(ms, toModel(p, now))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}, {Name: "trade_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "last_updated"}),
		}).Create(&ms).Error
	})
	if err != nil {
		return fmt.Errorf("%w: upsert %d rows: %v", domain.ErrStorage, len(ms), err)
	}

	r.log.Info("upserted daily prices", "rows", len(ms))
	return nil
}
