// Package usecase implements the fetch -> normalize -> upsert pipeline for
// daily stock prices.
package usecase

import (
	"context"
	"log/slog"

	"stock_pipeline/internal/feature/prices/domain/entity"
)

// MarketRepository fetches raw daily time-series data from the market-data API.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	FetchDailySeries(ctx context.Context, symbol string) (entity.RawTimeSeries, error)
}

// PriceRepository persists normalized daily prices.
type PriceRepository interface {
	EnsureSchema(ctx context.Context) error
	UpsertBatch(ctx context.Context, prices []entity.DailyPrice) error
}

// StoreConnector opens the price store for one run. The connection is
// acquired only after the fetch has produced data, and the returned release
// function runs on every exit path afterwards, success or failure.
type StoreConnector func(ctx context.Context) (PriceRepository, func(), error)

// PipelineUsecase runs one end-to-end ingest for a single symbol. It performs
// no internal error recovery: every stage failure is logged and returned
// unchanged, and the external scheduler owns the retry policy.
type PipelineUsecase struct {
	market  MarketRepository
	connect StoreConnector
	log     *slog.Logger
}

// NewPipelineUsecase creates a new PipelineUsecase. A nil logger falls back
// to slog.Default.
func NewPipelineUsecase(market MarketRepository, connect StoreConnector, log *slog.Logger) *PipelineUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &PipelineUsecase{market: market, connect: connect, log: log}
}

// Run executes fetch -> normalize -> connect -> ensure schema -> upsert
// sequentially. A run either completes end to end or surfaces the first stage
// error; there is no notion of partial success.
func (pu *PipelineUsecase) Run(ctx context.Context, symbol string) error {
	pu.log.Info("starting stock pipeline", "symbol", symbol)

	raw, err := pu.market.FetchDailySeries(ctx, symbol)
	if err != nil {
		pu.log.Error("failed to fetch daily series", "symbol", symbol, "error", err)
		return err
	}

	rows := Normalize(pu.log, symbol, raw)

	prices, release, err := pu.connect(ctx)
	if err != nil {
		pu.log.Error("failed to connect to price store", "error", err)
		return err
	}
	defer release()

	if err := prices.EnsureSchema(ctx); err != nil {
		pu.log.Error("failed to ensure price schema", "error", err)
		return err
	}

	if err := prices.UpsertBatch(ctx, rows); err != nil {
		pu.log.Error("failed to upsert daily prices", "symbol", symbol, "rows", len(rows), "error", err)
		return err
	}

	pu.log.Info("pipeline completed", "symbol", symbol, "rows", len(rows))
	return nil
}
