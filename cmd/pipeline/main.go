package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"stock_pipeline/internal/feature/prices/adapters"
	"stock_pipeline/internal/feature/prices/usecase"
	"stock_pipeline/internal/platform/db"
	"stock_pipeline/internal/platform/externalapi/alphavantage"
	platformhttp "stock_pipeline/internal/platform/http"
	"stock_pipeline/internal/shared/env"
)

const defaultSymbol = "MSFT"

// runTimeout bounds one full run. The workflow scheduler enforces its own
// task timeout on top of this.
const runTimeout = 5 * time.Minute

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

// run wires the pipeline together and executes one ingest. A non-nil return
// becomes a non-zero exit, which is how the scheduler sees a failed task.
func run(log *slog.Logger) error {
	symbol := env.GetDefault("STOCK_SYMBOL", defaultSymbol)

	apiCfg, err := alphavantage.LoadConfig()
	if err != nil {
		return err
	}
	dbCfg, err := db.LoadConfigFromEnv()
	if err != nil {
		return err
	}

	market := alphavantage.NewClient(apiCfg, platformhttp.NewHTTPClient(apiCfg.Timeout))

	// The store connection is opened per run, after the fetch has succeeded,
	// and released by the usecase on every exit path.
	connect := func(ctx context.Context) (usecase.PriceRepository, func(), error) {
		gdb, err := db.Open(db.BuildDSN(dbCfg), db.OpenPostgres)
		if err != nil {
			return nil, nil, err
		}
		release := func() {
			if err := db.Close(gdb); err != nil {
				log.Warn("failed to close database connection", "error", err)
			}
		}
		return adapters.NewPriceRepository(gdb, log), release, nil
	}

	uc := usecase.NewPipelineUsecase(market, connect, log)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	return uc.Run(ctx, symbol)
}
