package usecase

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"stock_pipeline/internal/feature/prices/domain/entity"
)

const tradeDateLayout = "2006-01-02"

// Normalize converts a raw time series into DailyPrice rows. Entries whose
// date fails to parse or whose numeric fields are missing or malformed are
// skipped with a warning instead of failing the whole run; upstream data
// occasionally contains incomplete trailing entries. An empty result is valid.
//
// Rows are returned sorted by trade date ascending so batches are
// deterministic.
func Normalize(log *slog.Logger, symbol string, raw entity.RawTimeSeries) []entity.DailyPrice {
	if log == nil {
		log = slog.Default()
	}

	rows := make([]entity.DailyPrice, 0, len(raw))
	for dateStr, q := range raw {
		row, err := normalizeOne(symbol, dateStr, q)
		if err != nil {
			log.Warn("skipping malformed time-series entry", "symbol", symbol, "date", dateStr, "error", err)
			continue
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TradeDate.Before(rows[j].TradeDate)
	})
	return rows
}

func normalizeOne(symbol, dateStr string, q entity.RawQuote) (entity.DailyPrice, error) {
	td, err := time.Parse(tradeDateLayout, dateStr)
	if err != nil {
		return entity.DailyPrice{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	o, err := strconv.ParseFloat(q.Open, 64)
	if err != nil {
		return entity.DailyPrice{}, fmt.Errorf("parse open %q: %w", q.Open, err)
	}
	h, err := strconv.ParseFloat(q.High, 64)
	if err != nil {
		return entity.DailyPrice{}, fmt.Errorf("parse high %q: %w", q.High, err)
	}
	l, err := strconv.ParseFloat(q.Low, 64)
	if err != nil {
		return entity.DailyPrice{}, fmt.Errorf("parse low %q: %w", q.Low, err)
	}
	c, err := strconv.ParseFloat(q.Close, 64)
	if err != nil {
		return entity.DailyPrice{}, fmt.Errorf("parse close %q: %w", q.Close, err)
	}
	vol, err := parseVolume(q.Volume)
	if err != nil {
		return entity.DailyPrice{}, fmt.Errorf("parse volume %q: %w", q.Volume, err)
	}

	return entity.DailyPrice{
		Symbol:    symbol,
		TradeDate: td,
		Open:      o,
		High:      h,
		Low:       l,
		Close:     c,
		Volume:    vol,
	}, nil
}

// parseVolume parses volume as an exact integer. The API occasionally encodes
// it as a fractional string ("21000000.0"), so a float truncation fallback is
// kept for those; going through the integer path first avoids float rounding
// on volumes above 2^53.
func parseVolume(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}
