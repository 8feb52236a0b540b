package usecase

import (
	"testing"
	"time"

	"stock_pipeline/internal/feature/prices/domain/entity"
)

func wellFormed(open, high, low, close, volume string) entity.RawQuote {
	return entity.RawQuote{Open: open, High: high, Low: low, Close: close, Volume: volume}
}

func TestNormalize_SingleEntry(t *testing.T) {
	t.Parallel()

	raw := entity.RawTimeSeries{
		"2024-01-02": wellFormed("370.0", "375.5", "369.0", "374.0", "21000000"),
	}

	rows := Normalize(nil, "MSFT", raw)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := entity.DailyPrice{
		Symbol:    "MSFT",
		TradeDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Open:      370.0,
		High:      375.5,
		Low:       369.0,
		Close:     374.0,
		Volume:    21000000,
	}
	if rows[0] != want {
		t.Errorf("row mismatch:\ngot  %+v\nwant %+v", rows[0], want)
	}
}

func TestNormalize_SortedByDateAscending(t *testing.T) {
	t.Parallel()

	raw := entity.RawTimeSeries{
		"2024-01-04": wellFormed("1", "1", "1", "1", "1"),
		"2024-01-02": wellFormed("1", "1", "1", "1", "1"),
		"2024-01-03": wellFormed("1", "1", "1", "1", "1"),
	}

	rows := Normalize(nil, "MSFT", raw)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if !rows[i-1].TradeDate.Before(rows[i].TradeDate) {
			t.Errorf("rows not sorted ascending: %v before %v", rows[i-1].TradeDate, rows[i].TradeDate)
		}
	}
}

func TestNormalize_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date string
		q    entity.RawQuote
	}{
		{"non-numeric volume", "2024-01-03", wellFormed("370.0", "375.5", "369.0", "374.0", "not-a-number")},
		{"missing close", "2024-01-03", wellFormed("370.0", "375.5", "369.0", "", "21000000")},
		{"non-numeric open", "2024-01-03", wellFormed("abc", "375.5", "369.0", "374.0", "21000000")},
		{"bad date", "01/03/2024", wellFormed("370.0", "375.5", "369.0", "374.0", "21000000")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := entity.RawTimeSeries{
				"2024-01-02": wellFormed("370.0", "375.5", "369.0", "374.0", "21000000"),
				tt.date:      tt.q,
			}

			rows := Normalize(nil, "MSFT", raw)

			// The malformed entry is dropped, never fatal.
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}
			if !rows[0].TradeDate.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("surviving row has wrong date: %v", rows[0].TradeDate)
			}
		})
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	t.Parallel()

	rows := Normalize(nil, "MSFT", entity.RawTimeSeries{})
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}

	rows = Normalize(nil, "MSFT", nil)
	if len(rows) != 0 {
		t.Errorf("expected 0 rows for nil input, got %d", len(rows))
	}
}

func TestNormalize_AllMalformed(t *testing.T) {
	t.Parallel()

	raw := entity.RawTimeSeries{
		"2024-01-02": wellFormed("x", "375.5", "369.0", "374.0", "21000000"),
		"2024-01-03": wellFormed("370.0", "y", "369.0", "374.0", "21000000"),
	}

	rows := Normalize(nil, "MSFT", raw)
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestParseVolume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"plain integer", "21000000", 21000000, false},
		{"fractional string truncates", "21000000.9", 21000000, false},
		// Above 2^53 a float round-trip would corrupt the value.
		{"large volume stays exact", "9007199254740993", 9007199254740993, false},
		{"zero", "0", 0, false},
		{"non-numeric", "n/a", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseVolume(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseVolume(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
