package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when normalizing a date string. Source
// documents mix ISO, US slash dates, and month-name forms freely.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02T15:04:05Z07:00",
}

// NormalizeDate parses a date-like string and pins it to UTC midnight.
// The source of truth is date-only, so UTC is applied uniformly to avoid
// timezone-shifting a date across a day boundary.
func NormalizeDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// NormalizeAmount strips currency symbol, thousands separators, and
// whitespace, then parses a decimal and returns its absolute value.
// Sign is discarded: this tracker records expense magnitudes only.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '$' || r == ',':
			return -1
		case r == ' ' || r == '\t':
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q: %w", s, err)
	}
	return d.Abs(), nil
}
