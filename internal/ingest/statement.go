package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// maxDescriptionLen caps scanner descriptions.
const maxDescriptionLen = 200

var (
	// amountRE finds an amount-shaped token: optional minus, optional
	// dollar sign, digit groups with commas, exactly two cents digits.
	amountRE = regexp.MustCompile(`-?\$?\s*[\d,]+\.\d{2}`)

	// dateRE finds a date-shaped token in one of three forms:
	// numeric M/D[/Y] (groups 1-3), "MonthName Day[, Year]" (groups 4-6),
	// or "Day MonthName Year" (groups 7-9).
	dateRE = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?` +
		`|(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{2,4})` +
		`|(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{2,4})`)

	// yearRE finds a standalone 4-digit year elsewhere in a line.
	yearRE = regexp.MustCompile(`\d{4}`)

	// bulletRE strips a single leading bullet or dash marker.
	bulletRE = regexp.MustCompile(`^\s*[-*]\s*`)
)

var monthsByAbbr = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseFreeformStatement scans unstructured pasted statement text line by
// line. Each line is independent: it must carry an amount-shaped token to
// be a transaction line at all, a date token if one can be found (else
// today), and enough residual text to serve as a description. Lines that
// fail any step are skipped silently. Numeric dates are read as
// month/day[/year]; ambiguous orderings default to that interpretation.
func (p *Parser) ParseFreeformStatement(text string, accountID int, accountName string) []model.Transaction {
	var txns []model.Transaction
	for _, line := range strings.Split(text, "\n") {
		amountTok := amountRE.FindString(line)
		if amountTok == "" {
			continue
		}
		amount, err := NormalizeAmount(amountTok)
		if err != nil || !amount.IsPositive() {
			continue
		}

		date := p.scanDate(line)

		desc := removeFirst(line, amountRE)
		desc = removeFirst(desc, dateRE)
		desc = bulletRE.ReplaceAllString(desc, "")
		desc = strings.TrimSpace(desc)
		if len(desc) < 2 {
			// Too little residue to be a real transaction line.
			continue
		}
		category := p.rules.Categorize(desc)
		desc = capRunes(desc, maxDescriptionLen)

		txns = append(txns, model.Transaction{
			Date:        date,
			Amount:      amount,
			Description: desc,
			AccountID:   accountID,
			AccountName: accountName,
			Category:    category,
		})
	}
	return txns
}

// scanDate locates and resolves a date token in a line, defaulting to
// today when no token matches or resolution fails.
func (p *Parser) scanDate(line string) time.Time {
	m := dateRE.FindStringSubmatch(line)
	if m == nil {
		return p.today()
	}

	switch {
	case m[4] != "" || m[8] != "":
		// Month-name form. The year comes from any standalone 4-digit
		// token on the line, not the capture, so "Jan 15" picks up a
		// trailing statement year.
		monthTok, dayTok := m[4], m[5]
		if m[8] != "" {
			monthTok, dayTok = m[8], m[7]
		}
		month := monthsByAbbr[strings.ToLower(monthTok)]
		day, _ := strconv.Atoi(dayTok)
		year := p.today().Year()
		if y := yearRE.FindString(line); y != "" {
			year, _ = strconv.Atoi(y)
		}
		return p.calendarDate(year, month, day)
	default:
		// Numeric form, read as month/day with optional year.
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := p.today().Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		return p.calendarDate(year, time.Month(month), day)
	}
}

// calendarDate builds a UTC date, falling back to today when the
// components do not name a real calendar date (time.Date would silently
// normalize month 15 into the next year).
func (p *Parser) calendarDate(year int, month time.Month, day int) time.Time {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return p.today()
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return p.today()
	}
	return d
}

// removeFirst deletes the first match of re from s, if any.
func removeFirst(s string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

// capRunes truncates s to at most n characters, rune-safe.
func capRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
