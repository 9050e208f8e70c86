// Package importlog keeps an append-only audit trail of import runs in
// <root>/logs/import-log.csv. It answers "where did these records come
// from" after the fact; the ledger itself stays free of provenance
// columns.
package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spendlog-dev/spendlog/internal/id"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp    time.Time
	BatchID      string // "YYYY-MM-NNN"
	Source       string // file name, or "paste"
	Account      string
	LinesSeen    int
	RecordsAdded int
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,batch_id,source,account,lines_seen,records_added"

const (
	numFields  = 6
	logDir     = "logs"
	logFile    = "logs/import-log.csv"
	colTime    = 0
	colBatchID = 1
	colSource  = 2
	colAccount = 3
	colLines   = 4
	colRecords = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colBatchID] = e.BatchID
	row[colSource] = e.Source
	row[colAccount] = e.Account
	row[colLines] = strconv.Itoa(e.LinesSeen)
	row[colRecords] = strconv.Itoa(e.RecordsAdded)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}

	lines, err := strconv.Atoi(record[colLines])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing lines_seen %q: %w", record[colLines], err)
	}

	records, err := strconv.Atoi(record[colRecords])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing records_added %q: %w", record[colRecords], err)
	}

	return Entry{
		Timestamp:    ts,
		BatchID:      record[colBatchID],
		Source:       record[colSource],
		Account:      record[colAccount],
		LinesSeen:    lines,
		RecordsAdded: records,
	}, nil
}

// Append writes entries to <root>/logs/import-log.csv, creating the file
// and header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/import-log.csv.
// Returns nil if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// NextBatchID returns the next batch ID for the given moment, based on
// the highest sequence already logged for that month.
func NextBatchID(root string, now time.Time) (string, error) {
	entries, err := Read(root)
	if err != nil {
		return "", err
	}

	year, month := now.Year(), int(now.Month())
	maxSeq := 0
	for _, e := range entries {
		y, m, seq, err := id.ParseBatchID(e.BatchID)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return id.FormatBatchID(year, month, maxSeq+1), nil
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
