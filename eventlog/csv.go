package eventlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// csvHeader is the fixed column layout for audit CSV files.
var csvHeader = []string{"case_id", "activity", "timestamp", "resource", "amount"}

// WriteCSV writes entries as CSV with a header row.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.CaseID,
			e.Activity,
			e.Timestamp.UTC().Format(time.RFC3339Nano),
			e.Resource,
			e.Amount,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads entries previously written by WriteCSV.
func ParseCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv")
	}
	if len(records[0]) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(records[0]))
	}

	var entries []Entry
	for i, rec := range records[1:] {
		ts, err := time.Parse(time.RFC3339Nano, rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse timestamp: %w", i+2, err)
		}
		entries = append(entries, Entry{
			CaseID:    rec[0],
			Activity:  rec[1],
			Timestamp: ts,
			Resource:  rec[3],
			Amount:    rec[4],
		})
	}
	return entries, nil
}
