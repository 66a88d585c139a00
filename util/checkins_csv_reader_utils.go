package util

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"checkin-forecast/models"
	"checkin-forecast/models/checkin"
)

// ReadCheckInsFromCSV loads the check-in rows of a CSV file on disk.
// The file is closed before returning.
func ReadCheckInsFromCSV(filePath, column string) ([]checkin.RawRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &InputError{Source: filePath, Reason: "failed to open file", Err: err}
	}
	defer f.Close()

	return ReadCheckIns(f, filePath, column)
}

// ReadCheckIns reads a CSV table with a header row and returns the values of
// column, one RawRecord per data row. Blank cells are skipped.
func ReadCheckIns(r io.Reader, source, column string) ([]checkin.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &InputError{Source: source, Reason: "empty table, missing header row"}
	}
	if err != nil {
		return nil, &InputError{Source: source, Reason: "failed to read header", Err: err}
	}

	idx := columnIndex(header, column)
	if idx < 0 {
		return nil, &InputError{Source: source, Reason: fmt.Sprintf("missing column %q", column)}
	}

	var records []checkin.RawRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &InputError{Source: source, Reason: "failed to read row", Err: err}
		}
		if idx >= len(row) || strings.TrimSpace(row[idx]) == "" {
			continue
		}
		records = append(records, checkin.RawRecord{DateTime: row[idx]})
	}
	return records, nil
}

func columnIndex(header []string, column string) int {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.TrimSpace(h) == column {
			return i
		}
	}
	return -1
}

// PrintWeeklyForecastPartially prints key fields of a WeeklyForecast.
func PrintWeeklyForecastPartially(w io.Writer, f *models.WeeklyForecast) {
	fmt.Fprintf(w, "Facility: %s\n", f.Facility)
	if f.Unbounded {
		fmt.Fprintln(w, "Window: all history")
	} else {
		fmt.Fprintf(w, "Window: %d days\n", f.WindowDays)
	}
	for _, d := range f.Days {
		fmt.Fprintf(w, "%-9s check-ins=%d instances=%d bins=%d\n",
			d.WeekdayName, d.CheckIns, d.InstanceCount, len(d.Histogram.Hours))
	}
}
