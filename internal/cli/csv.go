package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const csvDelimiter = ';'

// WriteCSV writes records to path, replacing it atomically. The header is
// the field list of the first record; later records are projected onto it.
// It returns the number of records written.
func WriteCSV(path string, records []Record) (int, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".rbw-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	w.Comma = csvDelimiter

	if len(records) > 0 {
		header := Keys(records[0])
		if err := w.Write(header); err != nil {
			tmp.Close()
			return 0, err
		}
		for _, record := range records {
			row := make([]string, len(header))
			for i, key := range header {
				v, _ := record.Get(key)
				row[i] = csvCell(v)
			}
			if err := w.Write(row); err != nil {
				tmp.Close()
				return 0, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("failed to move file into place: %w", err)
	}
	return len(records), nil
}

func csvCell(v interface{}) string {
	if s, ok := v.(string); ok {
		if d, ok := formatDate(s); ok {
			return d
		}
		return s
	}
	return Classify(v).Cell()
}

// formatDate renders an RFC 3339 timestamp as YYYY-MM-DD in the timestamp's
// own offset.
func formatDate(s string) (string, bool) {
	if len(s) < len("2006-01-02T15:04:05Z") {
		return "", false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
