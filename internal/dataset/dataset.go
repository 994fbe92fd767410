// Package dataset reads corpus files from disk. Loaders parse container
// formats only; date values pass through untouched so the scorer's own
// validation decides what is acceptable.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Record is one raw corpus entry.
type Record struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// LoadCSV loads records from a CSV file. The header row names the columns:
// "text" (or "message") and "date", matched case-insensitively, in any
// position. Extra columns are ignored.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row in %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	textCol, dateCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "text", "message":
			textCol = i
		case "date":
			dateCol = i
		}
	}
	if textCol < 0 || dateCol < 0 {
		return nil, fmt.Errorf("%s: header must name a text (or message) and a date column, got %v", path, header)
	}

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, Record{
			Text: row[textCol],
			Date: row[dateCol],
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no records found in %s", path)
	}
	return records, nil
}

// LoadJSONL loads records from a JSONL file, one {"text": ..., "date": ...}
// object per line. Malformed lines are skipped with a warning; a file
// yielding nothing is an error.
func LoadJSONL(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in %s", path)
	}
	return records, nil
}

// Load picks the loader from the file extension: .csv uses LoadCSV,
// .jsonl/.ndjson use LoadJSONL.
func Load(path string) ([]Record, error) {
	switch {
	case strings.HasSuffix(path, ".csv"):
		return LoadCSV(path)
	case strings.HasSuffix(path, ".jsonl"), strings.HasSuffix(path, ".ndjson"):
		return LoadJSONL(path)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q (want .csv, .jsonl or .ndjson)", path)
	}
}
