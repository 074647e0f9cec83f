package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fleettrack/internal/domain"
)

// table is one parsed CSV file: a header resolved to a case-insensitive
// name index plus the data rows, every field whitespace-trimmed. Rows
// are padded or truncated to the header width up front so positional
// access never goes out of bounds.
type table struct {
	width int
	index map[string]int
	rows  []row
}

type row struct {
	line   int
	fields []string
}

// readTable reads and tokenizes path. A missing file yields an empty
// table, not an error.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &table{index: map[string]int{}}, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &table{index: map[string]int{}}, nil
	}

	t := &table{
		width: len(records[0]),
		index: make(map[string]int, len(records[0])),
	}
	for i, name := range records[0] {
		t.index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for i, record := range records[1:] {
		fields := make([]string, t.width)
		for j := range fields {
			if j < len(record) {
				fields[j] = strings.TrimSpace(record[j])
			}
		}
		t.rows = append(t.rows, row{line: i + 2, fields: fields})
	}
	return t, nil
}

// field returns the row's value for a header column, or the empty
// string when the column is absent from the header.
func (t *table) field(r row, name string) string {
	if i, ok := t.index[strings.ToLower(name)]; ok {
		return r.fields[i]
	}
	return ""
}

// Per-field best-effort parsers. Each returns its default on empty or
// malformed input instead of failing the row.

func intField(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func centsField(s string, def int64) int64 {
	cents, err := domain.ParseCents(s)
	if err != nil {
		return def
	}
	return cents
}

func dateField(s string, def time.Time) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		return def
	}
	return t
}

func boolField(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

// requireInt parses identity columns, which have no sensible default.
func requireInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", name, s)
	}
	return n, nil
}
