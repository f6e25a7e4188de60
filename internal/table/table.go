// Package table reads two-column numeric signals from CSV.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrTooFewColumns is returned when the CSV has fewer than two columns.
var ErrTooFewColumns = errors.New("table: at least two columns required (x axis, signal)")

// Default labels used when the file has no header row.
const (
	DefaultXLabel = "x"
	DefaultYLabel = "y"
)

// Table is a parsed signal: the first column is the x axis, the second the
// samples. Additional columns are counted but not parsed.
type Table struct {
	XLabel  string
	YLabel  string
	X       []float64
	Y       []float64
	Columns []string
}

// Rows returns the number of data rows.
func (t Table) Rows() int { return len(t.X) }

// ReadFile opens path and parses it with [Read].
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Read parses CSV from r. A first row whose first two fields are not both
// numbers is taken as the header.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("%w: empty input", ErrTooFewColumns)
	}

	if err != nil {
		return Table{}, fmt.Errorf("failed to read header: %w", err)
	}

	if len(first) < 2 {
		return Table{}, fmt.Errorf("%w: got %d", ErrTooFewColumns, len(first))
	}

	t := Table{XLabel: DefaultXLabel, YLabel: DefaultYLabel}

	line := 1
	if x, y, ok := parsePair(first); ok {
		t.Columns = defaultColumns(len(first))
		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
	} else {
		t.Columns = trimAll(first)
		t.XLabel, t.YLabel = t.Columns[0], t.Columns[1]
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			return Table{}, fmt.Errorf("line %d: %w", line, err)
		}

		if len(record) < 2 {
			return Table{}, fmt.Errorf("line %d: %w: got %d", line, ErrTooFewColumns, len(record))
		}

		x, err := parseField(record[0])
		if err != nil {
			return Table{}, fmt.Errorf("line %d, column %q: %w", line, t.XLabel, err)
		}

		y, err := parseField(record[1])
		if err != nil {
			return Table{}, fmt.Errorf("line %d, column %q: %w", line, t.YLabel, err)
		}

		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
	}

	return t, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parsePair(record []string) (float64, float64, bool) {
	x, errX := parseField(record[0])
	y, errY := parseField(record[1])

	return x, y, errX == nil && errY == nil
}

func defaultColumns(n int) []string {
	cols := make([]string, n)
	for i := range cols {
		switch i {
		case 0:
			cols[i] = DefaultXLabel
		case 1:
			cols[i] = DefaultYLabel
		default:
			cols[i] = "col" + strconv.Itoa(i+1)
		}
	}

	return cols
}

func trimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}

	return out
}
