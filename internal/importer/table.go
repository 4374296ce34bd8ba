package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/walletbox/walletbox/internal/model"
)

// table reads a CSV whose first row names the columns. Names match
// case-insensitively and columns may come in any order.
type table struct {
	r    *csv.Reader
	cols map[string]int
	row  int
}

// openTable reads the header and checks the required columns are there. It
// returns a nil table for empty input.
func openTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing %q column", name)
		}
	}
	return &table{r: cr, cols: cols, row: 1}, nil
}

// next returns the following non-blank record, or io.EOF.
func (t *table) next() (record, error) {
	for {
		rec, err := t.r.Read()
		t.row++
		if err != nil {
			return record{}, err
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		return record{fields: rec, cols: t.cols}, nil
	}
}

type record struct {
	fields []string
	cols   map[string]int
}

// get returns the trimmed value of the named column, or "" when the row is
// too short.
func (r record) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// readTable runs parse over every record and assigns references prefixed
// with source.
func readTable(r io.Reader, source string, parse func(record) (model.StatementLine, error), required ...string) ([]model.StatementLine, error) {
	t, err := openTable(r, required...)
	if err != nil || t == nil {
		return nil, err
	}

	var lines []model.StatementLine
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", t.row, err)
		}
		line, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", t.row, err)
		}
		lines = append(lines, line)
	}
	assignRefs(lines, source)
	return lines, nil
}

// assignRefs gives each line a reference built from its date, description
// and amount. Identical lines within one statement get a counter suffix so
// each still has its own reference.
func assignRefs(lines []model.StatementLine, source string) {
	seen := make(map[string]int, len(lines))
	for i := range lines {
		l := &lines[i]
		ref := fmt.Sprintf("%s_%s_%s_%s", source, l.Date.Format("20060102"), refPrefix(l.Description), l.Amount.String())
		seen[ref]++
		if n := seen[ref]; n > 1 {
			ref = fmt.Sprintf("%s_%d", ref, n)
		}
		l.Reference = ref
	}
}

// refPrefix keeps the first ten ASCII letters and digits of a description.
func refPrefix(desc string) string {
	prefix := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, desc)
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return prefix
}
