package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/walletbox/walletbox/internal/model"
)

// Header is the CSV header written by WriteCSV.
const Header = "id,ts,type,title,details,amount,currency"

const (
	numFields   = 7
	colID       = 0
	colTS       = 1
	colType     = 2
	colTitle    = 3
	colDetails  = 4
	colAmount   = 5
	colCurrency = 6
)

// MarshalEntry converts an entry to a CSV row.
func MarshalEntry(e model.ActivityEntry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colTS] = e.TS.Format(time.RFC3339)
	row[colType] = string(e.Type)
	row[colTitle] = e.Title
	row[colDetails] = e.Details
	if e.Amount != nil {
		row[colAmount] = e.Amount.String()
	}
	row[colCurrency] = e.Currency
	return row
}

// WriteCSV writes entries, in the given order, with a header row.
func WriteCSV(w io.Writer, entries []model.ActivityEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
