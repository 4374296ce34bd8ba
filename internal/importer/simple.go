package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/model"
)

// SimpleParser parses a minimal CSV with date, description and amount
// columns in any order. Dates are ISO (2006-01-02) and amounts may use a
// decimal comma.
type SimpleParser struct{}

const simpleDateFormat = "2006-01-02"

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads the CSV. Blank rows are skipped.
func (p *SimpleParser) Parse(r io.Reader) ([]model.StatementLine, error) {
	return readTable(r, p.Format(), parseSimpleRecord, "date", "description", "amount")
}

func parseSimpleRecord(rec record) (model.StatementLine, error) {
	rawDate := rec.get("date")
	date, err := time.Parse(simpleDateFormat, rawDate)
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing date %q: %w", rawDate, err)
	}
	rawAmount := rec.get("amount")
	amount, err := decimal.NewFromString(strings.Replace(rawAmount, ",", ".", 1))
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing amount %q: %w", rawAmount, err)
	}
	return model.StatementLine{Date: date, Description: rec.get("description"), Amount: amount}, nil
}
