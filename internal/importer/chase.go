package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/model"
)

// ChaseParser parses Chase checking account CSV exports. Only the posting
// date, description and amount columns are read.
type ChaseParser struct{}

const chaseDateFormat = "01/02/2006"

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV. Amounts are signed: debits are negative.
func (p *ChaseParser) Parse(r io.Reader) ([]model.StatementLine, error) {
	return readTable(r, p.Format(), parseChaseRecord, "posting date", "description", "amount")
}

func parseChaseRecord(rec record) (model.StatementLine, error) {
	rawDate := rec.get("posting date")
	date, err := time.Parse(chaseDateFormat, rawDate)
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing date %q: %w", rawDate, err)
	}
	rawAmount := rec.get("amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return model.StatementLine{}, fmt.Errorf("parsing amount %q: %w", rawAmount, err)
	}
	return model.StatementLine{Date: date, Description: rec.get("description"), Amount: amount}, nil
}
