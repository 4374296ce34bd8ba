package wallet

import (
	"fmt"
	"io"

	"github.com/walletbox/walletbox/internal/document"
)

const titleImported = "Import completed"

// Export writes the current state as a portable document. The bytes are
// exactly what the store holds.
func (w *Wallet) Export(out io.Writer) error {
	w.mu.Lock()
	data, err := document.Encode(w.state)
	w.mu.Unlock()
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// ImportSummary counts what an import brought in. Activity excludes the
// note recording the import itself.
type ImportSummary struct {
	Accounts int
	Activity int
}

// Import replaces the whole state with the document read from r, then notes
// the import. A document that does not parse, or whose accounts or activity
// are not lists, is rejected with ErrInvalidImport and nothing changes.
// Entries the wallet cannot read are kept as they are.
func (w *Wallet) Import(r io.Reader) (ImportSummary, error) {
	data, err := document.ReadPortable(r)
	if err != nil {
		w.log.Warn("import rejected", "err", err)
		return ImportSummary{}, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	st, err := document.Decode(data)
	if err != nil {
		w.log.Warn("import rejected", "err", err)
		return ImportSummary{}, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}
	sum := ImportSummary{Accounts: len(st.Accounts), Activity: len(st.Activity)}

	w.mu.Lock()
	defer w.mu.Unlock()
	err = w.replace(st, func(tx *txn) error {
		tx.activity.Note(titleImported, "")
		return nil
	})
	if err != nil {
		return ImportSummary{}, err
	}
	w.log.Info("wallet imported", "accounts", sum.Accounts, "activity", sum.Activity)
	return sum, nil
}
