// Package activity maintains the newest-first activity log of a wallet.
package activity

import (
	"time"

	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
)

// ClearedTitle is the title of the note left behind by Clear.
const ClearedTitle = "History cleared"

// Ledger appends to the activity log of a State. Entries are prepended so
// the log stays newest first without ever being re-sorted.
type Ledger struct {
	state *model.State
	ids   id.Generator
	now   func() time.Time
}

// NewLedger returns a Ledger over st. A nil now means time.Now.
func NewLedger(st *model.State, ids id.Generator, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{state: st, ids: ids, now: now}
}

// Append stamps e with a fresh ID and the current time and inserts it at the
// front of the log. Amount and currency are not checked.
func (l *Ledger) Append(e model.ActivityEntry) model.ActivityEntry {
	e.ID = l.ids.NewID()
	e.TS = l.now().UTC()

	activity := make([]model.ActivityEntry, 0, len(l.state.Activity)+1)
	activity = append(activity, e)
	l.state.Activity = append(activity, l.state.Activity...)
	return e
}

// Note appends a note entry.
func (l *Ledger) Note(title, details string) model.ActivityEntry {
	return l.Append(model.ActivityEntry{Type: model.ActivityNote, Title: title, Details: details})
}

// Clear empties the log and records that it was cleared, so the log is
// never silently empty.
func (l *Ledger) Clear() model.ActivityEntry {
	l.state.Activity = nil
	return l.Note(ClearedTitle, "")
}

// Entries returns the log, newest first.
func (l *Ledger) Entries() []model.ActivityEntry {
	return l.state.Activity
}
