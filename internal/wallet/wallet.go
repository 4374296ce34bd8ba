// Package wallet owns the wallet state. Every command validates its input,
// applies its changes to a copy of the state, persists the copy with a
// single store write and only then makes it current.
package wallet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletbox/walletbox/internal/accounts"
	"github.com/walletbox/walletbox/internal/activity"
	"github.com/walletbox/walletbox/internal/document"
	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
	"github.com/walletbox/walletbox/internal/store"
)

// DefaultKey is the storage key of the wallet document.
const DefaultKey = "walletSandbox.v1"

// Wallet is the single owner of a wallet's state. It is safe for concurrent
// use; commands are serialized.
type Wallet struct {
	mu    sync.Mutex
	state *model.State

	store    store.Store
	key      string
	ids      id.Generator
	now      func() time.Time
	log      *slog.Logger
	appName  string
	currency string
}

// Option configures a Wallet.
type Option func(*Wallet)

// WithKey sets the storage key.
func WithKey(key string) Option {
	return func(w *Wallet) { w.key = key }
}

// WithIDs sets the identifier generator.
func WithIDs(g id.Generator) Option {
	return func(w *Wallet) { w.ids = g }
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *Wallet) { w.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wallet) { w.log = l }
}

// WithAppName sets the application name written into seeded wallets.
func WithAppName(name string) Option {
	return func(w *Wallet) { w.appName = name }
}

// WithCurrency sets the default currency tag.
func WithCurrency(currency string) Option {
	return func(w *Wallet) { w.currency = currency }
}

// Open loads the wallet stored under the configured key. A missing,
// unreadable or malformed document is replaced by a freshly seeded wallet;
// the discarded document is logged. Open fails only if the seeded wallet
// cannot be written.
func Open(s store.Store, opts ...Option) (*Wallet, error) {
	w := &Wallet{
		store:    s,
		key:      DefaultKey,
		ids:      id.UUID{},
		now:      time.Now,
		log:      slog.Default(),
		appName:  DefaultAppName,
		currency: accounts.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(w)
	}

	st, err := w.load()
	if err != nil {
		w.log.Warn("discarding stored wallet", "key", w.key, "err", err)
	}
	if st == nil {
		if err := w.seed(); err != nil {
			return nil, err
		}
		return w, nil
	}

	w.state = st
	w.log.Debug("wallet loaded", "key", w.key, "accounts", len(st.Accounts), "activity", len(st.Activity))
	return w, nil
}

// load returns nil without error when nothing is stored.
func (w *Wallet) load() (*model.State, error) {
	data, err := w.store.Get(w.key)
	if errors.Is(err, store.ErrNotFound) {
		w.log.Info("no stored wallet, seeding a new one", "key", w.key)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading wallet: %w", err)
	}
	st, err := document.Decode(data)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (w *Wallet) seed() error {
	st := SeedState(w.ids, w.now, w.appName, w.currency)
	if err := w.persist(st); err != nil {
		return err
	}
	w.state = st
	w.log.Info("seeded wallet", "key", w.key)
	return nil
}

// Reset erases the stored wallet and seeds a new one. Everything is lost.
func (w *Wallet) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.store.Remove(w.key); err != nil {
		w.log.Error("removing stored wallet", "key", w.key, "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return w.seed()
}

// State returns a copy of the current state.
func (w *Wallet) State() *model.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}

// Accounts returns a copy of the accounts in creation order.
func (w *Wallet) Accounts() []model.Account {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone().Accounts
}

// Activity returns a copy of the activity log, newest first.
func (w *Wallet) Activity() []model.ActivityEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone().Activity
}

// Total sums all balances regardless of currency, for display.
func (w *Wallet) Total() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry(w.state).Total()
}

// PrimaryCurrency is the currency of the first account, or the default one.
func (w *Wallet) PrimaryCurrency() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry(w.state).PrimaryCurrency()
}

// SetSetting stores a boolean setting flag.
func (w *Wallet) SetSetting(name string, value bool) error {
	if name == "" {
		return inputError("setting name is empty")
	}
	return w.update(func(tx *txn) error {
		tx.state.SetFlag(name, value)
		return nil
	})
}

// txn is the scratch state a command mutates.
type txn struct {
	state    *model.State
	accounts *accounts.Registry
	activity *activity.Ledger
}

func (w *Wallet) registry(st *model.State) *accounts.Registry {
	return accounts.NewRegistry(st, w.ids, w.currency)
}

func (w *Wallet) begin(st *model.State) *txn {
	return &txn{
		state:    st,
		accounts: w.registry(st),
		activity: activity.NewLedger(st, w.ids, w.now),
	}
}

// update runs fn against a copy of the state, persists the copy and makes
// it current. If fn or the write fails, the current state is untouched.
func (w *Wallet) update(fn func(tx *txn) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.replace(w.state.Clone(), fn)
}

// replace is update with an explicit starting state. Callers hold mu.
func (w *Wallet) replace(next *model.State, fn func(tx *txn) error) error {
	if err := fn(w.begin(next)); err != nil {
		return err
	}
	if err := w.persist(next); err != nil {
		return err
	}
	w.state = next
	return nil
}

func (w *Wallet) persist(st *model.State) error {
	data, err := document.Encode(st)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := w.store.Set(w.key, data); err != nil {
		w.log.Error("writing wallet", "key", w.key, "err", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
