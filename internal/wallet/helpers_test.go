package wallet

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/walletbox/walletbox/internal/document"
	"github.com/walletbox/walletbox/internal/id"
	"github.com/walletbox/walletbox/internal/model"
	"github.com/walletbox/walletbox/internal/store"
)

// Seeded ids with the test generator.
const (
	mainID    = "id-0001"
	savingsID = "id-0002"
)

var (
	t0          = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	errDiskFull = errors.New("disk full")
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// tickingClock advances one second per call.
func tickingClock() func() time.Time {
	t := t0
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func testOptions(log *slog.Logger) []Option {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return []Option{
		WithIDs(id.NewSequence("id")),
		WithClock(tickingClock()),
		WithLogger(log),
	}
}

func openTest(t *testing.T, s store.Store) *Wallet {
	t.Helper()
	w, err := Open(s, testOptions(nil)...)
	require.NoError(t, err)
	return w
}

func newTest(t *testing.T) (*Wallet, *store.Memory) {
	t.Helper()
	s := store.NewMemory()
	return openTest(t, s), s
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// faultyStore wraps a Memory store and fails the operations it is told to.
type faultyStore struct {
	*store.Memory
	getErr    error
	setErr    error
	removeErr error
}

func newFaultyStore() *faultyStore {
	return &faultyStore{Memory: store.NewMemory()}
}

func (f *faultyStore) Get(key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Memory.Get(key)
}

func (f *faultyStore) Set(key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(key, value)
}

func (f *faultyStore) Remove(key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.Memory.Remove(key)
}

func stored(t *testing.T, s store.Store) string {
	t.Helper()
	data, err := s.Get(DefaultKey)
	require.NoError(t, err)
	return string(data)
}

func encoded(t *testing.T, st *model.State) string {
	t.Helper()
	data, err := document.Encode(st)
	require.NoError(t, err)
	return string(data)
}
