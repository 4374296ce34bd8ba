package id

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator produces identifiers for accounts and activity entries.
// Identifiers are unique within a wallet with high probability; nothing
// checks them for collisions.
type Generator interface {
	NewID() string
}

// Scheme names accepted by New.
const (
	SchemeUUID   = "uuid"
	SchemeLegacy = "legacy"
)

// New returns the generator for a configured scheme. An empty scheme means UUID.
func New(scheme string) (Generator, error) {
	switch scheme {
	case "", SchemeUUID:
		return UUID{}, nil
	case SchemeLegacy:
		return Legacy{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewID returns a new UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Legacy generates ids like "9f3a0c1b2d4e5-18c2b3a4f10": random hex, a dash,
// then the current Unix time in milliseconds as hex. Documents written by
// the browser version of the sandbox use this shape.
type Legacy struct {
	Now func() time.Time // nil means time.Now
}

// NewID returns a new legacy-style id.
func (g Legacy) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatUint(rand.Uint64()>>12, 16) + "-" + strconv.FormatInt(now().UnixMilli(), 16)
}

// Sequence generates "<prefix>-0001", "<prefix>-0002", ... It is
// deterministic, which makes it useful in tests.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

// NewSequence returns a Sequence starting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%04d", s.Prefix, s.n.Add(1))
}

// Short returns the display prefix of an id (its first 6 characters).
func Short(id string) string {
	const n = 6
	if len(id) <= n {
		return id
	}
	return id[:n]
}
