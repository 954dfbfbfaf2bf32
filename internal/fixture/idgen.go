package fixture

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces entity ids for generated snapshots.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random RFC 4122 UUIDs via github.com/google/uuid.
//
// Thread-safety: UUIDGenerator is stateless and safe for concurrent use.
type UUIDGenerator struct{}

// NewID returns a new hyphenated UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequentialGenerator returns predictable prefixed ids for testing.
//
// Deterministic ids keep golden output stable across runs: the same
// snapshot build order always yields the same id sequence.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequentialGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialGenerator creates a generator producing "<prefix>-1",
// "<prefix>-2" and so on.
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// NewID returns the next id in sequence.
func (g *SequentialGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
