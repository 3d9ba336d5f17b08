// uuid id generators that allow mocking
package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface for generating ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequentialGenerator hands out predictable ids like "entity-0001", "entity-0002".
// Tests use it so entity ids sort in spawn order.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequentialGenerator creates a generator with the given prefix
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// New returns the next id in sequence
func (g *SequentialGenerator) New() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.next.Add(1))
}
