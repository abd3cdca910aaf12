package ids

import (
	"sync/atomic"

	"github.com/mcoot/machgame/internal/model"
)

// Allocator hands out identifiers shared by every entity kind
type Allocator interface {
	// Next returns a value greater than every value returned before it
	Next() model.ID
}

// Sequence implements Allocator with an atomic counter. The first value is 1.
type Sequence struct {
	last atomic.Uint64
}

// New creates a Sequence starting from zero
func New() *Sequence {
	return &Sequence{}
}

// Next increments the counter and returns the new value
func (s *Sequence) Next() model.ID {
	return model.ID(s.last.Add(1))
}
