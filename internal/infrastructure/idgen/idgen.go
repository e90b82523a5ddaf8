package idgen

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces ids for new records; ids are never reused.
type Generator interface {
	NextID() string
}

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) NextID() string {
	return uuid.New().String()
}

// Sequence yields "1", "2", ... for tests that need predictable ids.
type Sequence struct {
	mu   sync.Mutex
	next uint64
}

func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

func (g *Sequence) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := strconv.FormatUint(g.next, 10)
	g.next++
	return id
}
