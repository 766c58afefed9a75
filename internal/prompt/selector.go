package prompt

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"paragraph-byte/internal/domain"
)

// Selector picks a random topic for a difficulty and wraps it in the
// difficulty's length-constrained instruction template.
type Selector struct {
	catalog domain.PromptCatalog

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customizes a Selector.
type Option func(*Selector)

// WithSource replaces the random source, mostly for deterministic tests.
func WithSource(src rand.Source) Option {
	return func(s *Selector) {
		s.rng = rand.New(src)
	}
}

// WithCatalog replaces the built-in topic lists.
func WithCatalog(catalog domain.PromptCatalog) Option {
	return func(s *Selector) {
		s.catalog = catalog
	}
}

// NewSelector creates a Selector over the default catalog.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		catalog: domain.DefaultPromptCatalog(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select implements domain.PromptSelector. Difficulties without topics
// fall back to the easy pool, so the result is never empty.
func (s *Selector) Select(difficulty domain.Difficulty) string {
	topics := s.catalog[difficulty]
	template, ok := domain.PromptTemplates[difficulty]
	if len(topics) == 0 || !ok {
		difficulty = domain.DifficultyEasy
		topics = s.catalog[difficulty]
		template = domain.PromptTemplates[difficulty]
	}
	if len(topics) == 0 {
		topics = domain.DefaultPromptCatalog()[difficulty]
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(topics))
	s.mu.Unlock()

	return fmt.Sprintf(template, topics[idx])
}

var _ domain.PromptSelector = (*Selector)(nil)
