// Package search maps criterion names to book filters.
//
// A Strategy is a pure function over a slice of books. Strategies never call
// each other through the Registry; composite filters such as AnyOf combine
// the outputs of existing strategies instead.
package search

import (
	"errors"
	"fmt"
	"sort"

	"library/internal/entity"
)

var (
	// ErrUnknownCriterion is returned when no strategy is registered under a name.
	ErrUnknownCriterion = errors.New("unknown search criterion")
	// ErrEmptyCriterion is returned when registering a strategy without a name.
	ErrEmptyCriterion = errors.New("search criterion name is empty")
	// ErrNilStrategy is returned when registering a nil strategy.
	ErrNilStrategy = errors.New("search strategy is nil")
)

// Criterion names registered by NewDefaultRegistry.
const (
	CriterionTitle     = "title"
	CriterionAuthor    = "author"
	CriterionISBN      = "isbn"
	CriterionAvailable = "available"
	CriterionKeyword   = "keyword"
)

// Strategy filters books by query. Output order follows input order and the
// input slice is never modified.
type Strategy func(books []entity.Book, query string) []entity.Book

// Registry holds strategies by criterion name.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// NewDefaultRegistry returns a registry with the built-in criteria.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.strategies[CriterionTitle] = ByTitle
	r.strategies[CriterionAuthor] = ByAuthor
	r.strategies[CriterionISBN] = ByISBN
	r.strategies[CriterionAvailable] = ByAvailability
	r.strategies[CriterionKeyword] = ByKeyword
	return r
}

// Register adds or replaces the strategy stored under name.
func (r *Registry) Register(name string, s Strategy) error {
	if name == "" {
		return ErrEmptyCriterion
	}
	if s == nil {
		return fmt.Errorf("%w: %q", ErrNilStrategy, name)
	}
	r.strategies[name] = s
	return nil
}

// Search runs the strategy registered under name.
func (r *Registry) Search(name string, books []entity.Book, query string) ([]entity.Book, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
	}
	return s(books, query), nil
}

// Criteria returns the registered names in lexical order.
func (r *Registry) Criteria() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
