package ocp

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrPolicyExists is returned when registering a policy under a taken name.
var ErrPolicyExists = errors.New("discount policy already registered")

// DiscountPolicy prices a book. New pricing rules are new implementations,
// not edits to existing ones.
type DiscountPolicy interface {
	// Apply returns the discounted price in cents.
	Apply(b Book) int
}

// DiscountFunc adapts a function to the DiscountPolicy interface.
type DiscountFunc func(Book) int

func (f DiscountFunc) Apply(b Book) int { return f(b) }

// PolicyRegistry holds named discount policies. The registry itself never
// changes when a new policy arrives; callers register extensions.
type PolicyRegistry struct {
	mu       sync.RWMutex
	policies map[string]DiscountPolicy
}

// NewPolicyRegistry creates an empty registry.
func NewPolicyRegistry() *PolicyRegistry {
	return &PolicyRegistry{policies: make(map[string]DiscountPolicy)}
}

// Register adds a policy under name. Registering a taken name is an error so
// an extension cannot silently replace depended-upon behavior.
func (r *PolicyRegistry) Register(name string, p DiscountPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.policies[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrPolicyExists)
	}
	r.policies[name] = p

	return nil
}

// Price applies the named policy to the book, falling back to list price when
// the name is unknown.
func (r *PolicyRegistry) Price(name string, b Book) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[name]
	if !ok {
		return b.Price()
	}

	return p.Apply(b)
}

// Names returns the registered policy names, sorted.
func (r *PolicyRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
