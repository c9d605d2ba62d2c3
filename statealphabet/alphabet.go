// SPDX-License-Identifier: MIT

package statealphabet

import (
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
)

// StateKind classifies a State.
type StateKind int

const (
	// Fundamental is a single, directly observable state.
	Fundamental StateKind = iota
	// Ambiguous denotes one (unknown) member of a set of fundamental states.
	Ambiguous
)

// String implements fmt.Stringer.
func (k StateKind) String() string {
	if k == Ambiguous {
		return "ambiguous"
	}

	return "fundamental"
}

// State is one identity of an Alphabet.
type State struct {
	Symbol string
	Kind   StateKind

	index    int
	members  []*State
	alphabet *Alphabet
}

// String returns the state symbol.
func (s *State) String() string { return s.Symbol }

// Index is the 0-based registration position inside the owning alphabet.
func (s *State) Index() int { return s.index }

// Alphabet returns the alphabet that owns s.
func (s *State) Alphabet() *Alphabet { return s.alphabet }

// Members returns the fundamental states an ambiguous state resolves to.
// A fundamental state resolves to itself.
func (s *State) Members() []*State {
	if s.Kind == Fundamental {
		return []*State{s}
	}
	out := make([]*State, len(s.members))
	copy(out, s.members)

	return out
}

// Option configures an Alphabet at construction.
type Option func(*Alphabet)

// WithCaseSensitive controls whether symbol lookup respects case.
// Molecular alphabets are case-insensitive; standard alphabets default to
// case-sensitive.
func WithCaseSensitive(on bool) Option {
	return func(a *Alphabet) { a.caseSensitive = on }
}

// WithGap records which symbol denotes the gap state once it is registered.
func WithGap(symbol string) Option {
	if symbol == "" {
		panic("statealphabet: WithGap(\"\")")
	}

	return func(a *Alphabet) { a.gapSymbol = symbol }
}

// WithMissing records which symbol denotes missing data once it is registered.
func WithMissing(symbol string) Option {
	if symbol == "" {
		panic("statealphabet: WithMissing(\"\")")
	}

	return func(a *Alphabet) { a.missingSymbol = symbol }
}

// Alphabet is an ordered vocabulary of states addressable by symbol.
type Alphabet struct {
	label         string
	caseSensitive bool
	frozen        bool
	gapSymbol     string
	missingSymbol string

	states   []*State
	bySymbol map[string]*State
}

// New creates an empty, mutable alphabet.
func New(label string, opts ...Option) *Alphabet {
	a := &Alphabet{
		label:         label,
		caseSensitive: true,
		bySymbol:      make(map[string]*State),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Label returns the alphabet name.
func (a *Alphabet) Label() string { return a.label }

// CaseSensitive reports the symbol matching policy.
func (a *Alphabet) CaseSensitive() bool { return a.caseSensitive }

// Frozen reports whether the alphabet rejects further registration.
func (a *Alphabet) Frozen() bool { return a.frozen }

// Freeze makes the alphabet immutable.
func (a *Alphabet) Freeze() { a.frozen = true }

// Len returns the number of registered states.
func (a *Alphabet) Len() int { return len(a.states) }

func (a *Alphabet) key(symbol string) string {
	if a.caseSensitive {
		return symbol
	}

	return cases.Fold().String(symbol)
}

// AddFundamental registers a fundamental state.
func (a *Alphabet) AddFundamental(symbol string) (*State, error) {
	return a.add(symbol, Fundamental, nil)
}

// AddAmbiguous registers an ambiguous state resolving to the fundamental
// states denoted by memberSymbols. Every member must already be registered.
func (a *Alphabet) AddAmbiguous(symbol string, memberSymbols ...string) (*State, error) {
	members := make([]*State, 0, len(memberSymbols))
	for _, ms := range memberSymbols {
		m, err := a.Lookup(ms)
		if err != nil {
			return nil, errors.Wrapf(err, "AddAmbiguous(%q)", symbol)
		}
		members = append(members, m.Members()...)
	}

	return a.add(symbol, Ambiguous, members)
}

func (a *Alphabet) add(symbol string, kind StateKind, members []*State) (*State, error) {
	if a.frozen {
		return nil, errors.Wrapf(ErrFrozen, "alphabet %q", a.label)
	}
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	k := a.key(symbol)
	if _, dup := a.bySymbol[k]; dup {
		return nil, errors.Wrapf(ErrDuplicateSymbol, "alphabet %q: %q", a.label, symbol)
	}
	s := &State{Symbol: symbol, Kind: kind, index: len(a.states), members: members, alphabet: a}
	a.states = append(a.states, s)
	a.bySymbol[k] = s

	return s, nil
}

// State returns the state denoted by symbol.
func (a *Alphabet) State(symbol string) (*State, bool) {
	s, ok := a.bySymbol[a.key(symbol)]

	return s, ok
}

// Lookup is State with an error result carrying ErrSymbolNotFound.
func (a *Alphabet) Lookup(symbol string) (*State, error) {
	if s, ok := a.State(symbol); ok {
		return s, nil
	}

	return nil, errors.Wrapf(ErrSymbolNotFound, "alphabet %q: symbol %q", a.label, symbol)
}

// Has reports whether s belongs to this alphabet (identity, not symbol).
func (a *Alphabet) Has(s *State) bool {
	return s != nil && s.alphabet == a
}

// States returns every state in registration order.
func (a *Alphabet) States() []*State {
	out := make([]*State, len(a.states))
	copy(out, a.states)

	return out
}

// FundamentalStates returns the fundamental states in registration order.
func (a *Alphabet) FundamentalStates() []*State {
	var out []*State
	for _, s := range a.states {
		if s.Kind == Fundamental {
			out = append(out, s)
		}
	}

	return out
}

// Symbols returns every symbol in registration order.
func (a *Alphabet) Symbols() []string {
	out := make([]string, len(a.states))
	for i, s := range a.states {
		out[i] = s.Symbol
	}

	return out
}

// SymbolStateMap returns a fresh symbol → state map.
func (a *Alphabet) SymbolStateMap() map[string]*State {
	out := make(map[string]*State, len(a.states))
	for _, s := range a.states {
		out[s.Symbol] = s
	}

	return out
}

// Gap returns the gap state, if the alphabet defines one.
func (a *Alphabet) Gap() (*State, bool) {
	if a.gapSymbol == "" {
		return nil, false
	}

	return a.State(a.gapSymbol)
}

// Missing returns the missing-data state, if the alphabet defines one.
func (a *Alphabet) Missing() (*State, bool) {
	if a.missingSymbol == "" {
		return nil, false
	}

	return a.State(a.missingSymbol)
}

// String implements fmt.Stringer.
func (a *Alphabet) String() string {
	return a.label + "{" + strings.Join(a.Symbols(), "") + "}"
}
