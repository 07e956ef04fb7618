package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Arg is one entry of an argument specification: a name, a symbol or a tuple of names.
type Arg interface {
	argNames() []string
}

// ArgName is a plain symbol name.
type ArgName string

func (n ArgName) argNames() []string { return []string{string(n)} }

func (s *Symbol) argNames() []string { return []string{s.Name()} }

// ArgTuple is a composite key whose names are expanded in place.
type ArgTuple []string

func (t ArgTuple) argNames() []string { return slices.Clone(t) }

// ArgSpec yields the ordered entries an expression is evaluated over.
type ArgSpec interface {
	Entries() []Arg
}

// ArgList is an ordered argument specification.
type ArgList []Arg

// Entries returns the list itself.
func (l ArgList) Entries() []Arg { return l }

// Names builds an ArgList of plain names.
func Names(names ...string) ArgList {
	out := make(ArgList, len(names))
	for i, n := range names {
		out[i] = ArgName(n)
	}
	return out
}

// ArgMap is a key-bearing argument specification that remembers insertion order.
// Only its keys take part in argument resolution.
type ArgMap[V any] struct {
	keys   []Arg
	index  map[string]int
	values []V
}

// NewArgMap creates an empty ArgMap.
func NewArgMap[V any]() *ArgMap[V] {
	return &ArgMap[V]{index: make(map[string]int)}
}

// Set stores v under key. Existing keys keep their position.
func (m *ArgMap[V]) Set(key Arg, v V) {
	id := argKeyID(key)
	if i, ok := m.index[id]; ok {
		m.values[i] = v
		return
	}
	m.index[id] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, v)
}

// Get returns the value stored under key.
func (m *ArgMap[V]) Get(key Arg) (V, bool) {
	i, ok := m.index[argKeyID(key)]
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

// Len returns the number of keys.
func (m *ArgMap[V]) Len() int { return len(m.keys) }

// Entries returns the keys in insertion order.
func (m *ArgMap[V]) Entries() []Arg { return slices.Clone(m.keys) }

func argKeyID(a Arg) string {
	prefix := "n:"
	if _, ok := a.(ArgTuple); ok {
		prefix = "t:"
	}
	return prefix + strings.Join(a.argNames(), "\x00")
}

// ResolveArgs flattens an argument specification into symbol names.
// Tuples are expanded in place, order is preserved and duplicates are kept.
// Nil entries are skipped.
func ResolveArgs(spec ArgSpec) []string {
	if spec == nil {
		return nil
	}
	var out []string
	for _, entry := range spec.Entries() {
		if entry == nil {
			continue
		}
		out = append(out, entry.argNames()...)
	}
	return out
}

// ArgKey is the canonical form of a resolved argument list: its names sorted.
type ArgKey string

const argKeySep = "\x00"

// CanonicalArgs returns the canonical key for names.
func CanonicalArgs(names []string) ArgKey {
	return ArgKey(strings.Join(SortedNames(names), argKeySep))
}

// Names returns the sorted names the key was built from.
func (k ArgKey) Names() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), argKeySep)
}

func (k ArgKey) String() string {
	return "(" + strings.Join(k.Names(), ", ") + ")"
}

// SortedNames returns a sorted copy of names.
func SortedNames(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return out
}

// Inputs maps symbol names to the arrays an evaluator is called with.
// Evaluators never modify the mapping they receive.
type Inputs map[string]Array

// Entries lets an input mapping act as an argument specification; keys are sorted.
func (in Inputs) Entries() []Arg {
	names := in.Names()
	out := make([]Arg, len(names))
	for i, n := range names {
		out[i] = ArgName(n)
	}
	return out
}

// Names returns the sorted input names.
func (in Inputs) Names() []string {
	return slices.Sorted(maps.Keys(in))
}

// Lookup returns the array supplied for name.
func (in Inputs) Lookup(name string) (Array, error) {
	a, ok := in[name]
	if !ok {
		return Array{}, zerr.With(ErrMissingInput, "name", name)
	}
	return a, nil
}

// Only returns a new mapping restricted to names.
func (in Inputs) Only(names []string) (Inputs, error) {
	out := make(Inputs, len(names))
	for _, n := range names {
		a, err := in.Lookup(n)
		if err != nil {
			return nil, err
		}
		out[n] = a
	}
	return out, nil
}

// First returns the input with the smallest name. It is the reference
// for the output shape of constant evaluators.
func (in Inputs) First() (Array, error) {
	if len(in) == 0 {
		return Array{}, ErrNoInputs
	}
	return in[slices.Min(slices.Collect(maps.Keys(in)))], nil
}
