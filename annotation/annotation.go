// SPDX-License-Identifier: MIT

package annotation

import "github.com/cockroachdb/errors"

// DefaultDataType is the datatype recorded when none is supplied.
const DefaultDataType = "xsd:string"

// Annotation is a single name/value metadata record. Nested annotations
// (annotations about the annotation) live in their own Set.
type Annotation struct {
	Name     string
	Value    string
	DataType string

	nested *Set
}

// New creates an annotation with the default datatype.
func New(name, value string) (*Annotation, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Annotation{Name: name, Value: value, DataType: DefaultDataType}, nil
}

// Annotations returns the nested Set, allocating it on first use.
func (a *Annotation) Annotations() *Set {
	if a.nested == nil {
		a.nested = NewSet()
	}

	return a.nested
}

// clone copies the record and every nested annotation.
func (a *Annotation) clone() *Annotation {
	out := &Annotation{Name: a.Name, Value: a.Value, DataType: a.DataType}
	if a.nested != nil && a.nested.Len() > 0 {
		out.nested = a.nested.Clone()
	}

	return out
}

// Set is an ordered bag of annotations.
// The zero value is ready to use; a nil *Set behaves as an empty, read-only bag.
type Set struct {
	items []*Annotation
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{} }

// Add appends a to the set.
func (s *Set) Add(a *Annotation) error {
	if a == nil {
		return ErrNilAnnotation
	}
	s.items = append(s.items, a)

	return nil
}

// AddNew creates an annotation and appends it.
func (s *Set) AddNew(name, value string) (*Annotation, error) {
	a, err := New(name, value)
	if err != nil {
		return nil, errors.Wrapf(err, "AddNew(%q)", name)
	}
	s.items = append(s.items, a)

	return a, nil
}

// Len reports the number of annotations; nil-safe.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Items returns the annotations in insertion order.
// The slice is a copy; the annotations are not.
func (s *Set) Items() []*Annotation {
	if s == nil {
		return nil
	}
	out := make([]*Annotation, len(s.items))
	copy(out, s.items)

	return out
}

// Find returns the first annotation named name.
func (s *Set) Find(name string) (*Annotation, bool) {
	if s == nil {
		return nil, false
	}
	for _, a := range s.items {
		if a.Name == name {
			return a, true
		}
	}

	return nil, false
}

// Values returns the values of every annotation named name, in order.
func (s *Set) Values(name string) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, a := range s.items {
		if a.Name == name {
			out = append(out, a.Value)
		}
	}

	return out
}

// Remove drops every annotation named name and reports how many were removed.
func (s *Set) Remove(name string) int {
	if s == nil {
		return 0
	}
	kept := s.items[:0]
	removed := 0
	for _, a := range s.items {
		if a.Name == name {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	// release dropped pointers held past the new length
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept

	return removed
}

// Clear removes all annotations.
func (s *Set) Clear() {
	if s == nil {
		return
	}
	s.items = nil
}

// Clone returns an independent deep copy of the set.
// Cloning a nil set yields an empty, non-nil set.
func (s *Set) Clone() *Set {
	out := NewSet()
	if s == nil {
		return out
	}
	out.items = make([]*Annotation, len(s.items))
	for i, a := range s.items {
		out.items[i] = a.clone()
	}

	return out
}
