package validator

import "strings"

// Set is an insertion-ordered collection of validators without duplicates.
// Membership follows Validator.Hash and Validator.Equal.
//
// A Set accepts a rune when any member accepts it; an empty Set accepts
// nothing. The zero value is an empty Set ready to use. Set is not safe for
// concurrent mutation.
type Set struct {
	members []Validator
	buckets map[uint64][]int
}

// NewSet returns a Set holding vs with duplicates removed.
func NewSet(vs ...Validator) *Set {
	s := &Set{}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
// Nil validators and nil pointers to the built-in variants are ignored;
// pointers to built-in variants are stored by value.
func (s *Set) Add(v Validator) bool {
	v = canonical(v)
	if v == nil || s.Contains(v) {
		return false
	}
	if s.buckets == nil {
		s.buckets = make(map[uint64][]int)
	}
	h := v.Hash()
	s.buckets[h] = append(s.buckets[h], len(s.members))
	s.members = append(s.members, v)
	return true
}

// Contains reports whether a validator equal to v is in the set.
func (s *Set) Contains(v Validator) bool {
	return s.indexOf(v) >= 0
}

// Remove deletes the member equal to v and reports whether one was found.
func (s *Set) Remove(v Validator) bool {
	i := s.indexOf(v)
	if i < 0 {
		return false
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	s.reindex()
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// Validators returns the members in insertion order.
func (s *Set) Validators() []Validator {
	if s == nil {
		return nil
	}
	out := make([]Validator, len(s.members))
	copy(out, s.members)
	return out
}

// Validate reports whether any member accepts r.
func (s *Set) Validate(r rune) bool {
	if s == nil {
		return false
	}
	for _, v := range s.members {
		if v.Validate(r) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same validators, in any order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, v := range s.Validators() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, v := range s.Validators() {
		parts = append(parts, v.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Set) indexOf(v Validator) int {
	v = canonical(v)
	if s == nil || v == nil {
		return -1
	}
	for _, i := range s.buckets[v.Hash()] {
		if s.members[i].Equal(v) {
			return i
		}
	}
	return -1
}

func (s *Set) reindex() {
	clear(s.buckets)
	for i, v := range s.members {
		h := v.Hash()
		s.buckets[h] = append(s.buckets[h], i)
	}
}
