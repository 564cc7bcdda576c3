// Package solver implements the resolution search engine: a clause store
// with an inverted literal index, and a recursive refutation search that
// derives the empty clause from a set of clauses.
package solver

import "github.com/ExcaliburZero/resolution-prover/bf"

// Store is a mutable collection of clauses accompanied by an inverted
// index mapping each literal to the clauses that contain it. For every
// clause c at some index i and every part p in c, index[p] contains i;
// the index contains no other entries.
type Store struct {
	clauses []bf.Clause
	index   map[bf.Part][]int
}

// NewStore returns an empty clause store.
func NewStore() *Store {
	return &Store{index: make(map[bf.Part][]int)}
}

// Put appends c to the store and records its index under every part it
// contains. It does not deduplicate against clauses already present: the
// store is a sequence of inserted clauses, and insertion order is what
// Get returns candidates in.
func (s *Store) Put(c bf.Clause) {
	idx := len(s.clauses)
	s.clauses = append(s.clauses, c)
	for _, p := range c.Parts {
		s.index[p] = append(s.index[p], idx)
	}
}

// PutAll inserts every clause in cs, in order.
func (s *Store) PutAll(cs []bf.Clause) {
	for _, c := range cs {
		s.Put(c)
	}
}

// Get returns the clauses containing part p, excluding any clause whose
// key is present in visited, in insertion order.
func (s *Store) Get(p bf.Part, visited *VisitedSet) []bf.Clause {
	idxs := s.index[p]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]bf.Clause, 0, len(idxs))
	for _, i := range idxs {
		c := s.clauses[i]
		if visited.Contains(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Len returns the number of clauses currently stored.
func (s *Store) Len() int {
	return len(s.clauses)
}

// VisitedSet suppresses re-exploration of a clause along a single search
// branch. Clauses are keyed on content (Clause.Key), not identity, since
// resolvents produced during search are structurally fresh values that
// must still compare equal to identical clauses seen earlier.
type VisitedSet struct {
	keys map[uint64]bf.Clause
}

// NewVisitedSet returns a visited set seeded with the given clauses.
func NewVisitedSet(seed ...bf.Clause) *VisitedSet {
	v := &VisitedSet{keys: make(map[uint64]bf.Clause, len(seed))}
	for _, c := range seed {
		v.Add(c)
	}
	return v
}

// Add records c as visited.
func (v *VisitedSet) Add(c bf.Clause) {
	v.keys[c.MustKey()] = c
}

// Contains reports whether c has already been visited.
func (v *VisitedSet) Contains(c bf.Clause) bool {
	_, ok := v.keys[c.MustKey()]
	return ok
}

// With returns a copy of v with c additionally marked visited. The
// visited set is logically immutable along each recursion path: branches
// that diverge from a common ancestor must not see each other's
// additions, so refute copies on branch rather than mutating in place.
func (v *VisitedSet) With(c bf.Clause) *VisitedSet {
	next := &VisitedSet{keys: make(map[uint64]bf.Clause, len(v.keys)+1)}
	for k, vc := range v.keys {
		next.keys[k] = vc
	}
	next.Add(c)
	return next
}
