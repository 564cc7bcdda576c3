package bf

import (
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure"
)

// Part is a clause part: an atom together with a polarity. Pos(name) and
// Neg(name) are its two constructors.
type Part struct {
	Name string
	Neg  bool
}

// Pos builds a positive clause part for the given atom.
func Pos(name string) Part {
	return Part{Name: name}
}

// Neg builds a negated clause part for the given atom.
func Neg(name string) Part {
	return Part{Name: name, Neg: true}
}

// Negate returns the complementary part: negating twice is the identity.
func (p Part) Negate() Part {
	return Part{Name: p.Name, Neg: !p.Neg}
}

func (p Part) String() string {
	if p.Neg {
		return "~" + p.Name
	}
	return p.Name
}

// Clause is a disjunction of Parts, interpreted as a multiset-by-
// specification, set-in-practice collection: two clauses are equal iff
// their parts are equal as sets (order and duplicate parts are ignored).
// The empty clause represents
// falsehood. Parts are kept in insertion order for deterministic
// iteration during search; Key canonicalizes them for hashing/equality.
type Clause struct {
	Parts []Part
}

// NewClause builds a clause from the given parts, preserving their order.
func NewClause(parts ...Part) Clause {
	return Clause{Parts: append([]Part(nil), parts...)}
}

// Empty reports whether the clause has no parts, i.e. is the empty clause.
func (c Clause) Empty() bool {
	return len(c.Parts) == 0
}

// canonical returns a sorted, de-duplicated copy of the clause's parts,
// used only to compute Key/Equal; the clause's own Parts field is left in
// insertion order.
func (c Clause) canonical() []Part {
	seen := make(map[Part]bool, len(c.Parts))
	uniq := make([]Part, 0, len(c.Parts))
	for _, p := range c.Parts {
		if !seen[p] {
			seen[p] = true
			uniq = append(uniq, p)
		}
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].Name != uniq[j].Name {
			return uniq[i].Name < uniq[j].Name
		}
		return !uniq[i].Neg && uniq[j].Neg
	})
	return uniq
}

// Key is a content hash of the clause, identical for clauses that are
// equal as sets of parts, regardless of insertion order or duplicates. It is computed with a real hashing library rather than a
// hand-rolled string join, per the "hash on content, not identity"
// requirement clauses are subject to.
func (c Clause) Key() (uint64, error) {
	h, err := hashstructure.Hash(c.canonical(), nil)
	if err != nil {
		return 0, err
	}
	return h, nil
}

// MustKey is Key, panicking on the (practically unreachable, since Part
// is a plain comparable struct) hashing error. Convenient for map keys in
// hot search code where plumbing an error return is unwarranted.
func (c Clause) MustKey() uint64 {
	k, err := c.Key()
	if err != nil {
		panic("bf: could not hash clause: " + err.Error())
	}
	return k
}

// Equal reports whether c and other contain the same parts as sets.
func (c Clause) Equal(other Clause) bool {
	return c.MustKey() == other.MustKey()
}

func (c Clause) String() string {
	if c.Empty() {
		return "⊥"
	}
	strs := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		strs[i] = p.String()
	}
	return "(" + strings.Join(strs, " \\/ ") + ")"
}
