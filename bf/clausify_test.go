package bf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsClauseWithParts(t *testing.T, clauses []Clause, parts ...Part) bool {
	t.Helper()
	want := NewClause(parts...)
	for _, c := range clauses {
		if c.Equal(want) {
			return true
		}
	}
	return false
}

func TestClausifyEliminatesOneUnitClausePerTerm(t *testing.T) {
	// not(or(a, or(b, not(c)))) => {~a}, {~b}, {c}  (spec.md §8 scenario 6)
	f := Not(Or(Term("a"), Or(Term("b"), Not(Term("c")))))
	clauses := Clausify(f)

	require.Len(t, clauses, 3)
	assert.True(t, containsClauseWithParts(t, clauses, Neg("a")))
	assert.True(t, containsClauseWithParts(t, clauses, Neg("b")))
	assert.True(t, containsClauseWithParts(t, clauses, Pos("c")))
}

func TestClausifyDistributesOrOverAnd(t *testing.T) {
	// or(and(a, b), c) => {a, c}, {b, c}  (spec.md §8 scenario 7)
	f := Or(And(Term("a"), Term("b")), Term("c"))
	clauses := Clausify(f)

	require.Len(t, clauses, 2)
	assert.True(t, containsClauseWithParts(t, clauses, Pos("a"), Pos("c")))
	assert.True(t, containsClauseWithParts(t, clauses, Pos("b"), Pos("c")))
}

func TestClausifyDistributesOrOverTwoAnds(t *testing.T) {
	// or(and(a,b), and(c,d)) must yield four clauses (spec.md §9).
	f := Or(And(Term("a"), Term("b")), And(Term("c"), Term("d")))
	clauses := Clausify(f)

	require.Len(t, clauses, 4)
	assert.True(t, containsClauseWithParts(t, clauses, Pos("a"), Pos("c")))
	assert.True(t, containsClauseWithParts(t, clauses, Pos("a"), Pos("d")))
	assert.True(t, containsClauseWithParts(t, clauses, Pos("b"), Pos("c")))
	assert.True(t, containsClauseWithParts(t, clauses, Pos("b"), Pos("d")))
}

func TestClausifyEliminatesImplicationsAndBiconditionals(t *testing.T) {
	f := Iff(Term("a"), Term("b"))
	clauses := Clausify(f)

	// a <-> b == (~a \/ b) /\ (~b \/ a)
	require.Len(t, clauses, 2)
	assert.True(t, containsClauseWithParts(t, clauses, Neg("a"), Pos("b")))
	assert.True(t, containsClauseWithParts(t, clauses, Neg("b"), Pos("a")))
}

func TestClausifyIsIdentityOnPlainDisjunction(t *testing.T) {
	f := Or(Term("p"), Not(Term("q")))
	clauses := Clausify(f)

	require.Len(t, clauses, 1)
	assert.True(t, containsClauseWithParts(t, clauses, Pos("p"), Neg("q")))
}

func TestClausifyOfSingleTermIsOneUnitClause(t *testing.T) {
	clauses := Clausify(Term("hello"))
	require.Len(t, clauses, 1)
	assert.True(t, containsClauseWithParts(t, clauses, Pos("hello")))
}

func TestClausifyTotalityEveryPartIsALiteralFromInputAtoms(t *testing.T) {
	f := Implies(And(Term("p"), Term("q")), Or(Term("r"), Not(Term("s"))))
	clauses := Clausify(f)

	atoms := map[string]bool{"p": true, "q": true, "r": true, "s": true}
	for _, c := range clauses {
		require.NotEmpty(t, c.Parts)
		for _, p := range c.Parts {
			assert.True(t, atoms[p.Name], "unexpected atom %q", p.Name)
		}
	}
}

func TestEliminateImplicationsIsIdentityWithoutImpliesOrIff(t *testing.T) {
	f := And(Or(Term("a"), Not(Term("b"))), Term("c"))
	assert.Equal(t, f, eliminateImplications(f))
}

func TestPushNegationsPanicsOnSurvivingImplication(t *testing.T) {
	assert.Panics(t, func() {
		pushNegations(implies{Term("a"), Term("b")})
	})
}

func TestFlattenPanicsOnNonLiteralDisjunct(t *testing.T) {
	assert.Panics(t, func() {
		flatten(or{and{Term("a"), Term("b")}, Term("c")})
	})
}
