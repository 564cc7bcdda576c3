package bf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartNegateIsInvolution(t *testing.T) {
	p := Pos("a")
	assert.Equal(t, Neg("a"), p.Negate())
	assert.Equal(t, p, p.Negate().Negate())
}

func TestClauseEqualityIsSetEquality(t *testing.T) {
	c1 := NewClause(Pos("a"), Neg("b"))
	c2 := NewClause(Neg("b"), Pos("a"))
	c3 := NewClause(Pos("a"), Neg("b"), Pos("a"))

	assert.True(t, c1.Equal(c2), "order must not matter")
	assert.True(t, c1.Equal(c3), "duplicate parts must not matter")

	c4 := NewClause(Pos("a"), Pos("b"))
	assert.False(t, c1.Equal(c4))
}

func TestClauseKeyIsDeterministic(t *testing.T) {
	c := NewClause(Pos("x"), Neg("y"))
	k1, err := c.Key()
	require.NoError(t, err)
	k2, err := c.Key()
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
}

func TestClauseStringRendersEmptyAsFalsehood(t *testing.T) {
	empty := Clause{}
	assert.True(t, empty.Empty())
	if diff := cmp.Diff("⊥", empty.String()); diff != "" {
		t.Errorf("unexpected empty clause rendering (-want +got):\n%s", diff)
	}
}
