// Package bf provides the propositional formula algebra and the
// clausifier that rewrites an arbitrary formula into conjunctive normal
// form as a set of clauses.
package bf

// A Formula is any propositional formula, not necessarily in CNF.
// Formulas are immutable trees built exclusively through the constructors
// below; equality is structural.
type Formula interface {
	formula()
	String() string
}

// Term generates an atomic formula naming the given atom.
func Term(name string) Formula {
	return term(name)
}

// Not negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

// And generates the conjunction of the two subformulas.
func And(a, b Formula) Formula {
	return and{a, b}
}

// Or generates the disjunction of the two subformulas.
func Or(a, b Formula) Formula {
	return or{a, b}
}

// Implies generates the material implication a -> b.
func Implies(a, b Formula) Formula {
	return implies{a, b}
}

// Iff generates the biconditional a <-> b.
func Iff(a, b Formula) Formula {
	return iff{a, b}
}

type term string

func (term) formula()      {}
func (t term) String() string { return string(t) }

type not [1]Formula

func (not) formula() {}
func (n not) String() string {
	return "~(" + n[0].String() + ")"
}

type and [2]Formula

func (and) formula() {}
func (a and) String() string {
	return a[0].String() + " /\\ " + a[1].String()
}

type or [2]Formula

func (or) formula() {}
func (o or) String() string {
	return o[0].String() + " \\/ " + o[1].String()
}

type implies [2]Formula

func (implies) formula() {}
func (i implies) String() string {
	return i[0].String() + " -> " + i[1].String()
}

type iff [2]Formula

func (iff) formula() {}
func (i iff) String() string {
	return i[0].String() + " <-> " + i[1].String()
}
