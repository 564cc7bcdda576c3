package bf

// Clausify rewrites f into conjunctive normal form and returns the
// resulting clauses. It is total and never fails on a well-formed
// Formula: eliminateImplications, pushNegations, distribute and flatten
// run in order, each a pure function on formulas.
func Clausify(f Formula) []Clause {
	noImplications := eliminateImplications(f)
	nnf := pushNegations(noImplications)
	cnf := distribute(nnf)
	return flatten(cnf)
}

// eliminateImplications is stage 1: it rewrites every Implies/Iff node,
// bottom-up, into Or/And/Not. Iff(a, b) becomes the conjunction of both
// directions of the implication, which are then themselves eliminated by
// recursing into the freshly built Implies nodes (rather than being left
// as Implies), so the result contains neither node type.
func eliminateImplications(f Formula) Formula {
	switch f := f.(type) {
	case term:
		return f
	case not:
		return not{eliminateImplications(f[0])}
	case and:
		return and{eliminateImplications(f[0]), eliminateImplications(f[1])}
	case or:
		return or{eliminateImplications(f[0]), eliminateImplications(f[1])}
	case implies:
		a := eliminateImplications(f[0])
		b := eliminateImplications(f[1])
		return or{not{a}, b}
	case iff:
		a := eliminateImplications(f[0])
		b := eliminateImplications(f[1])
		return eliminateImplications(and{implies{a, b}, implies{b, a}})
	default:
		panic("bf: eliminateImplications: unrecognized formula node")
	}
}

// pushNegations is stage 2: it drives negation inward until it applies
// only directly to a Term, i.e. negation normal form. Encountering an
// Implies or Iff node here means stage 1 is buggy: it is a programming
// error, not a condition that can arise on valid input.
func pushNegations(f Formula) Formula {
	switch f := f.(type) {
	case term:
		return f
	case and:
		return and{pushNegations(f[0]), pushNegations(f[1])}
	case or:
		return or{pushNegations(f[0]), pushNegations(f[1])}
	case not:
		return pushNegationsNot(f[0])
	case implies, iff:
		panic("bf: pushNegations: implies/iff survived implication elimination")
	default:
		panic("bf: pushNegations: unrecognized formula node")
	}
}

// pushNegationsNot handles Not(inner), i.e. it is reduce_negation applied
// to a formula already known to be a negation.
func pushNegationsNot(inner Formula) Formula {
	switch inner := inner.(type) {
	case term:
		return not{inner}
	case not:
		return pushNegations(inner[0])
	case and:
		return or{pushNegationsNot(inner[0]), pushNegationsNot(inner[1])}
	case or:
		return and{pushNegationsNot(inner[0]), pushNegationsNot(inner[1])}
	case implies, iff:
		panic("bf: pushNegations: implies/iff survived implication elimination")
	default:
		panic("bf: pushNegations: unrecognized formula node")
	}
}

// distribute is stage 3: it rewrites an NNF formula into CNF shape, where
// every And dominates every Or, by repeatedly applying the distributive
// law to a fixed point. Each conjunct/disjunct is re-normalised bottom-up
// after a rewrite, since distributing at the root can expose further
// distribution opportunities inside the freshly built sub-results.
func distribute(f Formula) Formula {
	switch f := f.(type) {
	case term, not:
		return f
	case and:
		return and{distribute(f[0]), distribute(f[1])}
	case or:
		return distributeOr(distribute(f[0]), distribute(f[1]))
	default:
		panic("bf: distribute: unrecognized formula node")
	}
}

// distributeOr combines two already-distributed formulas under an Or,
// applying the distributive law if either side is an And, and
// re-normalising the result so any And/Or pattern the rewrite exposed is
// itself distributed. Ties (both sides And) prefer left-distribution; the
// result is equivalent up to associativity/commutativity of And.
func distributeOr(a, b Formula) Formula {
	switch a := a.(type) {
	case and:
		return and{
			distribute(or{a[0], b}),
			distribute(or{a[1], b}),
		}
	}
	switch b := b.(type) {
	case and:
		return and{
			distribute(or{a, b[0]}),
			distribute(or{a, b[1]}),
		}
	}
	return or{a, b}
}

// flatten is stage 4: it splits the CNF tree on And into clauses, and
// each clause's disjunctive formula into the Parts that make it up. Any
// leaf that is not a Term or Not(Term), or any non-Or/And/Not/Term node
// reached here, indicates a bug in an earlier stage.
func flatten(f Formula) []Clause {
	var clauses []Clause
	for _, disjunction := range splitConjuncts(f) {
		clauses = append(clauses, Clause{Parts: collectParts(disjunction)})
	}
	return clauses
}

func splitConjuncts(f Formula) []Formula {
	if a, ok := f.(and); ok {
		return append(splitConjuncts(a[0]), splitConjuncts(a[1])...)
	}
	return []Formula{f}
}

func collectParts(f Formula) []Part {
	switch f := f.(type) {
	case or:
		return append(collectParts(f[0]), collectParts(f[1])...)
	case term:
		return []Part{Pos(string(f))}
	case not:
		if t, ok := f[0].(term); ok {
			return []Part{Neg(string(t))}
		}
		panic("bf: flatten: clause disjunct is not a literal")
	default:
		panic("bf: flatten: clause disjunct is not a literal")
	}
}
