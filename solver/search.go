package solver

import (
	"github.com/ExcaliburZero/resolution-prover/bf"
	"github.com/google/uuid"
)

// Option configures a Resolve call.
type Option func(*config)

type config struct {
	logger  Tracer
	metrics *Stats
	onDone  []func()
}

// WithTracer attaches a Tracer that receives structured events for each
// seed chosen and each resolution step taken during search.
func WithTracer(t Tracer) Option {
	return func(c *config) { c.logger = t }
}

// WithStats attaches a Stats accumulator that is updated as the search
// runs, in place of (or in addition to) reading the Stats Resolve itself
// returns nothing for by default.
func WithStats(s *Stats) Option {
	return func(c *config) { c.metrics = s }
}

// Resolve reports whether goal is derivable from assumptions by
// resolution. It clausifies each assumption and the negated goal, then,
// for each clause of the negated goal in turn, searches for a refutation
// of the assumption clauses plus the other negated-goal clauses plus that
// seed clause. It returns true as soon as any seed's search derives the
// empty clause.
func Resolve(assumptions []bf.Formula, goal bf.Formula, opts ...Option) bool {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.metrics == nil {
		cfg.metrics = &Stats{}
	}
	defer func() {
		for _, fn := range cfg.onDone {
			fn()
		}
	}()

	base := NewStore()
	for _, a := range assumptions {
		base.PutAll(bf.Clausify(a))
	}

	negatedGoalClauses := bf.Clausify(bf.Not(goal))

	sessionID := uuid.New()
	trace(cfg.logger, "resolve.start", sessionID, map[string]interface{}{
		"assumptions":      len(assumptions),
		"negated_goal_cnf": len(negatedGoalClauses),
	})

	for _, seed := range negatedGoalClauses {
		cfg.metrics.NbSeeds++
		store := NewStore()
		for i := 0; i < base.Len(); i++ {
			store.Put(base.clauses[i])
		}
		for _, other := range negatedGoalClauses {
			if !other.Equal(seed) {
				store.Put(other)
			}
		}
		trace(cfg.logger, "resolve.seed", sessionID, map[string]interface{}{
			"seed": seed.String(),
		})
		if refute(store, seed, NewVisitedSet(seed), cfg, sessionID) {
			cfg.metrics.NbRefutations++
			trace(cfg.logger, "resolve.refuted", sessionID, nil)
			return true
		}
	}
	trace(cfg.logger, "resolve.exhausted", sessionID, nil)
	return false
}

// refute is the recursive search over a single seed: for each part of
// current, it looks for stored clauses containing the complementary part
// and, for each candidate, combines it with current. If the combination
// is the empty clause, a refutation has been found; otherwise the search
// continues from the resolvent, with the resolvent marked visited so that
// a stored clause equal to it is not picked as a candidate further down
// this branch. Only stored candidates are checked against visited: a
// resolvent derived again on the same branch is searched from again.
func refute(store *Store, current bf.Clause, visited *VisitedSet, cfg *config, sessionID uuid.UUID) bool {
	cfg.metrics.NbSteps++
	for _, p := range current.Parts {
		candidates := store.Get(p.Negate(), visited)
		for _, m := range candidates {
			next := combine(current, m)
			trace(cfg.logger, "resolve.combine", sessionID, map[string]interface{}{
				"current": current.String(),
				"with":    m.String(),
				"next":    next.String(),
			})
			if next.Empty() {
				return true
			}
			if refute(store, next, visited.With(next), cfg, sessionID) {
				return true
			}
		}
	}
	return false
}

// combine resolves a and b: it unions their parts, then removes every
// complementary pair (p from a, q from b with q == p.Negate()) found
// between the two clauses, simultaneously rather than one pair at a
// time. This is sound (it is equivalent to a chain of single-pair
// resolutions) and is the behavior the source this algorithm is modeled
// on actually implements.
func combine(a, b bf.Clause) bf.Clause {
	union := make(map[bf.Part]bool, len(a.Parts)+len(b.Parts))
	order := make([]bf.Part, 0, len(a.Parts)+len(b.Parts))
	add := func(p bf.Part) {
		if !union[p] {
			union[p] = true
			order = append(order, p)
		}
	}
	for _, p := range a.Parts {
		add(p)
	}
	for _, p := range b.Parts {
		add(p)
	}

	remove := make(map[bf.Part]bool)
	for _, ap := range a.Parts {
		for _, bp := range b.Parts {
			if ap.Negate() == bp {
				remove[ap] = true
				remove[bp] = true
			}
		}
	}

	result := make([]bf.Part, 0, len(order))
	for _, p := range order {
		if !remove[p] {
			result = append(result, p)
		}
	}
	return bf.Clause{Parts: result}
}
