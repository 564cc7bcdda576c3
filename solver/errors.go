package solver

import (
	"fmt"

	"github.com/ExcaliburZero/resolution-prover/bf"
	"github.com/pkg/errors"
)

// SafeResolve wraps Resolve, recovering a panic raised by an internal-
// inconsistency condition (see bf.Clausify's documentation) and
// reporting it as a wrapped error instead of propagating the panic to
// the caller. Resolve's own contract is unchanged: a well-formed
// assumption/goal set still never panics, so SafeResolve is purely a
// defensive boundary for a host process that would rather log-and-
// continue than crash on a prover bug.
func SafeResolve(assumptions []bf.Formula, goal bf.Formula, opts ...Option) (provable bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(fmt.Errorf("%v", r), "solver: internal inconsistency during resolve")
		}
	}()
	return Resolve(assumptions, goal, opts...), nil
}
