package solver

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Tracer receives structured events describing a Resolve call's progress:
// the seed chosen for each negated-goal clause, and each combine step
// taken while searching that seed. It generalizes the teacher engine's
// Verbose-gated progress printing into leveled, structured logging.
type Tracer = hclog.Logger

// NewTracer returns a Tracer that logs at Trace level under the given
// name, suitable for passing to WithTracer. Callers that already have an
// hclog.Logger configured for their process can pass it to WithTracer
// directly instead.
func NewTracer(name string) Tracer {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.Trace,
	})
}

// trace is a no-op when t is nil, so WithTracer is optional: by default
// Resolve does no logging at all, matching the teacher's Verbose
// defaulting to false.
func trace(t Tracer, event string, sessionID uuid.UUID, fields map[string]interface{}) {
	if t == nil {
		return
	}
	args := make([]interface{}, 0, 2+2*len(fields))
	args = append(args, "session", sessionID.String())
	for k, v := range fields {
		args = append(args, k, v)
	}
	t.Trace(event, args...)
}
