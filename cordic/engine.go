// SPDX-License-Identifier: MIT

package cordic

import (
	"fmt"

	"github.com/katalvlaran/lvmath/num"
)

const panicIterationsInvalid = "cordic: WithIterations: n must be in [1, 16]"

// Option configures an Engine.
type Option func(*Engine)

// WithIterations sets the iteration count.
// Panics when n is outside [1, MaxIterations] (programmer error).
func WithIterations(n int) Option {
	if n < 1 || n > MaxIterations {
		panic(panicIterationsInvalid)
	}

	return func(e *Engine) { e.iterations = n }
}

// WithQuadrantFolding makes the engine fold |α| > π/2 onto α ∓ π before
// rotating, so results are accurate for every finite angle.
func WithQuadrantFolding() Option {
	return func(e *Engine) { e.fold = true }
}

// Engine is an immutable, reusable CORDIC configuration.
// It holds no per-call state and is safe to share.
type Engine struct {
	iterations int
	fold       bool
}

// New builds an Engine. Defaults: DefaultIterations, no folding
// (bit-identical to SinCos).
func New(opts ...Option) *Engine {
	e := &Engine{iterations: DefaultIterations}
	for _, set := range opts {
		set(e) // last-writer-wins
	}

	return e
}

// Iterations reports the configured iteration count.
func (e *Engine) Iterations() int { return e.iterations }

// Folding reports whether quadrant folding is enabled.
func (e *Engine) Folding() bool { return e.fold }

// SinCos returns (cos α, sin α).
func (e *Engine) SinCos(alpha num.Real) (cos, sin num.Real) {
	alpha = Reduce(alpha)
	if !e.fold {
		return rotate(alpha, e.iterations)
	}

	a, sign := fold(alpha)
	cos, sin = rotate(a, e.iterations)

	return sign * cos, sign * sin
}

// Sin returns sin α.
func (e *Engine) Sin(alpha num.Real) num.Real {
	_, s := e.SinCos(alpha)

	return s
}

// Cos returns cos α.
func (e *Engine) Cos(alpha num.Real) num.Real {
	c, _ := e.SinCos(alpha)

	return c
}

// String implements fmt.Stringer.
func (e *Engine) String() string {
	return fmt.Sprintf("cordic.Engine{iterations: %d, fold: %t}", e.iterations, e.fold)
}
