// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the rotation builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes which trig source fills a rotation.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/cordic"
	"github.com/katalvlaran/lvmath/num"
)

// TrigFunc returns (sin α, cos α). It must be pure.
type TrigFunc func(alpha num.Real) (sin, cos num.Real)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTrig names the trig source used when no option is given.
	DefaultTrig = TrigNative

	// DefaultCORDICIterations is the iteration count of WithCORDIC(0).
	DefaultCORDICIterations = cordic.DefaultIterations
)

// TrigSource identifies where rotation builders get sine and cosine from.
type TrigSource int

const (
	// TrigNative uses math.Sincos.
	TrigNative TrigSource = iota
	// TrigCORDIC uses a quadrant-folded cordic.Engine.
	TrigCORDIC
	// TrigCustom uses a caller-supplied TrigFunc.
	TrigCustom
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCORDICIterations = "matrix: WithCORDIC: iterations must be 0 (default) or in [1, 16]"
	panicNilTrig          = "matrix: WithTrig: nil TrigFunc"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	source TrigSource
	trig   TrigFunc
}

// Source reports which trig source the options resolved to.
func (o Options) Source() TrigSource { return o.source }

// SinCos evaluates the configured trig source and returns (sin, cos).
func (o Options) SinCos(alpha num.Real) (sin, cos num.Real) { return o.trig(alpha) }

// WithNativeTrig selects math.Sincos (the default on hosted targets).
func WithNativeTrig() Option {
	return func(o *Options) {
		o.source = TrigNative
		o.trig = nativeSinCos
	}
}

// WithCORDIC selects the CORDIC engine with quadrant folding.
// Implementation:
//   - Stage 1: validate iterations (0 means DefaultCORDICIterations).
//   - Stage 2: build one immutable cordic.Engine and capture it.
//
// Errors:
//   - Panics with a stable message when iterations is outside [0, 16].
//
// AI-Hints:
//   - Build the Option once and reuse it across many rotations.
func WithCORDIC(iterations int) Option {
	if iterations == 0 {
		iterations = DefaultCORDICIterations
	}
	if iterations < 1 || iterations > cordic.MaxIterations {
		panic(panicCORDICIterations)
	}

	e := cordic.New(cordic.WithIterations(iterations), cordic.WithQuadrantFolding())

	return func(o *Options) {
		o.source = TrigCORDIC
		o.trig = func(alpha num.Real) (num.Real, num.Real) {
			c, s := e.SinCos(alpha)

			return s, c
		}
	}
}

// WithTrig installs a custom sine/cosine routine. Panics on nil.
func WithTrig(f TrigFunc) Option {
	if f == nil {
		panic(panicNilTrig)
	}

	return func(o *Options) {
		o.source = TrigCustom
		o.trig = f
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
func gatherOptions(user ...Option) Options {
	o := Options{source: DefaultTrig, trig: nativeSinCos}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

func nativeSinCos(alpha num.Real) (num.Real, num.Real) {
	s, c := math.Sincos(float64(alpha))

	return num.Real(s), num.Real(c)
}
