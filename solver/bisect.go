/*
Package solver provides generic numeric inversion of monotonic functions.

PURPOSE:
  Several salary regimes have forward functions (gross -> net) with no
  closed-form inverse: phase-out allowances and progressive bracket
  schedules make them piecewise and non-affine. This package inverts
  them numerically, treating the forward function as a black box.

KEY CONCEPTS:
  - Func: a real-valued function assumed non-decreasing on the bracket
  - Bisect: halve a bracketing interval until the target is matched
    within tolerance, or the iteration cap is reached
  - Result: the root plus convergence metadata; never an error

DESIGN PRINCIPLES:
  1. Best effort: the search never fails. If the cap is reached, the
     last midpoint is returned with Converged=false and the caller
     decides whether currency-precision approximation is acceptable.
  2. Determinism: no randomness, no retries; at most MaxIterations
     evaluations of f, which bounds worst-case latency exactly.
  3. Precision: operates on decimal.Decimal end to end, so repeated
     halving never accumulates binary floating-point error.

USAGE:
  res := solver.Bisect(forwardNet, target, low, high, solver.DefaultConfig())
  gross := res.Root
  if !res.Converged { ... surface as a warning ... }

SEE ALSO:
  - tax/invert.go: wires each jurisdiction's forward function into Bisect
*/
package solver

import (
	"github.com/shopspring/decimal"
)

// Func is a real-valued function of one variable, assumed non-decreasing
// over the bracket it is searched on.
type Func func(x decimal.Decimal) decimal.Decimal

// Config controls the termination of a bisection search. Zero values
// select the defaults, so a zero-value Config is usable as-is.
type Config struct {
	// Tolerance is the acceptable |f(mid) - target| for early exit.
	// Zero means the 0.01 default; an exact-match search is not
	// expressible (it would almost never terminate early and the
	// iteration cap already bounds the residual).
	Tolerance decimal.Decimal

	// MaxIterations caps the number of function evaluations.
	// Zero or negative means the default of 50.
	MaxIterations int
}

// DefaultConfig returns the standard search parameters: currency-unit
// tolerance (0.01) and a 50-iteration cap. Halving a bracket 50 times
// shrinks it by a factor of 2^50, far below any payroll precision.
func DefaultConfig() Config {
	return Config{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 50,
	}
}

// Result is the outcome of a bisection search.
type Result struct {
	// Root is the best x found. Valid even when Converged is false.
	Root decimal.Decimal

	// Converged reports whether |f(Root) - target| < Tolerance was
	// observed before the iteration cap.
	Converged bool

	// Iterations is the number of function evaluations performed.
	Iterations int
}

// Bisect searches [low, high] for x such that f(x) is within
// cfg.Tolerance of target, assuming f is non-decreasing on the bracket.
//
// Each iteration evaluates f at the bracket midpoint and keeps the half
// that still contains the target. The search exits early as soon as the
// tolerance is met; otherwise it runs cfg.MaxIterations iterations and
// returns the last midpoint with Converged=false.
//
// A degenerate bracket (low == high) terminates on the first evaluation:
// the midpoint cannot move, so the first f(mid) either meets the
// tolerance or nothing will.
func Bisect(f Func, target, low, high decimal.Decimal, cfg Config) Result {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	if cfg.Tolerance.IsZero() {
		cfg.Tolerance = DefaultConfig().Tolerance
	}

	two := decimal.NewFromInt(2)
	mid := low

	for i := 1; i <= cfg.MaxIterations; i++ {
		mid = low.Add(high).Div(two)
		got := f(mid)

		if got.Sub(target).Abs().LessThan(cfg.Tolerance) {
			return Result{Root: mid, Converged: true, Iterations: i}
		}

		if got.GreaterThan(target) {
			high = mid
		} else {
			low = mid
		}

		// Bracket collapsed: further iterations re-evaluate the same point.
		if low.Equal(high) {
			return Result{Root: mid, Converged: false, Iterations: i}
		}
	}

	return Result{Root: mid, Converged: false, Iterations: cfg.MaxIterations}
}
