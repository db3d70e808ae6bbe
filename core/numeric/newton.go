// Package numeric holds the root finders behind the cable solver.
package numeric

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrNoConvergence  = errors.New("numeric: no convergence")
	ErrZeroDerivative = errors.New("numeric: derivative is zero")
	ErrNoBracket      = errors.New("numeric: root is not bracketed")
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

type Options struct {
	Tol     float64 // absolute step tolerance
	MaxIter int
}

// DefaultOptions mirror the usual Newton defaults (tol 1.48e-8, 50 iterations).
var DefaultOptions = Options{Tol: 1.48e-8, MaxIter: 50}

func options(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions
	}
	o := opts[0]
	if o.Tol <= 0 {
		o.Tol = DefaultOptions.Tol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultOptions.MaxIter
	}
	return o
}

// Newton finds a root of f with derivative df starting at x0.
func Newton(f, df Func, x0 float64, opts ...Options) (float64, error) {
	o := options(opts)

	x := x0
	for i := 0; i < o.MaxIter; i++ {
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		d := df(x)
		if d == 0 {
			return x, errors.Wrapf(ErrZeroDerivative, "at x=%g", x)
		}
		next := x - fx/d
		if !isFinite(next) {
			return x, errors.Wrapf(ErrNoConvergence, "diverged after %d iterations", i+1)
		}
		if math.Abs(next-x) < o.Tol {
			return next, nil
		}
		x = next
	}
	return x, errors.Wrapf(ErrNoConvergence, "after %d iterations", o.MaxIter)
}

// NewtonBracket is Newton's method safeguarded by bisection: f(lo) and f(hi)
// must have opposite signs, and every iterate stays inside [lo, hi].
func NewtonBracket(f, df Func, lo, hi float64, opts ...Options) (float64, error) {
	o := options(opts)
	flo, fhi := f(lo), f(hi)
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case (flo > 0) == (fhi > 0):
		return 0, errors.Wrapf(ErrNoBracket, "f(%g)=%g, f(%g)=%g", lo, flo, hi, fhi)
	}
	// orient the search so that f(lo) < 0
	if flo > 0 {
		lo, hi = hi, lo
	}

	x := 0.5 * (lo + hi)
	dxOld := math.Abs(hi - lo)
	dx := dxOld
	fx, dfx := f(x), df(x)
	for i := 0; i < o.MaxIter; i++ {
		outside := ((x-hi)*dfx-fx)*((x-lo)*dfx-fx) > 0
		slow := math.Abs(2*fx) > math.Abs(dxOld*dfx)
		if outside || slow {
			dxOld = dx
			dx = 0.5 * (hi - lo)
			x = lo + dx
		} else {
			dxOld = dx
			dx = fx / dfx
			x -= dx
		}
		if math.Abs(dx) < o.Tol {
			return x, nil
		}
		fx, dfx = f(x), df(x)
		if fx == 0 {
			return x, nil
		}
		if fx < 0 {
			lo = x
		} else {
			hi = x
		}
	}
	return x, errors.Wrapf(ErrNoConvergence, "after %d iterations", o.MaxIter)
}

// Bracket widens [center-width, center+width] until f changes sign across it.
func Bracket(f Func, center, width float64, maxExpand int) (lo, hi float64, err error) {
	lo, hi = center-width, center+width
	for i := 0; i <= maxExpand; i++ {
		flo, fhi := f(lo), f(hi)
		if !isFinite(flo) || !isFinite(fhi) {
			break
		}
		if (flo > 0) != (fhi > 0) || flo == 0 || fhi == 0 {
			return lo, hi, nil
		}
		width *= 2
		lo, hi = center-width, center+width
	}
	return lo, hi, errors.Wrapf(ErrNoBracket, "around %g", center)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
