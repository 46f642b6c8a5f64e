// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is adapted from https://github.com/robpike/ivy/blob/master/value/loop.go.

package bignum

import (
	"github.com/pkg/errors"
)

type loop struct {
	c             *Context
	name          string  // The name of the function we are evaluating.
	i             uint64  // Loop count.
	maxIterations uint64  // When to give up.
	stallCount    int     // Iterations since |delta| changed more than threshold.
	arg           Decimal // original argument to function; only used for diagnostic.
	prevZ         Decimal // Result from the previous iteration.
	delta         Decimal // |Change| from previous iteration.
	prevDelta     Decimal // The maximum |delta| to be considered a stall.
}

// newLoop returns a new loop checker. The arguments are the name
// of the function being evaluated, the argument to the function, and
// the maximum number of iterations to perform before giving up.
// The last number in terms of iterations per digit, so the caller can
// ignore the precision setting.
func (c *Context) newLoop(name string, x Decimal, itersPerDigit int) *loop {
	return &loop{
		c:             c,
		name:          name,
		arg:           x,
		maxIterations: 10 + uint64(itersPerDigit*c.precision()),
	}
}

// done reports whether the loop is done. If it does not converge
// after the maximum number of iterations, it returns an error.
func (l *loop) done(z Decimal) (bool, error) {
	l.delta = l.c.Sub(l.prevZ, z).Abs()
	if l.delta.IsZero() {
		return true, nil
	}
	if l.delta.Equal(l.prevDelta) {
		// Convergence can oscillate by a unit in the last place when
		// truncation is doing the rounding. Count a few repeats to see
		// that it really has stalled.
		l.stallCount++
		if l.stallCount > 3 {
			// Convergence has stopped.
			return true, nil
		}
	} else {
		l.stallCount = 0
	}
	l.i++
	if l.i == l.maxIterations {
		return false, errors.Errorf("%s %s: did not converge after %d iterations; prev,last result %s,%s delta %s", l.name, l.arg.text(), l.maxIterations, z.text(), l.prevZ.text(), l.delta.text())
	}
	l.prevDelta = l.delta
	l.prevZ = z
	return false, nil
}
