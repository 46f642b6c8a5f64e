// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bignum

import (
	"sync"

	"github.com/pkg/errors"
)

const (
	// DefaultDisplayPrecision is the number of fractional digits shown by
	// String in the default context.
	DefaultDisplayPrecision = 100
	// precisionMargin is the number of extra working digits kept beyond the
	// display precision.
	precisionMargin = 6
	// guardDigits is the number of extra digits the iterative functions carry
	// internally before rounding back to the working precision.
	guardDigits = 10
)

// Context maintains options for Decimal operations.
type Context struct {
	// Precision is the number of fractional digits every arithmetic result is
	// truncated to (the working precision).
	Precision int
	// DisplayPrecision is the number of fractional digits Format rounds to.
	// It is normally a few digits below Precision.
	DisplayPrecision int
	// Rounding specifies the Rounder used by Format. RoundHalfUp is used if
	// nil.
	Rounding Rounder
	// Witnesses is the number of random Fermat witnesses NextPrime tries
	// before running the deterministic primality test. One is used if zero.
	Witnesses int
}

// BaseContext is a useful default Context.
var BaseContext = Context{
	Precision:        DefaultDisplayPrecision + precisionMargin,
	DisplayPrecision: DefaultDisplayPrecision,
	Witnesses:        1,
}

// WithPrecision returns a copy of c that displays p fractional digits and
// works with a few more.
func (c *Context) WithPrecision(p int) Context {
	r := *c
	r.Precision = p + precisionMargin
	r.DisplayPrecision = p
	return r
}

// guarded returns a copy of c carrying guard digits for iterative
// computations.
func (c *Context) guarded() Context {
	r := *c
	r.Precision = c.precision() + guardDigits
	return r
}

func (c *Context) precision() int {
	if c.Precision < 0 {
		return 0
	}
	return c.Precision
}

func (c *Context) rounding() Rounder {
	if c.Rounding == nil {
		return RoundHalfUp
	}
	return c.Rounding
}

func (c *Context) witnesses() int {
	if c.Witnesses < 1 {
		return 1
	}
	return c.Witnesses
}

// defaultContext is the process-wide context used by the Decimal
// convenience methods and package-level constructors.
var defaultContext = struct {
	sync.RWMutex
	c Context
}{c: BaseContext}

// DefaultContext returns a copy of the process-wide default context.
func DefaultContext() Context {
	defaultContext.RLock()
	defer defaultContext.RUnlock()
	return defaultContext.c
}

// SetPrecision reconfigures the process-wide default context to display p
// fractional digits (and work with a few more). It affects every later
// operation that uses the default context.
func SetPrecision(p int) error {
	if p < 1 {
		return errors.Wrapf(ErrInvalidPrecision, "precision %d is less than 1", p)
	}
	defaultContext.Lock()
	defer defaultContext.Unlock()
	defaultContext.c = defaultContext.c.WithPrecision(p)
	return nil
}

// DisplayPrecision returns the display precision of the default context.
func DisplayPrecision() int {
	defaultContext.RLock()
	defer defaultContext.RUnlock()
	return defaultContext.c.DisplayPrecision
}

// finish truncates the given digits to c's working precision and returns the
// canonical Decimal.
func (c *Context) finish(digits string, point int, neg bool) Decimal {
	return truncate(makeDecimal(digits, point, neg), c.precision())
}

// Add returns the sum x+y.
func (c *Context) Add(x, y Decimal) Decimal {
	x, y = x.orZero(), y.orZero()
	switch {
	case x.neg == y.neg:
		return c.addAbs(x, y).withSign(x.neg)
	case compareAbs(x, y) < 0:
		return c.subAbs(y, x).withSign(y.neg)
	default:
		return c.subAbs(x, y).withSign(x.neg)
	}
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y Decimal) Decimal {
	x, y = x.orZero(), y.orZero()
	switch {
	case x.neg != y.neg:
		return c.addAbs(x, y).withSign(x.neg)
	case compareAbs(x, y) < 0:
		return c.subAbs(y, x).withSign(!x.neg)
	default:
		return c.subAbs(x, y).withSign(x.neg)
	}
}

// Neg returns -x.
func (c *Context) Neg(x Decimal) Decimal {
	return truncate(x.Neg(), c.precision())
}

// Abs returns |x|.
func (c *Context) Abs(x Decimal) Decimal {
	return truncate(x.Abs(), c.precision())
}

// Mul returns the product x*y.
func (c *Context) Mul(x, y Decimal) Decimal {
	x, y = x.orZero(), y.orZero()
	return c.mulAbs(x, y).withSign(x.neg != y.neg)
}

// Quo returns the quotient x/y truncated to c's working precision.
func (c *Context) Quo(x, y Decimal) (Decimal, error) {
	x, y = x.orZero(), y.orZero()
	if y.IsZero() {
		return Decimal{}, errors.Wrapf(ErrDivisionByZero, "%s / %s", x.text(), y.text())
	}
	return c.quoAbs(x, y, c.precision()).withSign(x.neg != y.neg), nil
}

// QuoInteger returns the integer part of the quotient x/y, truncated toward
// zero.
func (c *Context) QuoInteger(x, y Decimal) (Decimal, error) {
	x, y = x.orZero(), y.orZero()
	if y.IsZero() {
		return Decimal{}, errors.Wrapf(ErrDivisionByZero, "%s / %s", x.text(), y.text())
	}
	q := truncate(c.quoAbs(x, y, 0), 0)
	return q.withSign(x.neg != y.neg), nil
}

// Rem returns the remainder of the truncated integer division x/y. Both
// operands must be integers; the result has the sign of x.
func (c *Context) Rem(x, y Decimal) (Decimal, error) {
	x, y = x.orZero(), y.orZero()
	if !x.IsInt() || !y.IsInt() {
		return Decimal{}, errors.Wrapf(ErrInvalidOperand, "%s %% %s: operands must be integers", x.text(), y.text())
	}
	q, err := c.QuoInteger(x, y)
	if err != nil {
		return Decimal{}, errors.Wrap(err, "Rem")
	}
	return c.Sub(x, c.Mul(q, y)), nil
}
