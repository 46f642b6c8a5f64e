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
	"math"

	"github.com/pkg/errors"
)

// MaxFactorial is the largest argument accepted by Factorial.
const MaxFactorial = 10000

var (
	decimalOne          = NewFromInt64(1)
	decimalTwo          = NewFromInt64(2)
	decimalTen          = NewFromInt64(10)
	decimalHundred      = NewFromInt64(100)
	decimalTenth        = makeDecimal("01", 1, false)
	decimalThreeHalves  = makeDecimal("15", 1, false)
	decimalLn2          = mustParseExact(ln2Digits)
	decimalPi           = mustParseExact(piDigits)
	ln2LiteralPrecision = decimalLn2.frac()
	piLiteralPrecision  = decimalPi.frac()
)

const ln2Digits = "0." +
	"69314718055994530941723212145817656807550013436025525412068000949339362" +
	"19696947156058633269964186875420014810205706857336855202357581305570326" +
	"70751635075961930727570828371435190307038623891673471123350115364497955"

const piDigits = "3." +
	"14159265358979323846264338327950288419716939937510582097494459230781640628620899862803" +
	"48253421170679821480865132823066470938446095505822317253594081284811174502841027019385" +
	"21105559644622948954930381964428810975665933446128475648233786783165271201909145648566" +
	"9234603486104543266482133936072602491412737245870066063155881748815209209628"

// mustParseExact parses a literal without truncating it.
func mustParseExact(s string) Decimal {
	c := Context{Precision: len(s)}
	d, err := c.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// roundResult rounds a value computed with guard digits back to c's working
// precision.
func (c *Context) roundResult(z Decimal) Decimal {
	return z.mustQuantize(c.precision(), RoundHalfUp)
}

// IntPow returns x**n by repeated multiplication. A negative n yields the
// reciprocal of x**|n|.
func (c *Context) IntPow(x Decimal, n int) (Decimal, error) {
	neg := n < 0
	if neg {
		n = -n
	}
	z := decimalOne
	for i := 0; i < n; i++ {
		z = c.Mul(z, x)
	}
	if neg {
		r, err := c.Quo(decimalOne, z)
		if err != nil {
			return Decimal{}, errors.Wrapf(err, "IntPow(%s, -%d)", x.text(), n)
		}
		return r, nil
	}
	return z, nil
}

// Factorial returns n!. n must be in [0, MaxFactorial].
func (c *Context) Factorial(n int) (Decimal, error) {
	if n < 0 || n > MaxFactorial {
		return Decimal{}, errors.Wrapf(ErrRange, "factorial of %d", n)
	}
	z := decimalOne
	for i := 2; i <= n; i++ {
		z = c.Mul(z, NewFromInt64(int64(i)))
	}
	return z, nil
}

// Sqrt returns the square root of x.
func (c *Context) Sqrt(x Decimal) (Decimal, error) {
	// The square root is computed as x * 1/sqrt(x). x is first reduced to
	// n = x / 100^k in [0.1, 10]. An estimate of y = 1/sqrt(n) is refined with
	// Newton's method on f(y) = y^2 - 1/n, then iterated with the reciprocal
	// square root recurrence:
	//     y_{i+1} = y_i * (3/2 - n/2 * y_i^2)
	// which avoids a division per step. Finally sqrt(x) = n * y * 10^k.

	switch x.Sign() {
	case -1:
		return Decimal{}, errors.Wrapf(ErrInvalidOperand, "square root of negative value %s", x.text())
	case 0:
		return zero, nil
	}

	nc := c.guarded()
	ed := NewErrDecimal(&nc)

	n, k := x, 0
	for n.Greater(decimalTen) {
		n = ed.Quo(n, decimalHundred)
		k++
	}
	for n.Less(decimalTenth) {
		n = ed.Mul(n, decimalHundred)
		k--
	}

	// Seed from float64 so the recurrence starts inside its basin of
	// convergence (0 < y < sqrt(3/n)).
	f, err := n.Float64()
	if err != nil {
		return Decimal{}, err
	}
	y, err := nc.NewFromFloat64(1 / math.Sqrt(f))
	if err != nil {
		return Decimal{}, err
	}

	inv := ed.Quo(decimalOne, n)
	for i := 0; i < 2; i++ {
		fy := ed.Sub(ed.Mul(y, y), inv)                 // f(y) = y^2 - 1/n
		y = ed.Sub(y, ed.Quo(fy, ed.Mul(decimalTwo, y))) // y - f(y)/f'(y)
	}

	half := ed.Quo(n, decimalTwo)
	for loop := nc.newLoop("sqrt", x, 1); ; {
		y = ed.Mul(y, ed.Sub(decimalThreeHalves, ed.Mul(half, ed.Mul(y, y))))
		if err := ed.Err(); err != nil {
			return Decimal{}, err
		}
		if done, err := loop.done(y); err != nil {
			return Decimal{}, err
		} else if done {
			break
		}
	}

	z := ed.Mul(ed.Mul(n, y), ed.IntPow(decimalTen, k))
	if err := ed.Err(); err != nil {
		return Decimal{}, err
	}
	return c.roundResult(z), nil
}

// pi returns π to c's working precision, from the built-in literal when it
// is long enough and from the Chudnovsky series otherwise.
func (c *Context) pi() (Decimal, error) {
	if c.precision() <= piLiteralPrecision {
		return truncate(decimalPi, c.precision()), nil
	}
	return c.chudnovsky(c.precision()/chudnovskyDigitsPerTerm + 2)
}

// Sin returns the sine of x (in radians).
func (c *Context) Sin(x Decimal) (Decimal, error) {
	nc := c.guarded()
	ed := NewErrDecimal(&nc)

	pi, err := nc.pi()
	if err != nil {
		return Decimal{}, errors.Wrap(err, "pi")
	}
	period := ed.Mul(decimalTwo, pi)
	halfPi := ed.Quo(pi, decimalTwo)

	// Reduce |x| into [0, π/2]: drop whole periods, fold (π, 2π) onto (0, π)
	// using sin(x) = -sin(x-π), then fold (π/2, π] using sin(x) = sin(π-x).
	neg := x.Negative()
	n := x.Abs()
	if n.GreaterOrEqual(period) {
		n = ed.Sub(n, ed.Mul(ed.QuoInteger(n, period), period))
	}
	if n.Greater(pi) {
		n = ed.Sub(n, pi)
		neg = !neg
	}
	if n.Greater(halfPi) {
		n = ed.Sub(pi, n)
	}

	// Taylor series around 0:
	//   sin(n) = n - n^3/3! + n^5/5! - ...
	// with term_i = term_{i-1} * (-n^2) / (2i * (2i+1)).
	term, sum := n, n
	negSq := ed.Neg(ed.Mul(n, n))
	for loop := nc.newLoop("sin", x, 1); ; {
		i := int64(loop.i) + 1
		term = ed.Quo(ed.Mul(term, negSq), NewFromInt64(2*i*(2*i+1)))
		sum = ed.Add(sum, term)
		if err := ed.Err(); err != nil {
			return Decimal{}, err
		}
		if done, err := loop.done(sum); err != nil {
			return Decimal{}, err
		} else if done {
			break
		}
	}
	if neg {
		sum = sum.Neg()
	}
	return c.roundResult(sum), nil
}

// Ln returns the natural log of x.
func (c *Context) Ln(x Decimal) (Decimal, error) {
	if x.Sign() <= 0 {
		return Decimal{}, errors.Wrapf(ErrInvalidOperand, "natural log of non-positive value %s", x.text())
	}

	nc := c.guarded()
	ed := NewErrDecimal(&nc)

	// Use ln(2^p * g) = p*ln(2) + ln(g) with g in [1, 2).
	p, g := int64(0), x
	for g.GreaterOrEqual(decimalTwo) {
		g = ed.Quo(g, decimalTwo)
		p++
	}
	for g.Less(decimalOne) {
		g = ed.Mul(g, decimalTwo)
		p--
	}
	if err := ed.Err(); err != nil {
		return Decimal{}, err
	}

	lng, err := nc.lnSeries(g)
	if err != nil {
		return Decimal{}, err
	}
	z := lng
	if p != 0 {
		ln2, err := nc.ln2()
		if err != nil {
			return Decimal{}, err
		}
		z = ed.Add(ed.Mul(NewFromInt64(p), ln2), lng)
	}
	if err := ed.Err(); err != nil {
		return Decimal{}, err
	}
	return c.roundResult(z), nil
}

// lnSeries returns ln(g) from the series
//
//   r = (g - 1) / (g + 1)
//   ln(g) = 2 * [ r + r^3 / 3 + r^5 / 5 + ... ]
//
// (2 * atanh(r)), which converges quickly for g in [1, 2].
func (c *Context) lnSeries(g Decimal) (Decimal, error) {
	ed := NewErrDecimal(c)
	r := ed.Quo(ed.Sub(g, decimalOne), ed.Add(g, decimalOne))
	rSq := ed.Mul(r, r)
	pow, sum := r, r
	for loop := c.newLoop("ln", g, 2); ; {
		// pow = r^k, k the i'th odd power: 3, 5, 7, 9, etc.
		k := int64(loop.i)*2 + 3
		pow = ed.Mul(pow, rSq)
		sum = ed.Add(sum, ed.Quo(pow, NewFromInt64(k)))
		if err := ed.Err(); err != nil {
			return Decimal{}, err
		}
		if done, err := loop.done(sum); err != nil {
			return Decimal{}, err
		} else if done {
			break
		}
	}
	return ed.Mul(sum, decimalTwo), ed.Err()
}

// ln2 returns ln(2), from the built-in literal when it is long enough.
func (c *Context) ln2() (Decimal, error) {
	if c.precision() <= ln2LiteralPrecision {
		return truncate(decimalLn2, c.precision()), nil
	}
	return c.lnSeries(decimalTwo)
}
