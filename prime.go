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
	"math/rand"

	"github.com/pkg/errors"
)

var (
	decimalThree = NewFromInt64(3)
	decimalFour  = NewFromInt64(4)
	decimalSix   = NewFromInt64(6)
)

func requireInts(op string, xs ...Decimal) error {
	for _, x := range xs {
		if !x.IsInt() {
			return errors.Wrapf(ErrInvalidOperand, "%s: %s is not an integer", op, x.text())
		}
	}
	return nil
}

// GCD returns the greatest common divisor of |x| and |y|. GCD(x, 0) is |x|.
func (c *Context) GCD(x, y Decimal) (Decimal, error) {
	if err := requireInts("GCD", x, y); err != nil {
		return Decimal{}, err
	}
	ed := NewErrDecimal(c)
	a, b := x.Abs(), y.Abs()
	for !b.IsZero() {
		a, b = b, ed.Rem(a, b)
		if err := ed.Err(); err != nil {
			return Decimal{}, err
		}
	}
	return a, nil
}

// ModPow returns x**y mod m by square-and-multiply. All operands must be
// integers, y must not be negative and m must be positive. The result is in
// [0, m).
func (c *Context) ModPow(x, y, m Decimal) (Decimal, error) {
	if err := requireInts("ModPow", x, y, m); err != nil {
		return Decimal{}, err
	}
	if y.Negative() {
		return Decimal{}, errors.Wrapf(ErrInvalidOperand, "ModPow: negative exponent %s", y.text())
	}
	if m.Sign() <= 0 {
		return Decimal{}, errors.Wrapf(ErrInvalidOperand, "ModPow: modulus %s is not positive", m.text())
	}
	if m.Equal(decimalOne) {
		return zero, nil
	}

	ed := NewErrDecimal(c)
	base := ed.Rem(x, m)
	if base.Negative() {
		base = ed.Add(base, m)
	}
	z := decimalOne
	for e := y.orZero(); !e.IsZero(); {
		if e.IsOdd() {
			z = ed.Rem(ed.Mul(z, base), m)
		}
		e = ed.QuoInteger(e, decimalTwo)
		base = ed.Rem(ed.Mul(base, base), m)
		if err := ed.Err(); err != nil {
			return Decimal{}, err
		}
	}
	return z, ed.Err()
}

// IsPrime reports whether n is prime by trial division with the candidates
// 6k±1 up to the integer square root of n. Non-integers and values <= 1 are
// not prime.
func (c *Context) IsPrime(n Decimal) (bool, error) {
	if !n.IsInt() || n.LessOrEqual(decimalOne) {
		return false, nil
	}
	if n.LessOrEqual(decimalThree) {
		return true, nil
	}
	ed := NewErrDecimal(c)
	if ed.Rem(n, decimalTwo).IsZero() || ed.Rem(n, decimalThree).IsZero() {
		return false, ed.Err()
	}
	limit := ed.Add(ed.Truncate(ed.Sqrt(n), 0), decimalOne)
	if err := ed.Err(); err != nil {
		return false, err
	}
	for i := NewFromInt64(5); i.LessOrEqual(limit); i = ed.Add(i, decimalSix) {
		if ed.Rem(n, i).IsZero() || ed.Rem(n, ed.Add(i, decimalTwo)).IsZero() {
			return false, ed.Err()
		}
		if err := ed.Err(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// IsProbablePrime runs the Fermat test on n with k random witnesses. A false
// result means n is certainly composite (or not an integer greater than 1); a
// true result means n is prime or a Fermat pseudoprime to every witness.
func (c *Context) IsProbablePrime(n Decimal, k int) (bool, error) {
	if !n.IsInt() || n.LessOrEqual(decimalOne) || n.Equal(decimalFour) {
		return false, nil
	}
	if n.LessOrEqual(decimalThree) {
		return true, nil
	}
	ed := NewErrDecimal(c)
	span := ed.Sub(n, decimalFour)
	exp := ed.Sub(n, decimalOne)
	for i := 0; i < k; i++ {
		// a is in [2, n-2].
		a := ed.Add(decimalTwo, ed.Rem(NewFromInt64(rand.Int63()), span))
		if !ed.GCD(n, a).Equal(decimalOne) {
			return false, ed.Err()
		}
		if !ed.ModPow(a, exp, n).Equal(decimalOne) {
			return false, ed.Err()
		}
		if err := ed.Err(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// NextPrime returns the smallest prime greater than n. Candidates are first
// screened with c.Witnesses Fermat witnesses and then confirmed with
// IsPrime.
func (c *Context) NextPrime(n Decimal) (Decimal, error) {
	if n.Less(decimalTwo) {
		return decimalTwo, nil
	}
	p := c.Add(truncate(n, 0), decimalOne)
	for ; ; p = c.Add(p, decimalOne) {
		ok, err := c.IsProbablePrime(p, c.witnesses())
		if err != nil {
			return Decimal{}, errors.Wrapf(err, "NextPrime(%s)", n.text())
		}
		if !ok {
			continue
		}
		if ok, err = c.IsPrime(p); err != nil {
			return Decimal{}, errors.Wrapf(err, "NextPrime(%s)", n.text())
		} else if ok {
			return p, nil
		}
	}
}
