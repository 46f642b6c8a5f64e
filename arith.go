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
	"fmt"
	"strings"

	"github.com/cockroachdb/bignum/int10"
)

// alignFrac right-pads the fractional part of the shorter operand with
// zeroes and returns both digit strings, which now share frac fractional
// digits.
func alignFrac(x, y Decimal) (xd, yd int10.Int, frac int) {
	fx, fy := x.frac(), y.frac()
	xd, yd = int10.Int(x.digits), int10.Int(y.digits)
	switch {
	case fx < fy:
		xd += int10.Int(strings.Repeat("0", fy-fx))
		frac = fy
	default:
		yd += int10.Int(strings.Repeat("0", fx-fy))
		frac = fx
	}
	return xd, yd, frac
}

// scaled returns the canonical, untruncated Decimal with value z*10^-frac.
func scaled(z int10.Int, frac int, neg bool) Decimal {
	s := z.String()
	if frac < 1 {
		s += strings.Repeat("0", 1-frac)
		frac = 1
	}
	if len(s) <= frac {
		s = strings.Repeat("0", frac+1-len(s)) + s
	}
	return makeDecimal(s, len(s)-frac, neg)
}

// place is scaled followed by truncation to c's working precision.
func (c *Context) place(z int10.Int, frac int) Decimal {
	return truncate(scaled(z, frac, false), c.precision())
}

// addAbs returns |x|+|y|.
func (c *Context) addAbs(x, y Decimal) Decimal {
	xd, yd, frac := alignFrac(x, y)
	return c.place(xd.Add(yd), frac)
}

// subAbs returns |x|-|y|. The caller guarantees |x| >= |y|.
func (c *Context) subAbs(x, y Decimal) Decimal {
	if compareAbs(x, y) < 0 {
		panic(fmt.Sprintf("bignum: subAbs called with |%s| < |%s|", x.text(), y.text()))
	}
	xd, yd, frac := alignFrac(x, y)
	z, borrow := xd.Sub(yd)
	if borrow {
		panic(fmt.Sprintf("bignum: borrow out of |%s| - |%s|", x.text(), y.text()))
	}
	return c.place(z, frac)
}

// mulAbs returns |x|*|y|. Both digit strings are multiplied as integers and
// the point is placed fx+fy digits from the right.
func (c *Context) mulAbs(x, y Decimal) Decimal {
	if x.IsZero() || y.IsZero() {
		return zero
	}
	p := int10.Int(x.digits).Mul(int10.Int(y.digits))
	return c.place(p, x.frac()+y.frac())
}

// quoAbs returns |x|/|y| truncated to places fractional digits (and then to
// c's working precision). y must not be zero.
//
// Both digit strings are treated as integers X and Y, so that
// x/y = X/Y * 10^(fy-fx). Long division of X by Y yields one quotient digit
// per dividend digit plus one per brought-down zero; bringing down
// max(places-(fx-fy), 0) zeroes leaves at least places fractional digits in
// the result. This is the hand method: O(places * len(Y)) digit steps.
func (c *Context) quoAbs(x, y Decimal, places int) Decimal {
	if x.IsZero() {
		return zero
	}
	resFrac := x.frac() - y.frac()
	zeroes := places - resFrac
	if zeroes < 0 {
		zeroes = 0
	}
	q := longDivide(int10.Int(x.digits), int10.Int(y.digits), zeroes)
	return c.place(q, resFrac+zeroes)
}

// longDivide returns floor(dividend * 10^zeroes / divisor) by schoolbook
// long division. The remainder starts at zero; each step brings down the
// next dividend digit (or a zero once the dividend is exhausted). While the
// remainder is smaller than the divisor a 0 is emitted; otherwise the
// largest digit m with m*divisor <= remainder is found by stepping up the
// table of multiples, m*divisor is subtracted and m is emitted.
func longDivide(dividend, divisor int10.Int, zeroes int) int10.Int {
	divisor = int10.Int(divisor.String())
	var multiples [10]int10.Int
	for m := range multiples {
		multiples[m] = divisor.MulDigit(byte(m))
	}

	q := make([]byte, 0, len(dividend)+zeroes)
	rem := int10.Zero
	taken := 0
	for i := 0; i < len(dividend) || taken < zeroes; {
		if i < len(dividend) {
			rem = rem.PushDigit(dividend[i])
			i++
		} else {
			rem = rem.PushDigit('0')
			taken++
		}
		if rem.Cmp(divisor) < 0 {
			q = append(q, '0')
			continue
		}
		m := 1
		for m < len(multiples)-1 && multiples[m+1].Cmp(rem) <= 0 {
			m++
		}
		var borrow bool
		rem, borrow = rem.Sub(multiples[m])
		if borrow {
			panic("bignum: long division overshot")
		}
		q = append(q, byte(m)+'0')
	}
	return int10.Int(q)
}

// truncate drops fractional digits of d beyond places without rounding. A
// single zero placeholder is kept when places is 0, and the sign is
// recomputed so truncation never yields a negative zero.
func truncate(d Decimal, places int) Decimal {
	d = d.orZero()
	if d.frac() <= places {
		return d
	}
	digits := d.digits[:d.point+places]
	if places == 0 {
		digits += "0"
	}
	return makeDecimal(digits, d.point, d.neg)
}
