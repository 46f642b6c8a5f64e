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
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decimal is an arbitrary-precision decimal. Its value is:
//
//     digits[:point] . digits[point:]
//
// negated when neg is set. Decimals are values: every operation returns a
// new Decimal and none modifies its operands, so a Decimal may be shared
// freely between goroutines.
//
// A canonical Decimal always has at least one integer digit and at least one
// fractional digit, no superfluous leading zeroes in the integer part, no
// superfluous trailing zeroes in the fractional part, and is never a negative
// zero. The zero value of Decimal is 0.
type Decimal struct {
	digits string
	point  int
	neg    bool
}

var zero = Decimal{digits: "00", point: 1}

// makeDecimal returns the canonical Decimal for the given digits, point and
// sign. It does not truncate.
func makeDecimal(digits string, point int, neg bool) Decimal {
	digits, point = removeLeadingZeroes(digits, point)
	digits = removeTrailingZeroes(digits, point)
	if strings.Trim(digits, "0") == "" {
		return zero
	}
	return Decimal{digits: digits, point: point, neg: neg}
}

// removeLeadingZeroes strips zeroes from the front of the integer part,
// stopping at the last integer digit.
func removeLeadingZeroes(digits string, point int) (string, int) {
	i := 0
	for i < point-1 && digits[i] == '0' {
		i++
	}
	return digits[i:], point - i
}

// removeTrailingZeroes strips zeroes from the end of the fractional part,
// stopping at the first fractional digit.
func removeTrailingZeroes(digits string, point int) string {
	end := len(digits)
	for end > point+1 && digits[end-1] == '0' {
		end--
	}
	return digits[:end]
}

// orZero maps the zero value of Decimal onto the canonical zero.
func (d Decimal) orZero() Decimal {
	if d.digits == "" {
		return zero
	}
	return d
}

// NewFromString creates a new decimal from s using the default context. s
// may contain only digits, at most one decimal point and a leading minus
// sign. The value is truncated to the context's working precision.
func NewFromString(s string) (Decimal, error) {
	c := DefaultContext()
	return c.NewFromString(s)
}

// MustNewFromString is like NewFromString but panics on error. It is meant
// for constants and tests.
func MustNewFromString(s string) Decimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromString creates a new decimal from s, truncated to c's working
// precision.
func (c *Context) NewFromString(s string) (Decimal, error) {
	digits, point, neg, err := parseDecimal(s)
	if err != nil {
		return Decimal{}, err
	}
	return c.finish(digits, point, neg), nil
}

// parseDecimal splits s into digits, the position of the decimal point and a
// sign. The returned digits always include at least one digit on each side of
// the point.
func parseDecimal(s string) (digits string, point int, neg bool, err error) {
	orig := s
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < '0' || c > '9') && c != '.' {
			return "", 0, false, errors.Wrapf(ErrFormat, "invalid character %q in %q", c, orig)
		}
	}
	integ, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		integ, frac = s[:i], s[i+1:]
		if strings.IndexByte(frac, '.') >= 0 {
			return "", 0, false, errors.Wrapf(ErrFormat, "multiple decimal points in %q", orig)
		}
	}
	if integ == "" && frac == "" {
		return "", 0, false, errors.Wrapf(ErrFormat, "no digits in %q", orig)
	}
	if integ == "" {
		integ = "0"
	}
	if frac == "" {
		frac = "0"
	}
	return integ + frac, len(integ), neg, nil
}

// NewFromInt64 creates a new decimal with the value of x.
func NewFromInt64(x int64) Decimal {
	neg := x < 0
	var s string
	if neg {
		// Negating math.MinInt64 overflows, so format the unsigned value.
		s = strconv.FormatUint(uint64(-(x+1))+1, 10)
	} else {
		s = strconv.FormatInt(x, 10)
	}
	return makeDecimal(s+"0", len(s), neg)
}

// NewFromFloat64 creates a new decimal from f using the default context. f is
// formatted with the shortest representation that round-trips to the same
// float64. NaN and infinities are rejected.
func NewFromFloat64(f float64) (Decimal, error) {
	c := DefaultContext()
	return c.NewFromFloat64(f)
}

// NewFromFloat64 creates a new decimal from f, truncated to c's working
// precision.
func (c *Context) NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, errors.Wrapf(ErrFormat, "%v is not a finite number", f)
	}
	return c.NewFromString(strconv.FormatFloat(f, 'f', -1, 64))
}

// text returns d with all of its digits, without display rounding.
func (d Decimal) text() string {
	d = d.orZero()
	s := d.digits[:d.point] + "." + d.digits[d.point:]
	if d.neg {
		s = "-" + s
	}
	return s
}

// String returns d rounded to the default context's display precision.
func (d Decimal) String() string {
	c := DefaultContext()
	return c.Format(d)
}

// GoString implements fmt.GoStringer.
func (d Decimal) GoString() string {
	return fmt.Sprintf(`{digits: %q, point: %d, neg: %v}`, d.digits, d.point, d.neg)
}

// Format returns the string form of d rounded to c's display precision with
// c's Rounding. The result always contains a decimal point followed by at
// least one digit, and has a leading minus sign iff it is negative and not
// zero.
func (c *Context) Format(d Decimal) string {
	p := c.DisplayPrecision
	if p < 0 {
		p = 0
	}
	return d.mustQuantize(p, c.rounding()).text()
}

// Sign returns -1 if d < 0, 0 if d == 0 and +1 if d > 0.
func (d Decimal) Sign() int {
	d = d.orZero()
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return strings.Trim(d.digits, "0") == ""
}

// Negative reports whether d is less than zero.
func (d Decimal) Negative() bool {
	return d.neg && !d.IsZero()
}

// frac returns the number of fractional digits stored in d.
func (d Decimal) frac() int {
	return len(d.digits) - d.point
}

// IsInt reports whether d has no fractional part.
func (d Decimal) IsInt() bool {
	d = d.orZero()
	return strings.Trim(d.digits[d.point:], "0") == ""
}

// IsOdd reports whether d is an odd integer.
func (d Decimal) IsOdd() bool {
	d = d.orZero()
	if !d.IsInt() {
		return false
	}
	return (d.digits[d.point-1]-'0')%2 == 1
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	d = d.orZero()
	return makeDecimal(d.digits, d.point, !d.neg)
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d = d.orZero()
	return Decimal{digits: d.digits, point: d.point}
}

// withSign returns d with its sign set to neg, unless d is zero.
func (d Decimal) withSign(neg bool) Decimal {
	d.neg = neg && !d.IsZero()
	return d
}

// Int64 returns the int64 representation of d. An error is returned if d has
// a fractional part or does not fit in an int64.
func (d Decimal) Int64() (int64, error) {
	d = d.orZero()
	if !d.IsInt() {
		return 0, errors.Wrapf(ErrInvalidOperand, "%s has a fractional part", d.text())
	}
	s := d.digits[:d.point]
	if d.neg {
		s = "-" + s
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrRange, "%s does not fit in an int64", s)
	}
	return i, nil
}

// Float64 returns the float64 nearest to d.
func (d Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(d.text(), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrRange, "%s does not fit in a float64", d.text())
	}
	return f, nil
}

// compareAbs compares |x| and |y|. Canonical decimals with more integer
// digits are larger; otherwise the digits decide from the left, and a
// sequence that runs out first is the smaller one.
func compareAbs(x, y Decimal) int {
	x, y = x.orZero(), y.orZero()
	switch {
	case x.point > y.point:
		return 1
	case x.point < y.point:
		return -1
	case x.digits > y.digits:
		return 1
	case x.digits < y.digits:
		return -1
	}
	return 0
}

// Cmp compares d and x and returns:
//
//   -1 if d <  x
//    0 if d == x
//   +1 if d >  x
//
func (d Decimal) Cmp(x Decimal) int {
	dn, xn := d.Negative(), x.Negative()
	switch {
	case dn && !xn:
		return -1
	case !dn && xn:
		return 1
	case dn && xn:
		return -compareAbs(d, x)
	}
	return compareAbs(d, x)
}

// Equal reports whether d == x.
func (d Decimal) Equal(x Decimal) bool { return d.Cmp(x) == 0 }

// Less reports whether d < x.
func (d Decimal) Less(x Decimal) bool { return d.Cmp(x) < 0 }

// LessOrEqual reports whether d <= x.
func (d Decimal) LessOrEqual(x Decimal) bool { return d.Cmp(x) <= 0 }

// Greater reports whether d > x.
func (d Decimal) Greater(x Decimal) bool { return d.Cmp(x) > 0 }

// GreaterOrEqual reports whether d >= x.
func (d Decimal) GreaterOrEqual(x Decimal) bool { return d.Cmp(x) >= 0 }

// Add returns d+x computed with the default context.
func (d Decimal) Add(x Decimal) Decimal {
	c := DefaultContext()
	return c.Add(d, x)
}

// Sub returns d-x computed with the default context.
func (d Decimal) Sub(x Decimal) Decimal {
	c := DefaultContext()
	return c.Sub(d, x)
}

// Mul returns d*x computed with the default context.
func (d Decimal) Mul(x Decimal) Decimal {
	c := DefaultContext()
	return c.Mul(d, x)
}

// Quo returns d/x computed with the default context.
func (d Decimal) Quo(x Decimal) (Decimal, error) {
	c := DefaultContext()
	return c.Quo(d, x)
}

// Rem returns d%x computed with the default context.
func (d Decimal) Rem(x Decimal) (Decimal, error) {
	c := DefaultContext()
	return c.Rem(d, x)
}
