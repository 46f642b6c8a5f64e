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

// Package int10 implements unsigned base-10 integers stored as their ASCII
// digits. It is the digit kernel underneath bignum.Decimal: everything here
// is integer arithmetic, decimal points are the caller's business.
package int10

import (
	"strconv"
	"strings"
)

// Int represents an unsigned, base-10, multi-precision integer as the ASCII
// digits of its value, most significant first, as written. Leading zeroes are
// allowed on input; every operation returns a trimmed value. 0 is represented
// by "0" or the empty string.
type Int string

const base = 10

const (
	// nativeDigits is the largest combined operand length whose product is
	// guaranteed to fit in a uint64 (10^19 < 2^64).
	nativeDigits = 19
	// skewLimit is the operand length difference beyond which the split
	// multiplication stops paying off and schoolbook is used instead.
	skewLimit = 80
)

// Zero is the canonical zero.
const Zero Int = "0"

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	return Int(strconv.FormatUint(x, base))
}

// newIntString makes a new Int with value s. s must contain only characters
// 0-9. The second return value is false otherwise.
func newIntString(s string) (Int, bool) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return Zero, false
		}
	}
	return Int(s).trim(), true
}

// trim strips leading zeroes, keeping a single digit for zero.
func (a Int) trim() Int {
	i := 0
	for i < len(a)-1 && a[i] == '0' {
		i++
	}
	if len(a) == 0 {
		return Zero
	}
	return a[i:]
}

// digit returns the value of the i'th digit of a, or 0 when i is out of
// range on the left.
func (a Int) digit(i int) int8 {
	if i < 0 {
		return 0
	}
	return int8(a[i] - '0')
}

// Uint64 returns a as a uint64. If a cannot be represented in a uint64, it is
// undefined.
func (a Int) Uint64() uint64 {
	var x uint64
	for i := 0; i < len(a); i++ {
		x = x*base + uint64(a[i]-'0')
	}
	return x
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Int) Cmp(b Int) int {
	a, b = a.trim(), b.trim()
	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// Zero returns whether a is 0.
func (a Int) Zero() bool {
	return strings.Trim(string(a), "0") == ""
}

// equal returns whether a == b, ignoring leading zeroes.
func (a Int) equal(b Int) bool {
	return a.trim() == b.trim()
}

func (a Int) String() string {
	return string(a.trim())
}

// Add returns a+b, computed digit by digit from the least significant end
// with carry propagation.
func (a Int) Add(b Int) Int {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]byte, len(a)+1)
	var carry int8
	j := len(b) - 1
	for i := len(a) - 1; i >= 0; i-- {
		s := carry + a.digit(i) + b.digit(j)
		j--
		carry = s / base
		z[i+1] = byte(s%base) + '0'
	}
	z[0] = byte(carry) + '0'
	return Int(z).trim()
}

// Sub returns a-b. borrow is true if a < b, in which case z is the
// ten's complement of the difference and must not be used.
func (a Int) Sub(b Int) (z Int, borrow bool) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	buf := make([]byte, n)
	var d int8
	for k := 1; k <= n; k++ {
		s := a.digit(len(a)-k) - b.digit(len(b)-k) - d
		if s < 0 {
			s += base
			d = 1
		} else {
			d = 0
		}
		buf[n-k] = byte(s) + '0'
	}
	return Int(buf).trim(), d != 0
}

// mustSub returns a-b and panics if b > a.
func (a Int) mustSub(b Int) Int {
	z, borrow := a.Sub(b)
	if borrow {
		panic("int10: subtraction underflow")
	}
	return z
}

// Mul10 returns a multiplied by 10^n. If n < 0, a is truncated.
func (a Int) Mul10(n int) Int {
	a = a.trim()
	switch {
	case a == Zero || n == 0:
		return a
	case n > 0:
		return a + Int(strings.Repeat("0", n))
	case -n >= len(a):
		return Zero
	default:
		return a[:len(a)+n]
	}
}

// PushDigit returns a*10 + d, d being an ASCII digit. It is the "bring down
// the next digit" step of long division.
func (a Int) PushDigit(d byte) Int {
	return (a + Int(d)).trim()
}

// Split returns the lowest n digits of a as low and the remainder as high.
// If n >= len(a), high is zero and low is a.
func (a Int) Split(n int) (high, low Int) {
	a = a.trim()
	if n >= len(a) {
		return Zero, a
	}
	return a[:len(a)-n], a[len(a)-n:].trim()
}

// Len returns the number of digits in a without leading zeroes. Zero has
// one digit.
func (a Int) Len() int {
	return len(a.trim())
}

// MulDigit returns a*d for a single digit 0 <= d <= 9.
func (a Int) MulDigit(d byte) Int {
	if d == 0 {
		return Zero
	}
	z := make([]byte, len(a)+1)
	var carry int8
	for i := len(a) - 1; i >= 0; i-- {
		t := int16(a.digit(i))*int16(d) + int16(carry)
		carry = int8(t / base)
		z[i+1] = byte(t%base) + '0'
	}
	z[0] = byte(carry) + '0'
	return Int(z).trim()
}

// MulSchoolbook returns a*b using the classic digit grid: each digit of a,
// least significant first, is multiplied across b and the shifted partial
// products are accumulated.
func (a Int) MulSchoolbook(b Int) Int {
	a, b = a.trim(), b.trim()
	if a == Zero || b == Zero {
		return Zero
	}
	acc := Zero
	for i := len(a) - 1; i >= 0; i-- {
		p := b.MulDigit(a[i] - '0')
		acc = acc.Add(p.Mul10(len(a) - 1 - i))
	}
	return acc
}

// Mul returns a*b. Small products are computed natively, operands of very
// different lengths use MulSchoolbook and everything else goes through the
// split (Karatsuba) multiplication.
func (a Int) Mul(b Int) Int {
	a, b = a.trim(), b.trim()
	if a == Zero || b == Zero {
		return Zero
	}
	if len(a)+len(b) <= nativeDigits {
		return mulNative(a, b)
	}
	if skew := len(a) - len(b); skew > skewLimit || skew < -skewLimit {
		return a.MulSchoolbook(b)
	}
	return karatsuba(a, b)
}

// mulNative multiplies a and b in a uint64. len(a)+len(b) must not exceed
// nativeDigits.
func mulNative(a, b Int) Int {
	return NewInt(a.Uint64() * b.Uint64())
}

// karatsuba splits both operands at half the longer length m and combines
// three sub-products:
//
//   a*b = z2*10^(2m) + (z1-z2-z0)*10^m + z0
//
// where z0 = low*low, z2 = high*high and z1 = (high+low)*(high+low). Each
// recursive operand is at most n-m+1 digits long, so recursion strictly
// shrinks until Mul hits its native fast path.
func karatsuba(a, b Int) Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	m := n / 2
	ah, al := a.Split(m)
	bh, bl := b.Split(m)

	z0 := al.Mul(bl)
	z2 := ah.Mul(bh)
	z1 := ah.Add(al).Mul(bh.Add(bl))
	z1 = z1.mustSub(z2).mustSub(z0)

	return z2.Mul10(2 * m).Add(z1.Mul10(m)).Add(z0)
}
