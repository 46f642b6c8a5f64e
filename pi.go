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

import "github.com/pkg/errors"

// Each term of the Chudnovsky series adds a little over 14 correct digits.
const chudnovskyDigitsPerTerm = 14

var (
	chudnovskyC     = NewFromInt64(640320)
	chudnovskyA     = NewFromInt64(13591409)
	chudnovskyB     = NewFromInt64(545140134)
	chudnovskyScale = NewFromInt64(426880)
	decimal10005    = NewFromInt64(10005)
	decimal24       = NewFromInt64(24)
)

// ChudnovskyPi returns π rounded to n fractional digits, computed from the
// first n terms of the Chudnovsky series. The computation runs with enough
// working digits for n regardless of c's precision.
func (c *Context) ChudnovskyPi(n int) (Decimal, error) {
	if n < 1 {
		return Decimal{}, errors.Wrapf(ErrRange, "ChudnovskyPi(%d)", n)
	}
	nc := *c
	if nc.Precision < n {
		nc.Precision = n
	}
	nc = nc.guarded()
	pi, err := nc.chudnovsky(n)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "ChudnovskyPi(%d)", n)
	}
	return pi.Round(n)
}

// chudnovsky sums terms terms of
//
//   1/π = 12 * Σ (-1)^k (6k)! (13591409 + 545140134k) / ((3k)! (k!)^3 640320^(3k+3/2))
//
// in the form
//
//   π = 426880 * √10005 / (13591409 * Σ a_k + 545140134 * Σ k a_k)
//
// where a_0 = 1 and a_k = -a_{k-1} (6k-5)(2k-1)(6k-1) / k^3 * 24 / 640320^3.
func (c *Context) chudnovsky(terms int) (Decimal, error) {
	ed := NewErrDecimal(c)
	invC3Over24 := ed.Quo(decimal24, ed.IntPow(chudnovskyC, 3))
	aK, aSum, bSum := decimalOne, decimalOne, zero
	for i := int64(1); i < int64(terms); i++ {
		k := NewFromInt64(i)
		ratio := ed.Mul(ed.Mul(NewFromInt64(6*i-5), NewFromInt64(2*i-1)), NewFromInt64(6*i-1))
		aK = ed.Mul(aK, ed.Neg(ratio))
		aK = ed.Quo(aK, ed.IntPow(k, 3))
		aK = ed.Mul(aK, invC3Over24)
		aSum = ed.Add(aSum, aK)
		bSum = ed.Add(bSum, ed.Mul(aK, k))
	}
	total := ed.Add(ed.Mul(aSum, chudnovskyA), ed.Mul(bSum, chudnovskyB))
	root := ed.Sqrt(decimal10005)
	pi := ed.Quo(ed.Mul(root, chudnovskyScale), total)
	return pi, ed.Err()
}
