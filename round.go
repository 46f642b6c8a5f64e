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
	"strings"

	"github.com/cockroachdb/bignum/int10"
	"github.com/pkg/errors"
)

// Rounder defines a function that returns true if 1 should be added to the
// absolute value of a number being rounded. neg is the sign of the number
// and odd whether the last kept digit is odd. half is -1 if the discarded
// digits are < 0.5, 0 if = 0.5, or 1 if > 0.5. A Rounder is only consulted
// when some discarded digit is nonzero.
type Rounder func(neg, odd bool, half int) bool

var (
	// RoundDown rounds toward 0; truncate.
	RoundDown Rounder = roundDown
	// RoundHalfUp rounds up if the digits are >= 0.5.
	RoundHalfUp Rounder = roundHalfUp
	// RoundHalfEven rounds up if the digits are > 0.5. If the digits are equal
	// to 0.5, it rounds up if the previous digit is odd, always producing an
	// even digit.
	RoundHalfEven Rounder = roundHalfEven
	// RoundHalfDown rounds up if the digits are > 0.5.
	RoundHalfDown Rounder = roundHalfDown
	// RoundCeiling towards +Inf: rounds up if digits are > 0 and the number
	// is positive.
	RoundCeiling Rounder = roundCeiling
	// RoundFloor towards -Inf: rounds up if digits are > 0 and the number
	// is negative.
	RoundFloor Rounder = roundFloor
	// RoundUp rounds away from 0.
	RoundUp Rounder = roundUp
)

func roundDown(neg, odd bool, half int) bool {
	return false
}

func roundUp(neg, odd bool, half int) bool {
	return true
}

func roundHalfUp(neg, odd bool, half int) bool {
	return half >= 0
}

func roundHalfEven(neg, odd bool, half int) bool {
	if half > 0 {
		return true
	}
	if half < 0 {
		return false
	}
	return odd
}

func roundHalfDown(neg, odd bool, half int) bool {
	return half > 0
}

func roundFloor(neg, odd bool, half int) bool {
	return neg
}

func roundCeiling(neg, odd bool, half int) bool {
	return !neg
}

// Truncate returns d with all fractional digits beyond places dropped. It
// never rounds.
func (d Decimal) Truncate(places int) (Decimal, error) {
	return d.Quantize(places, RoundDown)
}

// Round returns d rounded half up to places fractional digits: when the
// first dropped digit is 5 or more, one unit in the last kept place is added
// to the magnitude.
func (d Decimal) Round(places int) (Decimal, error) {
	return d.Quantize(places, RoundHalfUp)
}

// mustQuantize is Quantize for callers that have already clamped places to
// be non-negative. It panics if that no longer holds.
func (d Decimal) mustQuantize(places int, r Rounder) Decimal {
	z, err := d.Quantize(places, r)
	if err != nil {
		panic(err)
	}
	return z
}

// Quantize returns d reduced to at most places fractional digits, using r to
// decide whether the kept magnitude is incremented. A nil r truncates.
func (d Decimal) Quantize(places int, r Rounder) (Decimal, error) {
	if places < 0 {
		return Decimal{}, errors.Wrapf(ErrInvalidPrecision, "cannot round to %d places", places)
	}
	d = d.orZero()
	if d.frac() <= places {
		return d, nil
	}
	cut := d.point + places
	kept, dropped := int10.Int(d.digits[:cut]), d.digits[cut:]
	if r != nil && strings.Trim(dropped, "0") != "" {
		odd := (kept[len(kept)-1]-'0')%2 == 1
		if r(d.neg, odd, discardedHalf(dropped)) {
			kept = kept.Add("1")
		}
	}
	return scaled(kept, places, d.neg), nil
}

// discardedHalf compares the discarded digits, read as a fraction, with 0.5.
func discardedHalf(dropped string) int {
	switch {
	case dropped[0] > '5':
		return 1
	case dropped[0] < '5':
		return -1
	case strings.Trim(dropped[1:], "0") != "":
		return 1
	}
	return 0
}
