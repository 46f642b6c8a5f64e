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
	"testing"

	"github.com/pkg/errors"
)

func TestRound(t *testing.T) {
	tests := []struct {
		s      string
		places int
		out    string
	}{
		{s: "0.5", places: 0, out: "1.0"},
		{s: "-0.5", places: 0, out: "-1.0"},
		{s: "0.49", places: 0, out: "0.0"},
		{s: "-0.49", places: 0, out: "0.0"},
		{s: "9.999", places: 2, out: "10.0"},
		{s: "-9.995", places: 2, out: "-10.0"},
		{s: "1.2345", places: 3, out: "1.235"},
		{s: "1.2344", places: 3, out: "1.234"},
		{s: "-0.004", places: 2, out: "0.0"},
		{s: "-0.005", places: 2, out: "-0.01"},
		{s: "123.456", places: 5, out: "123.456"},
		{s: "0.0951", places: 1, out: "0.1"},
		{s: "99.95", places: 1, out: "100.0"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%d", tc.s, tc.places), func(t *testing.T) {
			d := newDecimal(t, testCtx, tc.s)
			r, err := d.Round(tc.places)
			if err != nil {
				t.Fatal(err)
			}
			checkCanonical(t, r)
			if s := r.text(); s != tc.out {
				t.Fatalf("expected %s, got %s", tc.out, s)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s      string
		places int
		out    string
	}{
		{s: "9.999", places: 2, out: "9.99"},
		{s: "-1.99", places: 0, out: "-1.0"},
		{s: "-0.9", places: 0, out: "0.0"},
		{s: "0.123", places: 1, out: "0.1"},
		{s: "1.2301", places: 3, out: "1.23"},
		{s: "5", places: 0, out: "5.0"},
		{s: "5.5", places: 3, out: "5.5"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%d", tc.s, tc.places), func(t *testing.T) {
			d := newDecimal(t, testCtx, tc.s)
			r, err := d.Truncate(tc.places)
			if err != nil {
				t.Fatal(err)
			}
			checkCanonical(t, r)
			if s := r.text(); s != tc.out {
				t.Fatalf("expected %s, got %s", tc.out, s)
			}
			if r.frac() > d.frac() {
				t.Fatalf("truncate grew %s to %s", d.text(), r.text())
			}
		})
	}
}

func TestRoundInvalidPrecision(t *testing.T) {
	d := MustNewFromString("1.5")
	if _, err := d.Round(-1); errors.Cause(err) != ErrInvalidPrecision {
		t.Fatalf("Round: expected ErrInvalidPrecision, got %v", err)
	}
	if _, err := d.Truncate(-1); errors.Cause(err) != ErrInvalidPrecision {
		t.Fatalf("Truncate: expected ErrInvalidPrecision, got %v", err)
	}
	func() {
		defer func() {
			if err, _ := recover().(error); errors.Cause(err) != ErrInvalidPrecision {
				t.Fatalf("mustQuantize: expected ErrInvalidPrecision panic, got %v", err)
			}
		}()
		d.mustQuantize(-1, RoundHalfUp)
	}()
}

func TestRoundResultClampsPrecision(t *testing.T) {
	c := Context{Precision: -2}
	if s := c.roundResult(MustNewFromString("2.5")).text(); s != "3.0" {
		t.Fatalf("expected 3.0, got %s", s)
	}
}

func TestRounders(t *testing.T) {
	inputs := []string{"2.5", "-2.5", "1.5", "2.6", "-2.4", "3"}
	tests := []struct {
		name string
		r    Rounder
		out  []string
	}{
		{name: "down", r: RoundDown, out: []string{"2.0", "-2.0", "1.0", "2.0", "-2.0", "3.0"}},
		{name: "nil", r: nil, out: []string{"2.0", "-2.0", "1.0", "2.0", "-2.0", "3.0"}},
		{name: "half up", r: RoundHalfUp, out: []string{"3.0", "-3.0", "2.0", "3.0", "-2.0", "3.0"}},
		{name: "half even", r: RoundHalfEven, out: []string{"2.0", "-2.0", "2.0", "3.0", "-2.0", "3.0"}},
		{name: "half down", r: RoundHalfDown, out: []string{"2.0", "-2.0", "1.0", "3.0", "-2.0", "3.0"}},
		{name: "ceiling", r: RoundCeiling, out: []string{"3.0", "-2.0", "2.0", "3.0", "-2.0", "3.0"}},
		{name: "floor", r: RoundFloor, out: []string{"2.0", "-3.0", "1.0", "2.0", "-3.0", "3.0"}},
		{name: "up", r: RoundUp, out: []string{"3.0", "-3.0", "2.0", "3.0", "-3.0", "3.0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i, in := range inputs {
				d := newDecimal(t, testCtx, in)
				r, err := d.Quantize(0, tc.r)
				if err != nil {
					t.Fatal(err)
				}
				if s := r.text(); s != tc.out[i] {
					t.Errorf("%s: expected %s, got %s", in, tc.out[i], s)
				}
			}
		})
	}
}

func TestDiscardedHalf(t *testing.T) {
	tests := []struct {
		dropped string
		half    int
	}{
		{"4", -1},
		{"49999", -1},
		{"5", 0},
		{"5000", 0},
		{"50001", 1},
		{"6", 1},
	}
	for _, tc := range tests {
		if h := discardedHalf(tc.dropped); h != tc.half {
			t.Errorf("%s: expected %d, got %d", tc.dropped, tc.half, h)
		}
	}
}
