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
	"testing"

	"github.com/pkg/errors"
)

func TestErrDecimal(t *testing.T) {
	ed := NewErrDecimal(&mathCtx)
	a := NewFromInt64(4)
	ed.Abs(a)
	ed.Neg(a)
	ed.Add(a, a)
	ed.Sub(a, a)
	ed.Mul(a, a)
	ed.Quo(a, a)
	ed.QuoInteger(a, a)
	ed.Rem(a, a)
	ed.GCD(a, a)
	ed.Sqrt(a)
	ed.Sin(a)
	ed.Ln(a)
	ed.IntPow(a, 2)
	ed.ModPow(a, a, a)
	ed.Truncate(a, 0)
	if ed.Cmp(a, a) != 0 {
		t.Fatal("expected equal")
	}
	if err := ed.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestErrDecimalStops(t *testing.T) {
	ed := NewErrDecimal(&mathCtx)
	one := NewFromInt64(1)
	z := ed.Quo(one, zero)
	if !z.IsZero() {
		t.Fatalf("expected zero result, got %s", z.text())
	}
	if z := ed.Add(one, one); !z.IsZero() {
		t.Fatalf("expected skipped Add, got %s", z.text())
	}
	if z := ed.Sqrt(NewFromInt64(4)); !z.IsZero() {
		t.Fatalf("expected skipped Sqrt, got %s", z.text())
	}
	if c := ed.Cmp(one, zero); c != 0 {
		t.Fatalf("expected skipped Cmp, got %d", c)
	}
	if err := ed.Err(); errors.Cause(err) != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestErrDecimalFirstError(t *testing.T) {
	ed := NewErrDecimal(&mathCtx)
	ed.Ln(NewFromInt64(-1))
	ed.Quo(NewFromInt64(1), zero)
	if err := ed.Err(); errors.Cause(err) != ErrInvalidOperand {
		t.Fatalf("expected ErrInvalidOperand, got %v", err)
	}
}
