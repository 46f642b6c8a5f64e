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

// Errors returned by bignum operations. They are wrapped with context, so
// compare against errors.Cause(err).
var (
	// ErrFormat is returned for a malformed numeric literal.
	ErrFormat = errors.New("invalid number format")
	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidOperand is returned when an operand is outside an
	// operation's domain, e.g. a non-integer operand to Rem.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrInvalidPrecision is returned for a negative or too small precision.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrRange is returned when an argument is beyond a supported bound.
	ErrRange = errors.New("argument out of range")
)

// ErrDecimal performs operations on decimals and collects errors during
// operations. If an error is already set, the operation is skipped and the
// zero Decimal returned. Designed to be used for many operations in a row,
// with a single error check at the end.
type ErrDecimal struct {
	err error
	Ctx *Context
}

// NewErrDecimal creates a ErrDecimal with given context.
func NewErrDecimal(c *Context) *ErrDecimal {
	return &ErrDecimal{
		Ctx: c,
	}
}

// Err returns the first error encountered.
func (e *ErrDecimal) Err() error {
	return e.err
}

// Add returns e.Ctx.Add(x, y).
func (e *ErrDecimal) Add(x, y Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	return e.Ctx.Add(x, y)
}

// Sub returns e.Ctx.Sub(x, y).
func (e *ErrDecimal) Sub(x, y Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	return e.Ctx.Sub(x, y)
}

// Mul returns e.Ctx.Mul(x, y).
func (e *ErrDecimal) Mul(x, y Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	return e.Ctx.Mul(x, y)
}

// Neg returns e.Ctx.Neg(x).
func (e *ErrDecimal) Neg(x Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	return e.Ctx.Neg(x)
}

// Abs returns e.Ctx.Abs(x).
func (e *ErrDecimal) Abs(x Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	return e.Ctx.Abs(x)
}

// Cmp returns 0 if Err is set. Otherwise returns x.Cmp(y).
func (e *ErrDecimal) Cmp(x, y Decimal) int {
	if e.err != nil {
		return 0
	}
	return x.Cmp(y)
}

// Quo returns e.Ctx.Quo(x, y).
func (e *ErrDecimal) Quo(x, y Decimal) Decimal {
	return e.op2(e.Ctx.Quo, x, y)
}

// QuoInteger returns e.Ctx.QuoInteger(x, y).
func (e *ErrDecimal) QuoInteger(x, y Decimal) Decimal {
	return e.op2(e.Ctx.QuoInteger, x, y)
}

// Rem returns e.Ctx.Rem(x, y).
func (e *ErrDecimal) Rem(x, y Decimal) Decimal {
	return e.op2(e.Ctx.Rem, x, y)
}

// GCD returns e.Ctx.GCD(x, y).
func (e *ErrDecimal) GCD(x, y Decimal) Decimal {
	return e.op2(e.Ctx.GCD, x, y)
}

// Sqrt returns e.Ctx.Sqrt(x).
func (e *ErrDecimal) Sqrt(x Decimal) Decimal {
	return e.op1(e.Ctx.Sqrt, x)
}

// Sin returns e.Ctx.Sin(x).
func (e *ErrDecimal) Sin(x Decimal) Decimal {
	return e.op1(e.Ctx.Sin, x)
}

// Ln returns e.Ctx.Ln(x).
func (e *ErrDecimal) Ln(x Decimal) Decimal {
	return e.op1(e.Ctx.Ln, x)
}

// IntPow returns e.Ctx.IntPow(x, n).
func (e *ErrDecimal) IntPow(x Decimal, n int) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	var d Decimal
	d, e.err = e.Ctx.IntPow(x, n)
	return d
}

// ModPow returns e.Ctx.ModPow(x, y, m).
func (e *ErrDecimal) ModPow(x, y, m Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	var d Decimal
	d, e.err = e.Ctx.ModPow(x, y, m)
	return d
}

// Truncate returns x.Truncate(places).
func (e *ErrDecimal) Truncate(x Decimal, places int) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	var d Decimal
	d, e.err = x.Truncate(places)
	return d
}

func (e *ErrDecimal) op1(f func(Decimal) (Decimal, error), x Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	var d Decimal
	d, e.err = f(x)
	return d
}

func (e *ErrDecimal) op2(f func(Decimal, Decimal) (Decimal, error), x, y Decimal) Decimal {
	if e.err != nil {
		return Decimal{}
	}
	var d Decimal
	d, e.err = f(x, y)
	return d
}
