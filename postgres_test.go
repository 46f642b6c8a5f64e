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

//go:build postgres
// +build postgres

// Run a test against Postgres (or CockroachDB) servers:
// go test -run Postgres -tags postgres -postgres 'user=postgres sslmode=disable;postgresql://root@localhost:26277?sslmode=disable'

package bignum

import (
	crand "crypto/rand"
	"database/sql"
	"encoding/binary"
	"flag"
	"math/rand"
	"runtime"
	"strings"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

var (
	flagPostgres = flag.String("postgres", "postgres://postgres@localhost?sslmode=disable", "Postgres connection strings; specify multiple with semicolons")
	flagPgRuns   = flag.Int("postgres-runs", 2000, "number of random operand pairs to check")
)

// pgOp is an operation evaluated both by a numeric server and locally. Both
// results must be equal.
type pgOp struct {
	name  string
	query string
	ints  bool // operands are truncated to integers first
	div   bool // skipped for a zero divisor
	local func(x, y Decimal) (Decimal, error)
}

var pgOps = []pgOp{
	{name: "add", query: "SELECT ($1::numeric + $2::numeric)::text", local: func(x, y Decimal) (Decimal, error) {
		return testCtx.Add(x, y), nil
	}},
	{name: "sub", query: "SELECT ($1::numeric - $2::numeric)::text", local: func(x, y Decimal) (Decimal, error) {
		return testCtx.Sub(x, y), nil
	}},
	{name: "mul", query: "SELECT ($1::numeric * $2::numeric)::text", local: func(x, y Decimal) (Decimal, error) {
		return testCtx.Mul(x, y), nil
	}},
	{name: "div", query: "SELECT div($1::numeric, $2::numeric)::text", div: true, local: testCtx.QuoInteger},
	{name: "mod", query: "SELECT mod($1::numeric, $2::numeric)::text", ints: true, div: true, local: testCtx.Rem},
}

func TestPostgres(t *testing.T) {
	var seed int64
	err := binary.Read(crand.Reader, binary.LittleEndian, &seed)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("seed: %d", seed)
	rnd := rand.New(rand.NewSource(seed))

	cs := strings.Split(*flagPostgres, ";")
	conns := make([]*sql.DB, len(cs))
	for i, s := range cs {
		conn, err := sql.Open("postgres", s)
		if err != nil {
			t.Fatalf("%s: %s", s, err)
		}
		defer conn.Close()
		conns[i] = conn
	}

	type pair struct{ x, y string }
	pairs := make([]pair, *flagPgRuns)
	for i := range pairs {
		pairs[i] = pair{x: randDecimalString(rnd, 30, 15), y: randDecimalString(rnd, 30, 15)}
	}

	slots := make(chan struct{}, runtime.GOMAXPROCS(0))
	errch := make(chan error, len(pairs))
	for _, p := range pairs {
		slots <- struct{}{}
		go func(p pair) {
			defer func() { <-slots }()
			errch <- checkPostgres(conns, cs, p.x, p.y)
		}(p)
	}
	for range pairs {
		if err := <-errch; err != nil {
			t.Fatalf("%+v", err)
		}
	}
}

func checkPostgres(conns []*sql.DB, names []string, xs, ys string) error {
	x, err := NewFromString(xs)
	if err != nil {
		return errors.Wrap(err, xs)
	}
	y, err := NewFromString(ys)
	if err != nil {
		return errors.Wrap(err, ys)
	}
	for _, op := range pgOps {
		x, y, xs, ys := x, y, xs, ys
		if op.ints {
			x, y = truncate(x, 0), truncate(y, 0)
			xs, ys = x.text(), y.text()
		}
		if op.div && y.IsZero() {
			continue
		}
		local, err := op.local(x, y)
		if err != nil {
			return errors.Wrapf(err, "%s(%s, %s)", op.name, xs, ys)
		}
		for i, db := range conns {
			var s string
			if err := db.QueryRow(op.query, xs, ys).Scan(&s); err != nil {
				return errors.Wrapf(err, "%s: %s(%s, %s)", names[i], op.name, xs, ys)
			}
			remote, err := NewFromString(s)
			if err != nil {
				return errors.Wrapf(err, "%s: %s", names[i], s)
			}
			if !remote.Equal(local) {
				return errors.Errorf("%s(%s, %s)\n\tdigits: %d\n\t%s (bignum)\n\t%s (%s)",
					op.name, xs, ys, sameDigits(local.text(), remote.text()), local.text(), remote.text(), names[i])
			}
		}
	}
	return nil
}

// sameDigits returns the number of identical digits of a and b.
func sameDigits(a, b string) int {
	s := 0
	m := 0
	for s < len(a) && s < len(b) && a[s] == b[s] {
		switch a[s] {
		case '-', '.':
			m++
		}
		s++
	}
	return s - m
}
