package int10

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
)

func TestBig(t *testing.T) {
	for i := 0; i < 1e3; i++ {
		x := getBigString()
		y := getBigString()
		t.Run(fmt.Sprintf("%s, %s", x, y), func(t *testing.T) {
			t.Parallel()
			testBig(t, x, y)
		})
	}
}

func getBigString() string {
	n := rand.Intn(250)
	var s string
	if n == 0 {
		s = "0"
	} else {
		b := make([]byte, n)
		for j := range b {
			b[j] = '0' + byte(rand.Intn(10))
		}
		s = string(b)
	}
	return s
}

func testBig(t *testing.T, x, y string) {
	var bx, by big.Int
	if _, ok := bx.SetString(x, 10); !ok {
		t.Fatal(x)
	}
	if _, ok := by.SetString(y, 10); !ok {
		t.Fatal(y)
	}
	ix, ok := newIntString(x)
	if !ok {
		t.Fatal(x)
	}
	iy, ok := newIntString(y)
	if !ok {
		t.Fatal(y)
	}

	ops := []string{
		"+",
		"-",
		"*",
		"schoolbook",
		"cmp",
	}
	bfns := []func() string{
		func() string { return new(big.Int).Add(&bx, &by).String() },
		func() string {
			if bx.Cmp(&by) < 0 {
				return "borrow"
			}
			return new(big.Int).Sub(&bx, &by).String()
		},
		func() string { return new(big.Int).Mul(&bx, &by).String() },
		func() string { return new(big.Int).Mul(&bx, &by).String() },
		func() string { return fmt.Sprint(bx.Cmp(&by)) },
	}
	ifns := []func() string{
		func() string { return ix.Add(iy).String() },
		func() string {
			z, borrow := ix.Sub(iy)
			if borrow {
				return "borrow"
			}
			return z.String()
		},
		func() string { return ix.Mul(iy).String() },
		func() string { return ix.MulSchoolbook(iy).String() },
		func() string { return fmt.Sprint(ix.Cmp(iy)) },
	}

	for i, bfn := range bfns {
		t.Run(ops[i], func(t *testing.T) {
			bs := bfn()
			is := ifns[i]()
			if bs != is {
				t.Fatalf("got %s, want %s", is, bs)
			}
		})
	}
}
