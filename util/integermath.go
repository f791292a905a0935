package util

import "math/big"

// Max returns the maximum value of inputs x, y
func Max(x int, y int) int {
	if x > y {
		return x
	}
	return y
}

// Min returns the minimum value of inputs x, y
func Min(x int, y int) int {
	if x < y {
		return x
	}
	return y
}

// Ceil computes the ceiling of x/y for x, y being integers
func Ceil(x int, y int) int {
	if x == 0 {
		return 0
	}
	return 1 + ((Abs(x) - 1) / Abs(y))
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Log2Floor computes floor(log2(num/den)) for positive num, den
func Log2Floor(num, den *big.Int) int {
	e := num.BitLen() - den.BitLen()
	// num/den lies in [2^(e-1), 2^(e+1)), one comparison settles it
	n, d := num, den
	if e >= 0 {
		d = new(big.Int).Lsh(den, uint(e))
	} else {
		n = new(big.Int).Lsh(num, uint(-e))
	}
	if n.Cmp(d) < 0 {
		e--
	}
	return e
}

// ScaleFloor computes floor(num/den * 2^shift); it returns the quotient, the remainder
// and the scaled denominator the remainder is relative to
func ScaleFloor(num, den *big.Int, shift int) (*big.Int, *big.Int, *big.Int) {
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if shift >= 0 {
		n.Lsh(n, uint(shift))
	} else {
		d.Lsh(d, uint(-shift))
	}
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	return q, r, d
}
