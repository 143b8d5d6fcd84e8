package util

import "golang.org/x/exp/constraints"

// FloorDiv divides rounding toward negative infinity, unlike Go's truncating /.
func FloorDiv[A constraints.Signed](a A, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a mod b with the sign of b, so -1 mod 12 is 11.
func FloorMod[A constraints.Signed](a A, b A) A {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func Abs[A constraints.Signed](a A) A {
	if a < 0 {
		return -a
	}
	return a
}
