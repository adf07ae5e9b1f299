package contract

import "math"

// Checked u64 arithmetic. Any would-be wrap aborts the call instead of
// minting or vanishing value.

func CheckedMul(a, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, ErrArithmeticOverflow
	}
	return a * b, nil
}

func CheckedDiv(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrArithmeticOverflow
	}
	return a / b, nil
}

func CheckedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrArithmeticOverflow
	}
	return a - b, nil
}

func CheckedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrArithmeticOverflow
	}
	return a + b, nil
}
