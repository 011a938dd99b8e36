package render

// RotateLeft returns a copy of seq rotated left by n (mod len(seq)).
// A negative n rotates right.
func RotateLeft[T any](seq []T, n int) ([]T, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	k := mod(n, len(seq))
	out := make([]T, 0, len(seq))
	out = append(out, seq[k:]...)
	return append(out, seq[:k]...), nil
}

// RotateRight returns a copy of seq rotated right by n (mod len(seq)).
func RotateRight[T any](seq []T, n int) ([]T, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	return RotateLeft(seq, -mod(n, len(seq)))
}

// mod is the floored modulo, always in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
