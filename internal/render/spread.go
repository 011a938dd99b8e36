package render

// EvenSpread lays values across length slots in order. Each value gets
// length/len(values) consecutive slots and the leftover slots are appended at
// the end filled with values[0].
func EvenSpread[T any](values []T, length int) ([]T, error) {
	if len(values) < 1 {
		return nil, ErrEmptyColorList
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}

	per := length / len(values)
	out := make([]T, 0, length)
	for _, v := range values {
		for i := 0; i < per; i++ {
			out = append(out, v)
		}
	}
	for i := 0; i < length%len(values); i++ {
		out = append(out, values[0])
	}
	return out, nil
}

// Spread lays values across length slots in bands of width, cycling through
// values until the slots are filled. The last band is cut short if needed.
// A width of 0 yields an empty result; callers that need length slots must
// reject it first.
func Spread[T any](values []T, width, length int) ([]T, error) {
	if len(values) < 1 {
		return nil, ErrEmptyColorList
	}
	if length < 0 || width < 0 {
		return nil, ErrNegativeLength
	}

	out := make([]T, 0, length)
	if width == 0 {
		return out, nil
	}
	idx := 0
	for left := length; left > 0; left -= width {
		for i := 0; i < min(width, left); i++ {
			out = append(out, values[idx])
		}
		idx = (idx + 1) % len(values)
	}
	return out, nil
}
