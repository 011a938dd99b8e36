package pattern

import "github.com/coreman2200/opcstrip/internal/render"

func validateColor(color string) (render.Color, error) {
	c, err := render.ParseColor(color)
	if err != nil {
		return render.Color{}, newValidationError("color", `color must be in format "#RRGGBB"`, err)
	}
	return c, nil
}

func validateColorList(colors []string) ([]render.Color, error) {
	if !render.IsColorList(colors) {
		return nil, newValidationError("color_list",
			`color_list must be a non-empty list of strings in format "#RRGGBB"`, colorListCause(colors))
	}
	return render.ParseColors(colors)
}

// colorListCause picks the most specific underlying error for a bad list.
func colorListCause(colors []string) error {
	for _, c := range colors {
		if !render.IsColor(c) {
			return &render.InvalidColorError{Value: c}
		}
	}
	return render.ErrEmptyColorList
}

func validateSpeed(speed int) error {
	if speed <= 0 {
		return newValidationError("speed", "speed must be a positive number of frames per second", nil)
	}
	return nil
}

func clampLEDs(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
