package render

// Lerp moves current towards goal by p per channel. p is not clamped:
// p > 1 overshoots goal and p < 0 moves away from it.
func Lerp(current, goal Color, p float64) Color {
	return Color{
		R: current.R + (goal.R-current.R)*p,
		G: current.G + (goal.G-current.G)*p,
		B: current.B + (goal.B-current.B)*p,
	}
}
