package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient returns steps colours blended from start to end in RGB space,
// top to bottom. Unparseable endpoints degrade to a flat fill of whichever
// endpoint did parse.
func Gradient(start, end string, steps int) []string {
	if steps <= 0 {
		return nil
	}

	from, errFrom := colorful.Hex(start)
	to, errTo := colorful.Hex(end)
	switch {
	case errFrom != nil && errTo != nil:
		return repeat("", steps)
	case errFrom != nil:
		return repeat(to.Hex(), steps)
	case errTo != nil:
		return repeat(from.Hex(), steps)
	}

	out := make([]string, steps)
	for i := range out {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		out[i] = from.BlendRgb(to, t).Clamped().Hex()
	}
	return out
}

func repeat(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}
