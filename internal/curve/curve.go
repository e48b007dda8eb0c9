package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/ivlev/keyframer/internal/keyframe"
)

// Shape selects the easing applied between the two strength endpoints
type Shape string

const (
	Linear    Shape = "linear"
	EaseIn    Shape = "ease-in"
	EaseOut   Shape = "ease-out"
	EaseInOut Shape = "ease-in-out"
)

var (
	// ErrReversedWindow reports a frame window whose start exceeds its end.
	ErrReversedWindow = errors.New("index_from must not exceed index_to_excl")

	// ErrMixedSign reports endpoints on opposite sides of zero.
	ErrMixedSign = errors.New("curve endpoints must be both negative or both non-negative")

	// ErrUnknownShape reports an unrecognized interpolation shape.
	ErrUnknownShape = errors.New("unknown interpolation shape")
)

// ParseShape converts a user-facing shape name to a Shape
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case Linear, EaseIn, EaseOut, EaseInOut:
		return Shape(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// Params describe one interpolated strength ramp over a frame window.
//
// The window is [IndexFrom, IndexToExcl); its width is the number of curve
// points generated. LastFramePosition is the batch's last valid frame index
// plus one, used to trim points past the end of the batch; 0 when unknown.
type Params struct {
	IndexFrom         int
	IndexToExcl       int
	StrengthFrom      float64
	StrengthTo        float64
	Shape             Shape
	RevertAtMidpoint  bool
	LastFramePosition int
}

// Generate produces one keyframe per curve point, easing the strength from
// StrengthFrom to StrengthTo across the frame window.
//
// With RevertAtMidpoint only the forward half of the window is eased and the
// half is then mirrored back onto itself, so the total point count is
// 2*(steps/2+1) rather than steps; the off-by-one for odd widths is part of
// the contract. Points at negative frame numbers and points past
// LastFramePosition are dropped after generation, which can leave the result
// empty. A zero-width window without revert is also empty. Neither case is an
// error.
func Generate(p Params) ([]keyframe.Keyframe, error) {
	if p.IndexFrom > p.IndexToExcl {
		return nil, fmt.Errorf("%w: %d > %d", ErrReversedWindow, p.IndexFrom, p.IndexToExcl)
	}
	if p.IndexFrom < 0 && p.IndexToExcl >= 0 {
		return nil, fmt.Errorf("%w: got %d and %d", ErrMixedSign, p.IndexFrom, p.IndexToExcl)
	}

	steps := p.IndexToExcl - p.IndexFrom
	diff := p.StrengthTo - p.StrengthFrom

	var t []float64
	if p.RevertAtMidpoint {
		t = linspace(0, 1, steps/2+1)
	} else {
		t = linspace(0, 1, steps)
	}

	var weights []float64
	switch p.Shape {
	case Linear:
		weights = linspace(p.StrengthFrom, p.StrengthTo, len(t))
	case EaseIn:
		weights = ease(t, func(x float64) float64 {
			return p.StrengthFrom + diff*x*x
		})
	case EaseOut:
		weights = ease(t, func(x float64) float64 {
			return p.StrengthFrom + diff*(1-(1-x)*(1-x))
		})
	case EaseInOut:
		weights = ease(t, func(x float64) float64 {
			return p.StrengthFrom + diff*(1-math.Cos(x*math.Pi))/2
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, p.Shape)
	}

	if p.RevertAtMidpoint {
		mirrored := make([]float64, 0, 2*len(weights))
		mirrored = append(mirrored, weights...)
		for i := len(weights) - 1; i >= 0; i-- {
			mirrored = append(mirrored, weights[i])
		}
		weights = mirrored
	}

	frames := make([]int, len(weights))
	for i := range frames {
		frames[i] = p.IndexFrom + i
	}

	// Frames before index 0 do not exist; drop their points.
	if p.IndexFrom < 0 {
		drop := -p.IndexFrom
		if drop > len(weights) {
			drop = len(weights)
		}
		weights = weights[drop:]
		frames = frames[drop:]
	}

	// The window may extend past the batch's last frame; trim the tail.
	if p.IndexToExcl > p.LastFramePosition {
		drop := p.IndexToExcl - p.LastFramePosition
		if drop > len(weights) {
			drop = len(weights)
		}
		weights = weights[:len(weights)-drop]
		frames = frames[:len(frames)-drop]
	}

	out := make([]keyframe.Keyframe, len(weights))
	for i := range weights {
		out[i] = keyframe.Keyframe{Index: frames[i], Strength: weights[i]}
	}
	return out, nil
}

// ease maps every progress value through f
func ease(t []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		out[i] = f(x)
	}
	return out
}

// linspace returns n evenly spaced values from a to b, endpoints included.
// n == 1 yields just a; n <= 0 yields nothing.
func linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{a}
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}
