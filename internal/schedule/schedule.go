package schedule

import (
	"errors"
	"fmt"

	"github.com/ivlev/keyframer/internal/curve"
	"github.com/ivlev/keyframer/internal/indexspec"
	"github.com/ivlev/keyframer/internal/keyframe"
)

// ErrBadStrengths reports a Strengths value that was not built with Scalar or
// Values.
var ErrBadStrengths = errors.New("strengths must be a scalar or a float list")

// Strengths is the input of the batched path: either a bare scalar, which
// means "no batch data supplied", or an explicit per-frame strength list.
// The zero value is invalid; use Scalar or Values.
type Strengths struct {
	kind strengthsKind
	list []float64
}

type strengthsKind int

const (
	strengthsInvalid strengthsKind = iota
	strengthsScalar
	strengthsList
)

func (k strengthsKind) String() string {
	switch k {
	case strengthsScalar:
		return "scalar"
	case strengthsList:
		return "list"
	default:
		return "invalid"
	}
}

// Scalar marks the batched input as a plain number, i.e. no batch data
func Scalar() Strengths {
	return Strengths{kind: strengthsScalar}
}

// Values wraps an explicit per-frame strength list
func Values(list []float64) Strengths {
	return Strengths{kind: strengthsList, list: list}
}

// Single builds a collection holding one keyframe, then folds prev in. Like
// every entry point it returns a fresh collection and never mutates prev.
func Single(index int, strength float64, prev *keyframe.Collection) *keyframe.Collection {
	curr := keyframe.NewCollection()
	curr.Add(keyframe.Keyframe{Index: index, Strength: strength})
	foldPrev(curr, prev)
	return curr
}

// FromString parses an index expression (see indexspec.Parse) into a fresh
// collection, then folds prev in. latentCount is -1 when the batch length is
// unknown.
func FromString(expr string, latentCount int, prev *keyframe.Collection) (*keyframe.Collection, error) {
	kfs, err := indexspec.Parse(expr, latentCount)
	if err != nil {
		return nil, err
	}

	curr := keyframe.NewCollection()
	for _, kf := range kfs {
		curr.Add(kf)
	}
	foldPrev(curr, prev)
	return curr, nil
}

// FromCurve generates an interpolation curve (see curve.Generate) into a
// fresh collection, then folds prev in.
func FromCurve(p curve.Params, prev *keyframe.Collection) (*keyframe.Collection, error) {
	kfs, err := curve.Generate(p)
	if err != nil {
		return nil, err
	}

	curr := keyframe.NewCollection()
	for _, kf := range kfs {
		curr.Add(kf)
	}
	foldPrev(curr, prev)
	return curr, nil
}

// FromBatch maps a raw strength list onto consecutive frames 0..n-1, then
// folds prev in. A Scalar input generates nothing and simply carries prev
// through; an unconstructed Strengths is a type error.
func FromBatch(s Strengths, prev *keyframe.Collection) (*keyframe.Collection, error) {
	curr := keyframe.NewCollection()

	switch s.kind {
	case strengthsScalar:
		// no batch data supplied, nothing to generate
	case strengthsList:
		for i, v := range s.list {
			curr.Add(keyframe.Keyframe{Index: i, Strength: v})
		}
	default:
		return nil, fmt.Errorf("%w: got %s", ErrBadStrengths, s.kind)
	}

	foldPrev(curr, prev)
	return curr, nil
}

// foldPrev copies every entry of prev into curr. Add keeps the first writer
// per index, so curr's freshly generated entries survive collisions and prev
// contributes only indices curr does not already cover. A nil prev and an
// empty prev behave identically.
func foldPrev(curr, prev *keyframe.Collection) {
	if prev == nil {
		return
	}
	for _, kf := range prev.All() {
		curr.Add(kf)
	}
}
