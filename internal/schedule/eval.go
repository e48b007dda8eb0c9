package schedule

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/keyframer/internal/curve"
	"github.com/ivlev/keyframer/internal/keyframe"
)

// ErrUnknownStep reports a step kind no entry point handles
var ErrUnknownStep = errors.New("unknown step kind")

// Result pairs a track name with its evaluated keyframes
type Result struct {
	Track string
	Keys  *keyframe.Collection
}

// Evaluate runs every track of the schedule against the given batch length.
// Tracks are independent pure computations, so they run concurrently; results
// keep the schedule's track order. latentCount is -1 when unknown.
func Evaluate(s *Schedule, latentCount int) ([]Result, error) {
	results := make([]Result, len(s.Tracks))

	var g errgroup.Group
	for i, tr := range s.Tracks {
		g.Go(func() error {
			keys, err := EvaluateTrack(tr, latentCount)
			if err != nil {
				return err
			}
			results[i] = Result{Track: tr.Name, Keys: keys}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// EvaluateTrack chains the track's steps: each step receives the running
// collection as prev, so on an index collision the later step's own entries
// win and earlier steps fill the gaps.
func EvaluateTrack(tr Track, latentCount int) (*keyframe.Collection, error) {
	var acc *keyframe.Collection
	for i, st := range tr.Steps {
		next, err := EvaluateStep(st, latentCount, acc)
		if err != nil {
			return nil, fmt.Errorf("track %q step %d: %w", tr.Name, i, err)
		}
		acc = next
	}
	if acc == nil {
		acc = keyframe.NewCollection()
	}
	return acc, nil
}

// EvaluateStep dispatches one step to its entry point
func EvaluateStep(st Step, latentCount int, prev *keyframe.Collection) (*keyframe.Collection, error) {
	switch st.Kind {
	case "single":
		return Single(st.Index, st.Strength, prev), nil

	case "indexes":
		return FromString(st.Indexes, latentCount, prev)

	case "curve":
		shape, err := curve.ParseShape(st.Shape)
		if err != nil {
			return nil, err
		}
		lastFrame := 0
		if latentCount > 0 {
			lastFrame = latentCount
		}
		return FromCurve(curve.Params{
			IndexFrom:         st.From,
			IndexToExcl:       st.ToExcl,
			StrengthFrom:      st.StrengthFrom,
			StrengthTo:        st.StrengthTo,
			Shape:             shape,
			RevertAtMidpoint:  st.RevertAtMidpoint,
			LastFramePosition: lastFrame,
		}, prev)

	case "batch":
		if len(st.Batch) == 0 {
			return FromBatch(Scalar(), prev)
		}
		return FromBatch(Values(st.Batch), prev)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, st.Kind)
	}
}

// Resolve converts evaluated results to their persisted form, frame-ordered
func Resolve(results []Result) *Resolved {
	r := &Resolved{Version: "1.0"}
	for _, res := range results {
		track := ResolvedTrack{Name: res.Track}
		for _, kf := range res.Keys.Sorted() {
			track.Frames = append(track.Frames, ResolvedFrame{Index: kf.Index, Strength: kf.Strength})
		}
		r.Tracks = append(r.Tracks, track)
	}
	return r
}
