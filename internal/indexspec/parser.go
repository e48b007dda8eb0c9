package indexspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ivlev/keyframer/internal/keyframe"
)

var (
	// ErrBadIndex reports an index token that is not an integer.
	ErrBadIndex = errors.New("index must be an integer")

	// ErrBadStrength reports a strength token that is not a float.
	ErrBadStrength = errors.New("strength must be a float")

	// ErrNegativeStrength reports a parsed strength below zero.
	ErrNegativeStrength = errors.New("strength must not be negative")

	// ErrIndexRange reports an index that cannot be resolved against the
	// batch's frame count.
	ErrIndexRange = errors.New("index out of range")
)

// Parse expands an index expression like "0, 5:10=0.5, -1=0.2" into
// keyframes. Groups are comma separated; each group is a single index or a
// half-open range "A:B", optionally suffixed with "=S" to set the strength
// (default 1.0).
//
// latentCount is the total frame count of the target batch, or -1 when
// unknown. Negative single indices resolve against latentCount and are
// rejected when the count is unknown. Range endpoints are not validated; the
// range slices the materialized index list 0..latentCount-1, so negative
// endpoints wrap and out-of-bounds endpoints clamp, and an unknown count
// makes every range empty.
//
// The result is deduplicated by the full (index, strength) pair, in the order
// the pairs first appear. The first error aborts the whole parse.
func Parse(expr string, latentCount int) ([]keyframe.Keyframe, error) {
	if expr == "" {
		return nil, nil
	}

	allowNegative := latentCount > 0

	seen := make(map[keyframe.Keyframe]struct{})
	var chosen []keyframe.Keyframe
	add := func(kf keyframe.Keyframe) {
		if _, ok := seen[kf]; ok {
			return
		}
		seen[kf] = struct{}{}
		chosen = append(chosen, kf)
	}

	for _, group := range strings.Split(expr, ",") {
		group = strings.TrimSpace(group)

		strength := 1.0
		if eq := strings.Index(group, "="); eq >= 0 {
			rawStrength := strings.TrimSpace(group[eq+1:])
			group = strings.TrimSpace(group[:eq])

			s, err := strconv.ParseFloat(rawStrength, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadStrength, rawStrength)
			}
			if s < 0 {
				return nil, fmt.Errorf("%w: %v", ErrNegativeStrength, s)
			}
			strength = s
		}

		if colon := strings.Index(group, ":"); colon >= 0 {
			start, err := parseIndex(strings.TrimSpace(group[:colon]), latentCount, true, allowNegative)
			if err != nil {
				return nil, err
			}
			end, err := parseIndex(strings.TrimSpace(group[colon+1:]), latentCount, true, allowNegative)
			if err != nil {
				return nil, err
			}
			for _, i := range sliceIndexes(latentCount, start, end) {
				add(keyframe.Keyframe{Index: i, Strength: strength})
			}
		} else {
			index, err := parseIndex(group, latentCount, false, allowNegative)
			if err != nil {
				return nil, err
			}
			add(keyframe.Keyframe{Index: index, Strength: strength})
		}
	}

	return chosen, nil
}

// parseIndex converts a raw token to a frame index. Range endpoints skip
// validation entirely; sliceIndexes bounds them later.
func parseIndex(raw string, latentCount int, isRange, allowNegative bool) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadIndex, raw)
	}
	if isRange {
		return index, nil
	}

	if latentCount > 0 && index > latentCount-1 {
		return 0, fmt.Errorf("%w: index %d for %d total frames", ErrIndexRange, index, latentCount)
	}
	if index < 0 {
		if !allowNegative {
			return 0, fmt.Errorf("%w: negative index %d needs a known frame count", ErrIndexRange, index)
		}
		converted := latentCount + index
		if converted < 0 {
			return 0, fmt.Errorf("%w: index %d resolves to %d for %d total frames", ErrIndexRange, index, converted, latentCount)
		}
		index = converted
	}
	return index, nil
}

// sliceIndexes returns the frame indices selected by slicing the list
// 0..latentCount-1 from start to end, with list-slice semantics: negative
// endpoints count from the end, out-of-bounds endpoints clamp, and a reversed
// window is empty.
func sliceIndexes(latentCount, start, end int) []int {
	n := latentCount
	if n < 0 {
		n = 0
	}

	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	} else if start > n {
		start = n
	}
	if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	} else if end > n {
		end = n
	}

	var out []int
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}
