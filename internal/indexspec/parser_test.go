package indexspec

import (
	"errors"
	"testing"

	"github.com/ivlev/keyframer/internal/keyframe"
)

func TestParseSingleIndexes(t *testing.T) {
	kfs, err := Parse("0, 3, 5=0.5", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 0, Strength: 1.0},
		{Index: 3, Strength: 1.0},
		{Index: 5, Strength: 0.5},
	}
	assertKeyframes(t, kfs, want)
}

func TestParseRangeExclusiveUpperBound(t *testing.T) {
	kfs, err := Parse("2:5", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 2, Strength: 1.0},
		{Index: 3, Strength: 1.0},
		{Index: 4, Strength: 1.0},
	}
	assertKeyframes(t, kfs, want)
}

func TestParseMixedExample(t *testing.T) {
	kfs, err := Parse("0, 5:10=0.5, -1=0.2", 12)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 0, Strength: 1.0},
		{Index: 5, Strength: 0.5},
		{Index: 6, Strength: 0.5},
		{Index: 7, Strength: 0.5},
		{Index: 8, Strength: 0.5},
		{Index: 9, Strength: 0.5},
		{Index: 11, Strength: 0.2},
	}
	assertKeyframes(t, kfs, want)
}

func TestParseNegativeIndexResolution(t *testing.T) {
	kfs, err := Parse("-1", 5)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(kfs) != 1 || kfs[0].Index != 4 {
		t.Errorf("Expected -1 to resolve to index 4, got %v", kfs)
	}
}

func TestParseNegativeIndexUnknownCount(t *testing.T) {
	_, err := Parse("-1", -1)
	if !errors.Is(err, ErrIndexRange) {
		t.Errorf("Expected ErrIndexRange, got %v", err)
	}
}

func TestParseNegativeIndexTooFar(t *testing.T) {
	_, err := Parse("-7", 5)
	if !errors.Is(err, ErrIndexRange) {
		t.Errorf("Expected ErrIndexRange, got %v", err)
	}
}

func TestParseIndexPastEnd(t *testing.T) {
	_, err := Parse("10", 10)
	if !errors.Is(err, ErrIndexRange) {
		t.Errorf("Expected ErrIndexRange for index == count, got %v", err)
	}
}

func TestParseNegativeRangeEndpoints(t *testing.T) {
	// Range endpoints skip validation and use list-slice semantics
	kfs, err := Parse("-3:-1", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 7, Strength: 1.0},
		{Index: 8, Strength: 1.0},
	}
	assertKeyframes(t, kfs, want)
}

func TestParseRangeClampsToBatch(t *testing.T) {
	kfs, err := Parse("8:20", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 8, Strength: 1.0},
		{Index: 9, Strength: 1.0},
	}
	assertKeyframes(t, kfs, want)
}

func TestParseRangeUnknownCountIsEmpty(t *testing.T) {
	kfs, err := Parse("2:5", -1)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(kfs) != 0 {
		t.Errorf("Expected empty expansion with unknown count, got %v", kfs)
	}
}

func TestParseEmptyString(t *testing.T) {
	kfs, err := Parse("", 10)
	if err != nil {
		t.Fatalf("Expected no error for empty input, got %v", err)
	}
	if len(kfs) != 0 {
		t.Errorf("Expected no keyframes, got %v", kfs)
	}
}

func TestParseFormatErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"bad index", "abc", ErrBadIndex},
		{"bad range endpoint", "1:x", ErrBadIndex},
		{"bad strength", "0=oops", ErrBadStrength},
		{"negative strength", "0=-0.5", ErrNegativeStrength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr, 10)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q): expected %v, got %v", tt.expr, tt.want, err)
			}
		})
	}
}

func TestParseAbortsOnFirstBadGroup(t *testing.T) {
	_, err := Parse("0, oops, 3", 10)
	if !errors.Is(err, ErrBadIndex) {
		t.Errorf("Expected ErrBadIndex, got %v", err)
	}
}

func TestParseDedupByFullPair(t *testing.T) {
	// Same (index, strength) pair collapses; same index with a different
	// strength survives the parse as two pairs.
	kfs, err := Parse("3=0.5, 3=0.5, 3=0.7", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 3, Strength: 0.5},
		{Index: 3, Strength: 0.7},
	}
	assertKeyframes(t, kfs, want)
}

func TestParseWhitespaceTrimmed(t *testing.T) {
	kfs, err := Parse("  1 ,  2 : 4 = 0.5 ", 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []keyframe.Keyframe{
		{Index: 1, Strength: 1.0},
		{Index: 2, Strength: 0.5},
		{Index: 3, Strength: 0.5},
	}
	assertKeyframes(t, kfs, want)
}

func assertKeyframes(t *testing.T, got, want []keyframe.Keyframe) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d keyframes, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
