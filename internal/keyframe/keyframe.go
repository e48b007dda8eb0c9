package keyframe

import "sort"

// Keyframe assigns a conditioning strength to a single frame of a latent
// batch. Strength is expected to be in [0, 10]; the entry points that accept
// user input enforce the non-negative part.
type Keyframe struct {
	Index    int
	Strength float64
}

// Collection holds at most one keyframe per frame index. The first keyframe
// added for an index wins; later Add calls with the same index are silent
// no-ops. Iteration order is insertion order, not frame order - callers that
// apply strengths frame by frame should use Sorted.
type Collection struct {
	byIndex map[int]Keyframe
	order   []int
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{
		byIndex: make(map[int]Keyframe),
	}
}

// Add inserts kf unless a keyframe for the same index is already present
func (c *Collection) Add(kf Keyframe) {
	if _, ok := c.byIndex[kf.Index]; ok {
		return
	}
	c.byIndex[kf.Index] = kf
	c.order = append(c.order, kf.Index)
}

// Get returns the keyframe stored for the given frame index
func (c *Collection) Get(index int) (Keyframe, bool) {
	kf, ok := c.byIndex[index]
	return kf, ok
}

// Len returns the number of stored keyframes
func (c *Collection) Len() int {
	return len(c.order)
}

// All returns the keyframes in insertion order. The slice is a copy; repeated
// calls on the same collection yield the same order.
func (c *Collection) All() []Keyframe {
	out := make([]Keyframe, 0, len(c.order))
	for _, idx := range c.order {
		out = append(out, c.byIndex[idx])
	}
	return out
}

// Sorted returns the keyframes ordered by ascending frame index
func (c *Collection) Sorted() []Keyframe {
	out := c.All()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Index < out[j].Index
	})
	return out
}
