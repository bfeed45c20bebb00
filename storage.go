// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import "github.com/gviegas/input/internal/bitm"

// doubleBufferedFixed holds one fixed-size element per control slot,
// duplicated per (framebuffer, side). It backs controlState,
// latestRecordedTimestamp and latestRecordedSample.
type doubleBufferedFixed[T any] struct {
	back  [][]T
	front [][]T
}

func newDoubleBufferedFixed[T any](framebufferCount int) doubleBufferedFixed[T] {
	return doubleBufferedFixed[T]{
		back:  make([][]T, framebufferCount),
		front: make([][]T, framebufferCount),
	}
}

func growTo[T any](s []T, n int) []T {
	if n <= len(s) {
		return s[:n]
	}
	return append(s, make([]T, n-len(s))...)
}

// resize extends or truncates every (framebuffer, side) vector to n
// elements, the control count of the owning type.
func (d *doubleBufferedFixed[T]) resize(n int) {
	for f := range d.back {
		d.back[f] = growTo(d.back[f], n)
		d.front[f] = growTo(d.front[f], n)
	}
}

// setFramebufferCount grows the outer per-framebuffer dimension to n,
// leaving existing framebuffers' rows untouched. The caller must follow
// up with resize to dimension any newly added rows.
func (d *doubleBufferedFixed[T]) setFramebufferCount(n int) {
	d.back = growTo(d.back, n)
	d.front = growTo(d.front, n)
}

// moveToFront copies the back vector of framebuffer fb into its front
// vector.
func (d *doubleBufferedFixed[T]) moveToFront(fb FramebufferRef) {
	copy(d.front[fb], d.back[fb])
}

// doubleBufferedDynamic holds a variable-length recording sequence per
// control slot, duplicated per (framebuffer, side). It backs
// allRecordedTimestamps and allRecordedSamples.
type doubleBufferedDynamic[T any] struct {
	back  [][][]T
	front [][][]T
}

func newDoubleBufferedDynamic[T any](framebufferCount int) doubleBufferedDynamic[T] {
	return doubleBufferedDynamic[T]{
		back:  make([][][]T, framebufferCount),
		front: make([][][]T, framebufferCount),
	}
}

// resize extends or truncates every (framebuffer, side) group-of-slots to
// n groups, the control count of the owning type. Both sides are resized,
// matching ControlsStorage.h's ResizeGroups looping over both sides; a
// control allocated since the last swap must still be front-addressable
// (e.g. by ControlRecordings) even though its front group is empty until
// the next swap populates it.
func (d *doubleBufferedDynamic[T]) resize(n int) {
	for f := range d.back {
		d.back[f] = growTo(d.back[f], n)
		d.front[f] = growTo(d.front[f], n)
	}
}

// setFramebufferCount grows the outer per-framebuffer dimension to n,
// leaving existing framebuffers' rows untouched. The caller must follow
// up with resize to dimension any newly added rows.
func (d *doubleBufferedDynamic[T]) setFramebufferCount(n int) {
	d.back = growTo(d.back, n)
	d.front = growTo(d.front, n)
}

// append adds vals to the back recording sequence of slot at framebuffer
// fb.
func (d *doubleBufferedDynamic[T]) append(fb FramebufferRef, slot int, vals ...T) {
	d.back[fb][slot] = append(d.back[fb][slot], vals...)
}

// moveToFront swaps the back vector-of-vectors of framebuffer fb into
// front, then reinitialises back to empty groups sized to controlCount.
func (d *doubleBufferedDynamic[T]) moveToFront(fb FramebufferRef, controlCount int) {
	d.front[fb] = d.back[fb]
	d.back[fb] = make([][]T, controlCount)
}

// typeStorage is the per-control-type storage substrate: five parallel
// doubly-buffered containers indexed by a dense control slot, plus the
// dense slot -> ControlRef table required by invariant 2.
type typeStorage[Sa, St any] struct {
	state           doubleBufferedFixed[St]
	latestTimestamp doubleBufferedFixed[Timestamp]
	latestSample    doubleBufferedFixed[Sa]
	allTimestamps   doubleBufferedDynamic[Timestamp]
	allSamples      doubleBufferedDynamic[Sa]
	// everFolded marks slots that have completed at least one ingress
	// fold, so the very first fold of a freshly allocated slot never
	// adhoc-merges its first sample into the zero-valued latest it
	// inherited from allocation (see foldFramebuffer).
	everFolded doubleBufferedFixed[bool]
	// slots tracks which dense indices are in use, searched on every
	// allocate. Bits are never unset (see DESIGN.md Open Question 1), so
	// in practice this always grows monotonically, but it is the
	// teacher's own idiom for this exact problem rather than a bare
	// counter.
	slots       bitm.Bitm[uint32]
	controlRefs []ControlRef
}

func newTypeStorage[Sa, St any](framebufferCount int) *typeStorage[Sa, St] {
	return &typeStorage[Sa, St]{
		state:           newDoubleBufferedFixed[St](framebufferCount),
		latestTimestamp: newDoubleBufferedFixed[Timestamp](framebufferCount),
		latestSample:    newDoubleBufferedFixed[Sa](framebufferCount),
		allTimestamps:   newDoubleBufferedDynamic[Timestamp](framebufferCount),
		allSamples:      newDoubleBufferedDynamic[Sa](framebufferCount),
		everFolded:      newDoubleBufferedFixed[bool](framebufferCount),
	}
}

// setFramebufferCount grows every container's outer per-framebuffer
// dimension to n, then re-dimensions any newly added rows to the current
// control count. Control types may be registered before Context.Init
// (the mandatory order, since RegisterControlType needs no framebuffer
// count and Database wiring needs the returned ControlTypeRefs before
// Init can be called), in which case their storage starts with zero
// framebuffer rows; Init calls this on every already-registered type
// once the framebuffer count is known. A type registered after Init
// already gets its storage sized correctly at construction time, making
// this a no-op for it.
func (s *typeStorage[Sa, St]) setFramebufferCount(n int) {
	s.state.setFramebufferCount(n)
	s.latestTimestamp.setFramebufferCount(n)
	s.latestSample.setFramebufferCount(n)
	s.allTimestamps.setFramebufferCount(n)
	s.allSamples.setFramebufferCount(n)
	s.everFolded.setFramebufferCount(n)

	count := s.controlCount()
	s.state.resize(count)
	s.latestTimestamp.resize(count)
	s.latestSample.resize(count)
	s.allTimestamps.resize(count)
	s.allSamples.resize(count)
	s.everFolded.resize(count)
}

// allocate assigns controlRef the next dense slot, searching the slot
// bitmap for a free bit and growing it by one Uint's worth on a miss,
// then resizes every container to match. Slot removal is reserved; see
// DESIGN.md Open Question 1.
func (s *typeStorage[Sa, St]) allocate(controlRef ControlRef) int {
	slot, ok := s.slots.Search()
	if !ok {
		slot = s.slots.Grow(1)
	}
	s.slots.Set(slot)

	s.controlRefs = growTo(s.controlRefs, slot+1)
	s.controlRefs[slot] = controlRef

	n := len(s.controlRefs)
	s.state.resize(n)
	s.latestTimestamp.resize(n)
	s.latestSample.resize(n)
	s.allTimestamps.resize(n)
	s.allSamples.resize(n)
	s.everFolded.resize(n)
	return slot
}

func (s *typeStorage[Sa, St]) controlCount() int { return len(s.controlRefs) }

// moveToFront realises swap step 3 for this type: a full copy of the
// fixed-size back arrays into front, and a move-swap of the recording
// vector-of-vectors.
func (s *typeStorage[Sa, St]) moveToFront(fb FramebufferRef) {
	s.state.moveToFront(fb)
	s.latestTimestamp.moveToFront(fb)
	s.latestSample.moveToFront(fb)
	n := s.controlCount()
	s.allTimestamps.moveToFront(fb, n)
	s.allSamples.moveToFront(fb, n)
}

// Note: everFolded is back-buffer-only bookkeeping for foldFramebuffer
// and is never read through the front buffer, so it is deliberately not
// part of moveToFront.
