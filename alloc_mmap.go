package graveyard

import (
	"github.com/philpearl/mmap"
)

// MmapAllocator backs a table's control-byte and slot arrays with anonymous
// mmap'd pages instead of the GC heap, for tables large enough that keeping
// them off-heap matters (very large caches, tables rebuilt wholesale from a
// snapshot). It is the target the rehash page-release step (spec §4.6 item
// 6) calls into through the optional PageReleaser extension.
//
// Grounded on github.com/philpearl/gcswiss's go.mod dependency on
// github.com/philpearl/mmap. The typed slices come straight from mmap's
// generic Alloc and are released with its Free; no unsafe slice
// construction is done here.
type MmapAllocator[K comparable, V any] struct {
	pagesReleased int
}

func (a *MmapAllocator[K, V]) AllocSlots(n int) []slotT[K, V] {
	if n == 0 {
		return nil
	}
	buf, err := mmap.Alloc[slotT[K, V]](n)
	if err != nil {
		panic(&Error{Kind: AllocFailure, Msg: err.Error()})
	}
	return buf
}

func (a *MmapAllocator[K, V]) AllocControls(n int) []ctrl {
	if n == 0 {
		return nil
	}
	buf, err := mmap.Alloc[ctrl](n)
	if err != nil {
		panic(&Error{Kind: AllocFailure, Msg: err.Error()})
	}
	return buf
}

func (a *MmapAllocator[K, V]) FreeSlots(v []slotT[K, V]) {
	if len(v) == 0 {
		return
	}
	_ = mmap.Free(v)
}

func (a *MmapAllocator[K, V]) FreeControls(v []ctrl) {
	if len(v) == 0 {
		return
	}
	_ = mmap.Free(v)
}

// ReleasePages implements the optional PageReleaser extension: it is purely
// advisory bookkeeping here (the actual unmap happens in FreeSlots /
// FreeControls once the whole old array is retired), but a production
// allocator with finer-grained mappings could use slotsConsumed to munmap
// prefix pages of the old region as rehash walks forward past them.
func (a *MmapAllocator[K, V]) ReleasePages(slotsConsumed int) {
	a.pagesReleased += slotsConsumed
}
