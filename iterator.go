package graveyard

// Iterator walks the live elements of a table in bin/lane order, per spec
// §4.7. Obtain one from Map.Iterator/Set.Iterator; a directly-constructed
// Iterator{} is not a valid sentinel (use Valid() on one returned by the
// table, not a zero value built by hand).
const sentinelLane = -1

type Iterator[K comparable, V any] struct {
	t    *table[K, V]
	bin  binPointer[K, V]
	lane int

	// gen is the table generation snapshotted at construction; checked
	// against the live value on every deref when debugGenerations is on.
	gen uint64
}

// iteratorInvalidatedMsg is the diagnostic spec §8 test 6 requires: a
// generation-mismatch panic naming what happened.
const iteratorInvalidatedMsg = "graveyard: iterator used after the table was rehashed since this iterator was initialized"

func (t *table[K, V]) beginIterator() Iterator[K, V] {
	it := Iterator[K, V]{t: t, bin: t.binAt(0), lane: 0, gen: t.generation}
	if t.physicalBinCount == 0 {
		it.lane = sentinelLane
		return it
	}
	it.skipToLive()
	return it
}

func (t *table[K, V]) endIterator() Iterator[K, V] {
	return Iterator[K, V]{t: t, lane: sentinelLane, gen: t.generation}
}

// Valid reports whether the iterator refers to a live element.
func (it Iterator[K, V]) Valid() bool {
	return it.lane != sentinelLane
}

// sameIteratorPosition reports whether a and b refer to the same (bin,
// lane), ignoring their generation snapshots -- used by EraseRange's
// internal walk, which deliberately resyncs gen as it goes.
func sameIteratorPosition[K comparable, V any](a, b Iterator[K, V]) bool {
	return a.bin.idx == b.bin.idx && a.lane == b.lane
}

func (it Iterator[K, V]) checkGeneration() {
	if it.t != nil && it.t.debugGenerations && it.gen != it.t.generation {
		panic(iteratorInvalidatedMsg)
	}
}

// Key returns the current element's key. Panics (in debug-generations mode)
// if the table was mutated (insert, erase, clear or rehash) since this
// iterator was created.
func (it Iterator[K, V]) Key() K {
	it.checkGeneration()
	return it.bin.slot(it.lane).key
}

// Value returns the current element's value.
func (it Iterator[K, V]) Value() V {
	it.checkGeneration()
	return it.bin.slot(it.lane).value
}

// Next advances the iterator to the next live element, or to the end
// sentinel if none remain.
func (it *Iterator[K, V]) Next() {
	it.checkGeneration()
	if !it.Valid() {
		return
	}
	it.lane++
	it.skipToLive()
}

// skipToLive advances (bin, lane) forward, using the Group-accelerated full
// mask to jump straight to the next live lane (or past the bin's trailing
// permanently-empty lanes when binSize < groupWidth), until a full lane is
// found or the last bin is exhausted.
func (it *Iterator[K, V]) skipToLive() {
	for {
		if it.lane < it.t.binSize {
			full := matchFull(it.bin.control())
			for !full.IsEmpty() {
				lane := full.Next()
				if lane >= it.lane {
					if lane < it.t.binSize {
						it.lane = lane
						return
					}
					break
				}
				full = full.Clear(lane)
			}
		}
		if it.bin.isLast() {
			it.lane = sentinelLane
			return
		}
		it.bin = it.bin.advance()
		it.lane = 0
	}
}
