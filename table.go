package graveyard

// slotT is the physical storage for one live (or formerly live) element: a
// key/value pair. Sets store V as struct{}, matching how
// github.com/cockroachdb/swiss's Map[K,V] degenerates into a set by using an
// empty struct value type.
type slotT[K comparable, V any] struct {
	key   K
	value V
}

// table is the runtime state described in spec §3's "Table (runtime)"
// record, generalized with the configuration captured by config[K,V] at
// construction time. It is embedded by both Set and Map.
type table[K comparable, V any] struct {
	hash func(K) uint64
	eq   func(K, K) bool

	allocator Allocator[K, V]
	telemetry Telemetry

	// binSize is B, the number of live slots per bin (spec calls this
	// slots_per_bin). Named binSize to match the field binPointer indexes
	// slots with.
	binSize int

	fullNumerator, fullDenominator         int
	rehashedNumerator, rehashedDenominator int

	propagateOnCopy, propagateOnMove, propagateOnSwap bool
	debugGenerations                                  bool
	backwardsInsertFuzz                               bool

	logicalBinCount  int
	physicalBinCount int

	ctrls   []ctrl
	headers []searchDistanceHeader
	slots   []slotT[K, V]

	size       int
	growthLeft int

	// generation increments on every mutation (each insert, erase, clear,
	// and rehash/resize) when debugGenerations is on.
	// Iterators snapshot it at construction per spec §4.7.
	generation uint64

	// fuzzCounter drives WithBackwardsInsertFuzz's "occasionally" clause: a
	// plain counter rather than a random source, so runs are reproducible.
	fuzzCounter uint32
}

func newTable[K comparable, V any](c config[K, V]) *table[K, V] {
	return &table[K, V]{
		hash:                c.hash,
		eq:                  c.eq,
		allocator:           c.allocator,
		telemetry:           c.telemetry,
		binSize:             c.slotsPerBin,
		fullNumerator:       c.fullNumerator,
		fullDenominator:     c.fullDenominator,
		rehashedNumerator:   c.rehashedNumerator,
		rehashedDenominator: c.rehashedDenominator,
		propagateOnCopy:     c.propagateOnCopy,
		propagateOnMove:     c.propagateOnMove,
		propagateOnSwap:     c.propagateOnSwap,
		debugGenerations:    c.debugGenerations,
		backwardsInsertFuzz: c.backwardsInsertFuzz,
	}
}

func (t *table[K, V]) smallMode() bool {
	return t.logicalBinCount <= 1
}

// capacity is the logical slot count, bucket_count() in spec §6.
func (t *table[K, V]) capacity() int {
	return t.logicalBinCount * t.binSize
}

func (t *table[K, V]) totalSlots() int {
	return t.physicalBinCount * t.binSize
}

// fullBudget is the maximum live-element count before an insert must force
// a rehash, per spec §4.5's full_numerator/full_denominator ratio, measured
// against the logical (not physical) capacity so tail bins never
// artificially relax the trigger.
func (t *table[K, V]) fullBudget() int {
	if t.logicalBinCount == 0 {
		return 0
	}
	if t.smallMode() {
		return t.capacity()
	}
	return t.capacity() * t.fullNumerator / t.fullDenominator
}

func (t *table[K, V]) loadFactor() float64 {
	if t.capacity() == 0 {
		return 0
	}
	return float64(t.size) / float64(t.capacity())
}

// tailBins computes the number of extra physical bins appended after
// logical, per spec §3: enough that a probe chain rooted near the end of
// the logical region can run off the end instead of wrapping (which would
// otherwise force it to be treated as having wrapped, inflating disorder).
// One eighth of the logical region, bounded to [1, 32] (and 0 for a
// single-bin table), tracks the search-distance growth the
// rehashed_numerator/denominator ratio is designed to keep small; this
// ratio is not specified numerically upstream.
func tailBins(logical int) int {
	if logical <= 1 {
		return 0
	}
	n := logical / 8
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	return n
}

// targetLogicalBinsForSize returns the smallest logical bin count whose
// total capacity, scaled by rehashed_numerator/rehashed_denominator, can
// hold n live elements, per spec §4.6 step 1.
func (t *table[K, V]) targetLogicalBinsForSize(n int) int {
	if n <= 0 {
		return 0
	}
	if n <= t.binSize {
		return 1
	}
	num, den := t.rehashedNumerator, t.rehashedDenominator
	if num <= 0 {
		num, den = 7, 16
	}
	// want: logical*binSize*num/den >= n  =>  logical >= n*den/(num*binSize)
	logical := (n*den + num*t.binSize - 1) / (num * t.binSize)
	if logical < 1 {
		logical = 1
	}
	return logical
}

func (t *table[K, V]) bumpGeneration() {
	if t.debugGenerations {
		t.generation++
	}
}

// find implements spec §4.5 find(key): hash once, delegate to the probe
// engine.
func (t *table[K, V]) find(key K) (binPointer[K, V], int, bool) {
	if t.logicalBinCount == 0 {
		return binPointer[K, V]{}, 0, false
	}
	h := t.hash(key)
	return t.probeFind(h, key)
}

// prepareInsert implements spec §4.5 prepare_insert(hash): force a rehash
// if the table has no growth budget left, find the first empty lane,
// install a disordered control byte, and account for the new element.
func (t *table[K, V]) prepareInsert(h uint64) (binPointer[K, V], int) {
	if t.growthLeft == 0 {
		t.rehashToSize(t.size + 1)
	}
	p, lane, distance := t.probeFindFirstEmpty(h)
	h1, h2 := splitHash(h, t.logicalBinCount)
	wasEmpty := p.control()[lane].isEmpty()
	p.control()[lane] = fullCtrl(h2, true)
	t.size++
	if wasEmpty {
		t.growthLeft--
	}
	hdr := t.binAt(h1).header()
	if distance+1 > hdr.distance() {
		hdr.setDistance(distance + 1)
	}
	t.bumpGeneration()
	t.checkInvariants()
	return p, lane
}

// eraseMetaOnly clears a slot's control byte without touching
// search_distance or growth_left, per spec §4.5 erase(iter). The caller is
// responsible for destroying the slot's contents (zeroing key/value so they
// don't keep referents alive).
func (t *table[K, V]) eraseMetaOnly(p binPointer[K, V], lane int) {
	p.control()[lane] = emptyCtrl()
	var zero slotT[K, V]
	*p.slot(lane) = zero
	t.size--
	t.bumpGeneration()
	t.checkInvariants()
}

// reserve implements spec §4.5 reserve(n): resize only if the requested
// size exceeds what current size plus growth budget can hold.
func (t *table[K, V]) reserve(n int) {
	if n > t.size+t.growthLeft {
		t.rehashToSize(n)
	}
}

// rehashTo implements spec §4.5 rehash(n): unconditional resize at n == 0,
// else only if n exceeds current capacity.
func (t *table[K, V]) rehashTo(n int) {
	if n == 0 {
		t.rehashToSize(t.size)
		return
	}
	if n > t.capacity() {
		t.rehashToSize(n)
	}
}

// clearSmallThreshold is the capacity under which clear() keeps the backing
// allocation instead of releasing it, per spec §4.5 clear().
const clearSmallThreshold = 128

func (t *table[K, V]) clear() {
	if t.capacity() >= clearSmallThreshold {
		t.deallocate()
		t.logicalBinCount = 0
		t.physicalBinCount = 0
		t.growthLeft = 0
		t.size = 0
		t.bumpGeneration()
		return
	}
	for i := range t.ctrls {
		t.ctrls[i] = emptyCtrl()
	}
	for i := range t.headers {
		t.headers[i] = searchDistanceHeader{}
		if i == len(t.headers)-1 {
			t.headers[i].setLastBin(true)
		}
	}
	var zero slotT[K, V]
	for i := range t.slots {
		t.slots[i] = zero
	}
	t.size = 0
	t.growthLeft = t.fullBudget()
	t.bumpGeneration()
}

func (t *table[K, V]) deallocate() {
	if t.slots != nil {
		t.allocator.FreeSlots(t.slots)
	}
	if t.ctrls != nil {
		t.allocator.FreeControls(t.ctrls)
	}
	t.slots = nil
	t.ctrls = nil
	t.headers = nil
}
