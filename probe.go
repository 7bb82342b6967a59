package graveyard

// probeFind implements spec §4.4 find(key, hash): read search_distance(h1)
// once, scan exactly that many bins (no early exit on an empty lane, since
// graveyard hashing's gaps are not probe terminators the way a classic
// linear-probe table's are), and test every H2-matching lane for key
// equality.
func (t *table[K, V]) probeFind(h uint64, key K) (binPointer[K, V], int, bool) {
	h1, h2 := splitHash(h, t.logicalBinCount)
	p := t.binAt(h1)
	distance := p.header().distance()
	if t.smallMode() {
		distance = 1
	}
	if distance < 1 {
		distance = 1
	}
	tracef("find: h1=%d h2=%02x distance=%d\n", h1, h2, distance)
	for i := 0; i < distance; i++ {
		m := matchH2(p.control(), h2)
		for !m.IsEmpty() {
			lane := m.Next()
			if t.eq(p.slot(lane).key, key) {
				return p, lane, true
			}
			m = m.Clear(lane)
		}
		p = p.advance()
	}
	return binPointer[K, V]{}, 0, false
}

// probeFindFirstEmpty implements spec §4.4 find_first_empty(hash): scan
// bins unboundedly from h1 until an empty lane turns up. distanceWalked is
// the number of bins strictly after h1 that were visited before the hit,
// matching the value prepareInsert widens search_distance with (distance+1
// covers the origin bin itself).
func (t *table[K, V]) probeFindFirstEmpty(h uint64) (p binPointer[K, V], lane int, distanceWalked int) {
	h1, _ := splitHash(h, t.logicalBinCount)
	p = t.binAt(h1)
	for distanceWalked = 0; ; distanceWalked++ {
		m := maskToBinSize(matchEmpty(p.control()), t.binSize)
		if !m.IsEmpty() {
			lane = m.Next()
			if t.backwardsInsertFuzz && !t.smallMode() {
				t.fuzzCounter++
				if t.fuzzCounter%7 == 0 {
					lane = m.Last()
				}
			}
			return p, lane, distanceWalked
		}
		p = p.advance()
	}
}
