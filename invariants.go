package graveyard

// invariants gates the expensive consistency checks in checkInvariants,
// mirroring github.com/cockroachdb/swiss's own invariants const. It is a
// plain constant, false in every build (no build tag or test switches it
// on), so checkInvariants returns at once unless this line is changed; when
// on, it re-walks the whole table on every mutation.
const invariants = false

// checkInvariants re-validates the testable properties from spec §8 that
// can be checked in O(size): disordered ⇒ full, the post-rehash ordering
// invariant among ordered elements, and growth_left ≥ 0. It panics on the
// first violation found, naming it, the same role
// github.com/cockroachdb/swiss's bucket.checkInvariants plays for its own
// tombstone/capacity bookkeeping.
func (t *table[K, V]) checkInvariants() {
	if !invariants {
		return
	}
	if t.growthLeft < 0 {
		panic("graveyard: growth_left went negative")
	}
	lastOrderedH1 := -1
	for i := 0; i < t.physicalBinCount; i++ {
		p := t.binAt(i)
		ctrls := p.control()
		for lane := 0; lane < t.binSize; lane++ {
			c := ctrls[lane]
			if c.isDisordered() && c.isEmpty() {
				panic("graveyard: disordered bit set on an empty control byte")
			}
			if !c.isFull() {
				continue
			}
			s := p.slot(lane)
			h := t.hash(s.key)
			h1, h2 := splitHash(h, t.logicalBinCount)
			if c.h2() != h2 {
				panic("graveyard: stored H2 does not match recomputed hash")
			}
			if !c.isDisordered() {
				if h1 < lastOrderedH1 {
					panic("graveyard: post-rehash ordering invariant violated")
				}
				lastOrderedH1 = h1
			}
		}
	}
}
