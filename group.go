package graveyard

import "math/bits"

// BitMask is a 16-lane match result over one bin's control bytes, split into
// two 8-lane SWAR words (lanes 0-7 in lo, 8-15 in hi) the way
// github.com/cockroachdb/swiss represents an 8-lane bitset, doubled to cover
// a 16-byte control region. Each matching lane occupies the high bit of its
// byte position, i.e. bit (lane*8+7).
type BitMask struct {
	lo, hi uint64
}

// IsEmpty reports whether no lane matched.
func (m BitMask) IsEmpty() bool {
	return m.lo == 0 && m.hi == 0
}

// Next returns the lowest-indexed matching lane. The caller must check
// IsEmpty first.
func (m BitMask) Next() int {
	if m.lo != 0 {
		return bits.TrailingZeros64(m.lo) >> 3
	}
	return 8 + bits.TrailingZeros64(m.hi)>>3
}

// Clear returns a copy of m with lane removed.
func (m BitMask) Clear(lane int) BitMask {
	if lane < 8 {
		m.lo &^= uint64(0x80) << uint(lane*8)
	} else {
		m.hi &^= uint64(0x80) << uint((lane-8)*8)
	}
	return m
}

// Last returns the highest-indexed matching lane, or -1 if m is empty. It is
// used by the backwards-insertion-fuzz debug feature (spec-design ProbeEngine
// §4.4) which deliberately picks the last rather than first empty lane.
func (m BitMask) Last() int {
	if m.hi != 0 {
		return 8 + (63-bits.LeadingZeros64(m.hi))>>3
	}
	if m.lo != 0 {
		return (63 - bits.LeadingZeros64(m.lo)) >> 3
	}
	return -1
}

// Count returns the number of matching lanes. Each match sets exactly one
// bit (the lane's MSB), so the popcount of the two words is the count
// directly -- no shift needed.
func (m BitMask) Count() int {
	return bits.OnesCount64(m.lo) + bits.OnesCount64(m.hi)
}

const (
	swarLSB = 0x0101010101010101
	swarMSB = 0x8080808080808080
)

// loadWord reads 8 consecutive control bytes into a little-endian-ordered
// 64-bit word, the portable 64-bit SWAR ("hasvalue" bit-twiddling idiom)
// fallback described for Group: the same technique
// github.com/rip-create-your-account/finnishtable's bitman_swar.go and
// github.com/cockroachdb/swiss's ctrl.matchH2 use, just expressed without an
// unsafe pointer cast so it needs no little-endian assumption.
func loadWord(c []ctrl) uint64 {
	return uint64(c[0]) | uint64(c[1])<<8 | uint64(c[2])<<16 | uint64(c[3])<<24 |
		uint64(c[4])<<32 | uint64(c[5])<<40 | uint64(c[6])<<48 | uint64(c[7])<<56
}

func storeWord(c []ctrl, word uint64) {
	for i := 0; i < 8; i++ {
		c[i] = ctrl(byte(word >> uint(8*i)))
	}
}

// swarFindByte returns a mask with 0x80 set in every byte lane of word that
// exactly equals target. It uses the carry-free zero-byte test rather than
// the shorter msbs & (x-lsbs) & ~x form, whose borrow can also flag a lane
// holding target^1 directly above a true match (which would let matchEmpty
// report a live slot as empty).
func swarFindByte(word uint64, target uint8) uint64 {
	v := word ^ (swarLSB * uint64(target))
	return ^(((v &^ swarMSB) + (swarMSB - swarLSB)) | v) & swarMSB
}

func swarFindEmpty(word uint64) uint64 {
	return swarFindByte(word, ctrlEmptyValue)
}

func swarFindFull(word uint64) uint64 {
	return swarMSB ^ swarFindEmpty(word)
}

// matchH2 returns the lanes of a bin's 16 control bytes whose value equals
// full control with the given H2 (the disordered bit is not part of the
// comparison, so it matches both ordered and disordered full slots).
func matchH2(c []ctrl, h2 uint8) BitMask {
	lo := swarFindByte(loHalf(c), h2) | swarFindByte(loHalf(c), h2|ctrlDisorderedBit)
	hi := swarFindByte(hiHalf(c), h2) | swarFindByte(hiHalf(c), h2|ctrlDisorderedBit)
	return BitMask{lo: lo, hi: hi}
}

// matchEmpty returns the lanes marked empty.
func matchEmpty(c []ctrl) BitMask {
	return BitMask{lo: swarFindEmpty(loHalf(c)), hi: swarFindEmpty(hiHalf(c))}
}

// matchFull returns the lanes marked full (ordered or disordered).
func matchFull(c []ctrl) BitMask {
	return BitMask{lo: swarFindFull(loHalf(c)), hi: swarFindFull(hiHalf(c))}
}

// countLeadingEmpty returns the number of contiguous empty lanes starting at
// lane 0. Iterator.Next does not call it: skipToLive walks the matchFull
// mask directly.
func countLeadingEmpty(c []ctrl) int {
	full := matchFull(c)
	if full.IsEmpty() {
		return groupWidth
	}
	return full.Next()
}

func loHalf(c []ctrl) uint64 { return loadWord(c[0:8]) }
func hiHalf(c []ctrl) uint64 { return loadWord(c[8:16]) }

// maskToBinSize clears any lanes at or beyond binSize. A bin's control
// region is always groupWidth bytes even when slotsPerBin < groupWidth, so
// the trailing lanes are permanently empty padding that must never be
// treated as a usable slot (matchEmpty would otherwise report them once
// every real lane in the bin fills up, and placing an element there would
// collide with the next bin's slot 0).
func maskToBinSize(m BitMask, binSize int) BitMask {
	if binSize >= groupWidth {
		return m
	}
	if binSize <= 0 {
		return BitMask{}
	}
	if binSize <= 8 {
		var loKeep uint64
		if binSize == 64/8 {
			loKeep = ^uint64(0)
		} else {
			loKeep = (uint64(1) << uint(binSize*8)) - 1
		}
		return BitMask{lo: m.lo & loKeep}
	}
	hiBits := binSize - 8
	hiKeep := (uint64(1) << uint(hiBits*8)) - 1
	return BitMask{lo: m.lo, hi: m.hi & hiKeep}
}
