package graveyard

import "math/bits"

// groupWidth is the physical number of control-byte lanes per bin. It is
// fixed at 16 (matching a 16-byte SSE/NEON lane) regardless of slotsPerBin;
// when slotsPerBin < groupWidth the trailing lanes are permanently empty and
// never addressed by a slot.
const groupWidth = 16

// defaultSlotsPerBin is the number of live slots in a bin absent a
// WithSlotsPerBin option, matching the Abseil graveyard default.
const defaultSlotsPerBin = 14

// ctrl is a single control byte. Bit 7 marks a full slot as disordered
// (inserted since the last rehash, not guaranteed to respect the hash-order
// invariant). Bits 0-6 hold either a slot's H2 value in [0,126], or the
// value 127 (ctrlEmptyValue) meaning the slot is empty. A disordered bit can
// only be set alongside a non-empty low 7 bits: disordered implies full.
type ctrl uint8

const (
	ctrlEmptyValue     uint8 = 0x7f
	ctrlDisorderedBit  uint8 = 0x80
	ctrlLowMask        uint8 = 0x7f
)

func emptyCtrl() ctrl {
	return ctrl(ctrlEmptyValue)
}

func fullCtrl(h2 uint8, disordered bool) ctrl {
	c := ctrl(h2 & ctrlLowMask)
	if disordered {
		c |= ctrl(ctrlDisorderedBit)
	}
	return c
}

func (c ctrl) isEmpty() bool {
	return uint8(c) == ctrlEmptyValue
}

func (c ctrl) isFull() bool {
	return !c.isEmpty()
}

func (c ctrl) isDisordered() bool {
	return uint8(c)&ctrlDisorderedBit != 0
}

func (c ctrl) h2() uint8 {
	return uint8(c) & ctrlLowMask
}

func (c ctrl) orderedCopy() ctrl {
	return ctrl(uint8(c) &^ ctrlDisorderedBit)
}

// searchDistanceHeader is the 16-bit per-bin header: 1 bit marking the last
// physical bin (so iteration knows where to stop) and a 15-bit bound on how
// many bins, starting at this one, must be scanned to find every key that
// prefers it.
type searchDistanceHeader struct {
	v uint16
}

const searchDistanceMask = uint16(1<<15) - 1

func (h *searchDistanceHeader) isLastBin() bool {
	return h.v&^searchDistanceMask != 0
}

func (h *searchDistanceHeader) setLastBin(last bool) {
	if last {
		h.v |= ^searchDistanceMask
	} else {
		h.v &= searchDistanceMask
	}
}

func (h *searchDistanceHeader) distance() int {
	return int(h.v & searchDistanceMask)
}

func (h *searchDistanceHeader) setDistance(d int) {
	if d < 0 {
		d = 0
	}
	if d > int(searchDistanceMask) {
		d = int(searchDistanceMask)
	}
	last := h.v&^searchDistanceMask != 0
	h.v = uint16(d)
	if last {
		h.v |= ^searchDistanceMask
	}
}

// splitHash derives the H1 (preferred bin index) and H2 (7-bit control
// filter) parts of a 64-bit hash. H1 uses Lemire's wide-multiply reduction
// into [0,logicalBinCount) so that it consumes the high-entropy bits of h;
// H2 takes the low bits modulo 127, the number of representable non-empty
// control values.
func splitHash(h uint64, logicalBinCount int) (h1 int, h2 uint8) {
	hi, _ := bits.Mul64(h, uint64(logicalBinCount))
	return int(hi), uint8(h % 127)
}
