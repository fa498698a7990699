package hashlife

import "math/bits"

// RuleSet holds the two 9-bit outer-totalistic rule masks. Bit n of Survive
// set means a live cell with n live neighbors survives; bit n of Birth set
// means a dead cell with n live neighbors becomes live.
type RuleSet struct {
	Survive uint16
	Birth   uint16
}

// ConwayRules is the default rule (standard Conway's Game of Life):
// survive on 2 or 3 neighbors, birth on exactly 3.
var ConwayRules = RuleSet{
	Survive: 1<<2 | 1<<3,
	Birth:   1 << 3,
}

// neighborMask selects the eight neighbor bits out of a 4x4 bitmask whose
// bit 5 is the cell under evaluation (see the level-2 bit order on
// level2Next).
const neighborMask = 0x757

// eval computes the next-generation state of the cell at bit 5 of a 4x4
// neighborhood bitmask already shifted into place. It counts the live
// neighbor bits, picks Survive or Birth depending on whether the cell
// itself (bit 5) is currently alive, and returns 0 or 1.
func (r RuleSet) eval(mask uint16) uint16 {
	rule := r.Birth
	if mask&(1<<5) != 0 {
		rule = r.Survive
	}
	neighbors := bits.OnesCount16(mask & neighborMask)
	return (rule >> neighbors) & 1
}

// ParseNeighborList turns a list of neighbor counts (e.g. []int{2, 3}) into
// the corresponding 9-bit mask, as used by pkg/config when decoding rule
// strings. Counts outside 0..8 are skipped.
func ParseNeighborList(counts []int) uint16 {
	var mask uint16
	for _, c := range counts {
		if c < 0 || c > 8 {
			continue
		}
		mask |= 1 << uint(c)
	}
	return mask
}
