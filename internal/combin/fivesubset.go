// Package combin precomputes the C(48,5) five-card subsets of a 48-element
// universe, used by the board-enumeration kernel to walk every possible
// shared board without redundant work.
package combin

// FiveSubset packs five strictly-decreasing 6-bit indices (i0>i1>i2>i3>i4,
// each in 0..47) into a 30-bit word: 6 bits per index, i0 in the lowest
// group.
type FiveSubset uint32

// NumFiveSubsets is C(48,5) = 1,712,304.
const NumFiveSubsets = 1712304

// Universe is the size of the free-card universe five-subsets are drawn from.
const Universe = 48

func pack(i0, i1, i2, i3, i4 int) FiveSubset {
	return FiveSubset(i0 | i1<<6 | i2<<12 | i3<<18 | i4<<24)
}

// Indices unpacks s back into its five strictly-decreasing indices.
func (s FiveSubset) Indices() (i0, i1, i2, i3, i4 int) {
	const mask = 0x3f
	return int(s) & mask, int(s>>6) & mask, int(s>>12) & mask, int(s>>18) & mask, int(s>>24) & mask
}

// BuildFiveSubsets emits every (i0,i1,i2,i3,i4) with 47>=i0>i1>i2>i3>i4>=0,
// in lexicographic order on (i0,i1,i2,i3,i4). The exact order is irrelevant
// to results but must stay consistent between any compute backend and the
// CPU tail that completes a block-sized sweep.
func BuildFiveSubsets() []FiveSubset {
	out := make([]FiveSubset, 0, NumFiveSubsets)
	for i0 := 0; i0 < Universe; i0++ {
		for i1 := 0; i1 < i0; i1++ {
			for i2 := 0; i2 < i1; i2++ {
				for i3 := 0; i3 < i2; i3++ {
					for i4 := 0; i4 < i3; i4++ {
						out = append(out, pack(i0, i1, i2, i3, i4))
					}
				}
			}
		}
	}
	if len(out) != NumFiveSubsets {
		panic("combin: five-subset table built with unexpected length")
	}
	return out
}
