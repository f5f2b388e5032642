package device

import (
	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/combin"
	"github.com/lox/exactodds/internal/eval"
)

// NopDevice stands in for a real device when the CLI's -n/--nop flag is set:
// both kernels are replaced by a constant result, so a driver run measures
// pure dispatch and bookkeeping overhead with the scoring math compiled out.
// It never appears in Discover's output; callers that want it construct it
// explicitly in place of a Discover selection.
type NopDevice struct {
	index int
}

// NewNopDevice builds a nop device identified by index for display purposes.
func NewNopDevice(index int) *NopDevice {
	return &NopDevice{index: index}
}

func (d *NopDevice) Name() string { return "nop" }

func (d *NopDevice) Kind() Kind { return KindCPU }

// ScoreHands returns the same constant Score for every input.
func (d *NopDevice) ScoreHands(cards []card.Cards) []eval.Score {
	out := make([]eval.Score, len(cards))
	for i := range out {
		out[i] = eval.Score(0)
	}
	return out
}

// CompareBlocks reports a single tie for every five-subset in every block,
// matching exact.cpp's do_nothing kernel which skips scoring entirely.
func (d *NopDevice) CompareBlocks(alice, bob card.Cards, free [combin.Universe]card.Cards, subsets []combin.FiveSubset) []uint64 {
	numBlocks := (len(subsets) + DefaultBlockSize - 1) / DefaultBlockSize
	out := make([]uint64, numBlocks)
	return out
}
