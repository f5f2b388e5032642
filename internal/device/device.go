// Package device is the collaborator boundary the core enumeration engine
// consumes: discovery of compute devices and dispatch of the two kernels
// (score_hands, compare_cards) is intentionally kept outside the hard
// 7-card evaluator and board-enumeration logic, behind this interface, so a
// real GPU backend could be dropped in without touching internal/matchup or
// internal/driver.
package device

import (
	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/combin"
	"github.com/lox/exactodds/internal/eval"
)

// Kind identifies the class of compute device a Device wraps.
type Kind int

const (
	KindCPU Kind = iota
	KindGPU
)

// String names the kind the way the CLI's -g/-c/-a flags refer to it.
func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindGPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// DefaultBlockSize is the number of five-subsets each compare_cards block
// covers when no tuning file overrides it. Chosen so
// NUM_FIVE_SUBSETS/DefaultBlockSize is a convenient worker fan-out size; any
// five-subsets beyond the last full block form a shorter final block.
const DefaultBlockSize = 4096

// Device is the capability contract the matchup memoiser and board
// enumeration kernel require from a compute backend: upload a read-only
// buffer, launch one of the two named kernels over an integer range, and
// read back the results. A real implementation would upload to device
// memory and launch an actual kernel; CPUDevice below launches Go
// goroutines instead.
type Device interface {
	Name() string
	Kind() Kind

	// ScoreHands scores every 7-card mask in cards, writing one Score per
	// entry into the returned slice (same order as cards).
	ScoreHands(cards []card.Cards) []eval.Score

	// CompareBlocks evaluates every five-subset of subsets against the fixed
	// (alice, bob) hole cards and free-card table, returning one packed
	// (aliceWins<<32 | bobWins) word per block of subsets, block size chosen
	// by the device. Every subset is covered, a tail shorter than a full
	// block included; the caller sums the returned words.
	CompareBlocks(alice, bob card.Cards, free [combin.Universe]card.Cards, subsets []combin.FiveSubset) []uint64
}

// Discover returns one Device per requested Kind, each chunking its
// compare_cards work into blockSize-sized spans. Real GPU discovery is out
// of scope for this core (spec treats device discovery as an external
// collaborator); KindGPU is accepted but currently never yields a device, so
// a GPU-only request with no GPU present falls through to the caller's
// "no devices" error path exactly like a real backend with no GPU installed.
func Discover(kinds []Kind, cpuWorkers int, blockSize int) []Device {
	var out []Device
	for _, k := range kinds {
		switch k {
		case KindCPU:
			for i := 0; i < cpuWorkers; i++ {
				out = append(out, NewCPUDevice(i, blockSize))
			}
		case KindGPU:
			// No in-process GPU backend; see package doc.
		}
	}
	return out
}
