package device

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/combin"
	"github.com/lox/exactodds/internal/eval"
)

// CPUDevice is the in-process fallback Device: it runs both kernels as
// goroutines over GOMAXPROCS workers instead of dispatching to accelerator
// hardware. It is always available and is what Discover returns for
// KindCPU.
type CPUDevice struct {
	index     int
	workers   int
	blockSize int
}

// NewCPUDevice builds a CPU device identified by index (used only for
// display/logging; all CPU devices are functionally identical) and chunking
// CompareBlocks work into blockSize-sized spans.
func NewCPUDevice(index int, blockSize int) *CPUDevice {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if blockSize < 1 {
		blockSize = DefaultBlockSize
	}
	return &CPUDevice{index: index, workers: workers, blockSize: blockSize}
}

func (d *CPUDevice) Name() string {
	return fmt.Sprintf("cpu:%d", d.index)
}

func (d *CPUDevice) Kind() Kind { return KindCPU }

// ScoreHands fans cards out across d.workers goroutines; each index is
// independent so no synchronization beyond the final join is needed.
func (d *CPUDevice) ScoreHands(cards []card.Cards) []eval.Score {
	out := make([]eval.Score, len(cards))
	d.parallelRange(len(cards), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = eval.Eval7(cards[i])
		}
	})
	return out
}

// CompareBlocks evaluates every five-subset in subsets against the fixed
// alice/bob hole cards, summing wins into one packed word per
// d.blockSize-sized span of subsets (a short final span still gets its own,
// smaller, word).
func (d *CPUDevice) CompareBlocks(alice, bob card.Cards, free [combin.Universe]card.Cards, subsets []combin.FiveSubset) []uint64 {
	numBlocks := (len(subsets) + d.blockSize - 1) / d.blockSize
	out := make([]uint64, numBlocks)

	d.parallelRange(numBlocks, func(lo, hi int) {
		for block := lo; block < hi; block++ {
			start := block * d.blockSize
			end := start + d.blockSize
			if end > len(subsets) {
				end = len(subsets)
			}
			var aliceWins, bobWins uint32
			for _, subset := range subsets[start:end] {
				i0, i1, i2, i3, i4 := subset.Indices()
				board := free[i0] | free[i1] | free[i2] | free[i3] | free[i4]
				aliceScore := eval.Eval7(alice | board)
				bobScore := eval.Eval7(bob | board)
				switch {
				case aliceScore > bobScore:
					aliceWins++
				case bobScore > aliceScore:
					bobWins++
				}
			}
			out[block] = uint64(aliceWins)<<32 | uint64(bobWins)
		}
	})
	return out
}

// parallelRange splits [0,n) into d.workers contiguous spans and runs fn on
// each concurrently, blocking until every span completes.
func (d *CPUDevice) parallelRange(n int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	workers := d.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
