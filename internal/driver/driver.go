// Package driver drives a set of matchups across a worker pool, one
// goroutine per available device, and streams results back to the caller
// in the same order the matchups were submitted regardless of which worker
// finished which job first.
package driver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/combin"
	"github.com/lox/exactodds/internal/device"
	"github.com/lox/exactodds/internal/matchup"
	"github.com/lox/exactodds/internal/mixer"
)

// Job is one matchup to evaluate.
type Job struct {
	Index int
	Alice card.Hand
	Bob   card.Hand
}

// Result is the outcome of one Job, or the error that prevented computing
// it.
type Result struct {
	Job      Job
	Outcomes matchup.Outcomes
	Err      error
}

// AllMatchups returns every unordered pair of canonical hands, including
// self-matches: 169·170/2 = 14,365 matchups. A matchup's mirror (Bob vs
// Alice) is not included separately, since it shares the same outcome up
// to swapping Alice and Bob.
func AllMatchups() []Job {
	hands := card.AllHands()
	jobs := make([]Job, 0, len(hands)*(len(hands)+1)/2)
	for i := 0; i < len(hands); i++ {
		for j := i; j < len(hands); j++ {
			jobs = append(jobs, Job{Index: len(jobs), Alice: hands[i], Bob: hands[j]})
		}
	}
	return jobs
}

// SomeMatchups deterministically selects n matchups from AllMatchups using
// the hash mixer, so "some 20" always names the same 20 matchups for a
// given n without needing to store any state between runs.
func SomeMatchups(n int) []Job {
	all := AllMatchups()
	if n > len(all) || n < 0 {
		n = len(all)
	}
	out := make([]Job, n)
	for i := 0; i < n; i++ {
		idx := int(mixer.Hash(uint64(i)) % uint64(len(all)))
		out[i] = Job{Index: i, Alice: all[idx].Alice, Bob: all[idx].Bob}
	}
	return out
}

// Run distributes jobs across devices and invokes emit once per job, in job
// order, as soon as that job's result (and every job before it) is ready.
// emit calls are serialized under one mutex and never overlap, so it needs
// no locking of its own. Run returns the first error encountered, but lets all in-flight
// work finish before returning it so result ordering is never corrupted by
// a short-circuited goroutine.
func Run(ctx context.Context, devices []device.Device, subsets []combin.FiveSubset, jobs []Job, emit func(Result)) error {
	if len(devices) == 0 {
		return fmt.Errorf("driver: no devices available")
	}

	results := make([]*Result, len(jobs))
	var mu sync.Mutex
	cursor := 0

	publish := func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		results[r.Job.Index] = &r
		for cursor < len(results) && results[cursor] != nil {
			emit(*results[cursor])
			cursor++
		}
	}

	var next int64 = -1
	g, ctx := errgroup.WithContext(ctx)
	for _, dev := range devices {
		dev := dev
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				i := atomic.AddInt64(&next, 1)
				if int(i) >= len(jobs) {
					return nil
				}
				job := jobs[i]
				outcomes, err := matchup.CompareHands(dev, job.Alice, job.Bob, subsets)
				publish(Result{Job: job, Outcomes: outcomes, Err: err})
				if err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}
