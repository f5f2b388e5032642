// Command exactodds computes exact heads-up preflop equities for every
// canonical Texas Hold'em starting hand by enumerating every possible
// five-card board rather than sampling them.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/lox/exactodds/internal/appcontext"
	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/display"
	"github.com/lox/exactodds/internal/driver"
	"github.com/lox/exactodds/internal/eval"
	"github.com/lox/exactodds/internal/mixer"
	"github.com/lox/exactodds/internal/testdata"
)

type globals struct {
	CPU     bool   `short:"c" help:"Use CPU devices only."`
	GPU     bool   `short:"g" help:"Use GPU devices only."`
	All     bool   `short:"a" help:"Use every available device (default)."`
	Nop     bool   `short:"n" help:"Replace kernels with a constant result; measures dispatch overhead only."`
	Config  string `help:"Path to an optional HCL tuning file." type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging to stderr."`
}

type cli struct {
	globals

	Hands handsCmd `cmd:"" help:"List the 169 canonical starting hands."`
	Test  testCmd  `cmd:"" help:"Run classifier, score-regression and matchup-regression tests."`
	Some  someCmd  `cmd:"" help:"Compute exact equity for a random sample of matchups."`
	All   allCmd   `cmd:"" help:"Compute exact equity for all 14,365 unordered matchups, including self-matches."`
}

func (g globals) context() (*appcontext.Context, error) {
	return appcontext.New(appcontext.Options{
		ConfigPath: g.Config,
		UseCPU:     g.CPU,
		UseGPU:     g.GPU,
		Nop:        g.Nop,
		Verbose:    g.Verbose,
	})
}

type handsCmd struct{}

func (c *handsCmd) Run(g *globals) error {
	display.Hands(os.Stdout, card.AllHands())
	return nil
}

type testCmd struct {
	N int `arg:"" default:"1" help:"Size knob for score and matchup regression."`
}

func (c *testCmd) Run(g *globals) error {
	ac, err := g.context()
	if err != nil {
		return err
	}

	stopClassifier := ac.Timer.Start("classifier")
	for _, tc := range testdata.Cases {
		alice := card.MustParse(tc.Alice) | card.MustParse(tc.Shared)
		bob := card.MustParse(tc.Bob) | card.MustParse(tc.Shared)
		aliceScore := eval.Eval7(alice)
		bobScore := eval.Eval7(bob)
		if aliceScore.Class() != tc.AliceClass || bobScore.Class() != tc.BobClass {
			stopClassifier()
			return fmt.Errorf("classifier test failed: %s vs %s on %s: got %s/%s, want %s/%s",
				tc.Alice, tc.Bob, tc.Shared, aliceScore.Class(), bobScore.Class(), tc.AliceClass, tc.BobClass)
		}
	}
	stopClassifier()
	fmt.Fprintf(os.Stdout, "classifier test passed! (%d cases)\n", len(testdata.Cases))

	stopScore := ac.Timer.Start("score-regression")
	scoreHash := scoreRegressionHash(c.N)
	stopScore()
	fmt.Fprintf(os.Stdout, "score regression hash (m=%d): %#016x\n", c.N, scoreHash)
	if want, ok := scoreRegressionAnchors[c.N]; ok {
		if scoreHash != want {
			return fmt.Errorf("score regression failed for m=%d: got %#016x, want %#016x", c.N, scoreHash, want)
		}
		fmt.Fprintln(os.Stdout, "score regression matched stored anchor")
	} else {
		fmt.Fprintf(os.Stdout, "score regression: no stored anchor for m=%d, observed hash only\n", c.N)
	}

	stopMatchup := ac.Timer.Start("matchup-regression")
	matchupHash, err := matchupRegressionHash(ac, c.N)
	stopMatchup()
	if err != nil {
		return fmt.Errorf("matchup regression failed: %w", err)
	}
	fmt.Fprintf(os.Stdout, "matchup regression hash (n=%d): %#016x\n", c.N, matchupHash)
	if want, ok := matchupRegressionAnchors[c.N]; ok {
		if matchupHash != want {
			return fmt.Errorf("matchup regression failed for n=%d: got %#016x, want %#016x", c.N, matchupHash, want)
		}
		fmt.Fprintln(os.Stdout, "matchup regression matched stored anchor")
	} else {
		fmt.Fprintf(os.Stdout, "matchup regression: no stored anchor for n=%d, observed hash only\n", c.N)
	}

	fmt.Fprintln(os.Stdout, "all tests passed!")
	reportTiming(ac)
	return nil
}

// scoreRegressionAnchors and matchupRegressionAnchors are refreshed
// expectations for this program's own siphash-based mixer (see
// internal/mixer and DESIGN.md): the original program's mixer lived in
// score.h, which original_source/ does not retain, so its literal hex
// constants cannot be reproduced. Per the rule that switching mixers
// requires refreshing the regression anchors rather than dropping them,
// these were computed once against this mixer for the sizes the test
// command defaults to exercising (m,n = 1, 2, 10) and are now asserted
// against on every run at those sizes. Sizes outside this table have no
// stored expectation and only print the observed hash.
var scoreRegressionAnchors = map[int]uint64{
	1:  0xb2bfec86f762efd9,
	2:  0x4acd01d568e0b334,
	10: 0xc11070e0ac86862f,
}

var matchupRegressionAnchors = map[int]uint64{
	1:  0x90d311a949d13542,
	2:  0x9a7b81996d954264,
	10: 0x5ed1b7b70a8a7a78,
}

// scoreRegressionHash scores m*2^17 deterministic pseudo-random 7-card
// hands and folds their scores together into a single hash.
func scoreRegressionHash(m int) uint64 {
	count := m * (1 << 17)
	var h uint64
	for i := 0; i < count; i++ {
		hand := mixer.MostlyRandomHand(mixer.Hash(uint64(i)))
		h = mixer.Hash2(h, uint64(eval.Eval7(hand)))
	}
	return h
}

// matchupRegressionHash samples n+1 (Alice,Bob) pairs from the 169-hand
// list, forcing the first to a self-match, and folds each resulting
// (alice,bob,tie) outcome triple into a single hash.
func matchupRegressionHash(ac *appcontext.Context, n int) (uint64, error) {
	hands := card.AllHands()
	var h uint64
	for i := 0; i <= n; i++ {
		var alice, bob card.Hand
		if i == 0 {
			alice = hands[mixer.Hash(0)%uint64(len(hands))]
			bob = alice
		} else {
			alice = hands[mixer.Hash2(uint64(i), 0)%uint64(len(hands))]
			bob = hands[mixer.Hash2(uint64(i), 1)%uint64(len(hands))]
		}

		var result driver.Result
		jobs := []driver.Job{{Index: 0, Alice: alice, Bob: bob}}
		if err := driver.Run(context.Background(), ac.Devices, ac.Subsets, jobs, func(r driver.Result) {
			result = r
		}); err != nil {
			return 0, err
		}
		o := result.Outcomes
		h = mixer.Hash3(h, uint64(o.Alice)<<32|uint64(o.Bob), uint64(o.Tie))
	}
	return h, nil
}

type someCmd struct {
	N int `arg:"" default:"10" help:"Number of matchups to sample."`
}

func (c *someCmd) Run(g *globals) error {
	ac, err := g.context()
	if err != nil {
		return err
	}
	jobs := driver.SomeMatchups(c.N)
	return runAndDisplay(ac, jobs, g.Verbose)
}

type allCmd struct{}

func (c *allCmd) Run(g *globals) error {
	ac, err := g.context()
	if err != nil {
		return err
	}
	jobs := driver.AllMatchups()
	return runAndDisplay(ac, jobs, g.Verbose)
}

func runAndDisplay(ac *appcontext.Context, jobs []driver.Job, verbose bool) error {
	start := time.Now()
	stop := ac.Timer.Start("compute")
	var results []driver.Result
	err := driver.Run(context.Background(), ac.Devices, ac.Subsets, jobs, func(r driver.Result) {
		results = append(results, r)
		display.Matchup(os.Stdout, r, verbose)
	})
	stop()
	if err != nil {
		return err
	}

	if verbose {
		var total uint64
		for _, r := range results {
			total += r.Outcomes.Total()
		}
		display.Table(os.Stdout, results)
		display.Summary(os.Stderr, total, time.Since(start))
	}
	reportTiming(ac)
	return nil
}

// reportTiming writes the hierarchical timing dump to stderr when the
// timer is enabled (verbose single-device runs only).
func reportTiming(ac *appcontext.Context) {
	if !ac.Timer.Enabled() {
		return
	}
	fmt.Fprint(os.Stderr, ac.Timer.Report())
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("exactodds"),
		kong.Description("Exact heads-up preflop equity calculator."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&c.globals)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		ctx.Exit(1)
	}
}
