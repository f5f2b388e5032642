// Package testdata holds the classifier regression table used to check the
// seven-card evaluator against known outcomes spanning every hand class and
// its tie-breaking edge cases.
package testdata

import "github.com/lox/exactodds/internal/eval"

// Winner names which side a ClassifierCase resolves to.
type Winner string

const (
	Alice Winner = "alice"
	Bob   Winner = "bob"
	Tie   Winner = "tie"
)

// ClassifierCase pits two hole-card hands against a shared five-card board
// and records the expected class of each resulting seven-card hand plus
// which side wins.
type ClassifierCase struct {
	Alice       string
	Bob         string
	Shared      string
	AliceClass  eval.Class
	BobClass    eval.Class
	Winner      Winner
	Description string
}

// Cases is the full classifier table, one case per hand-ranking rule and
// its boundary conditions.
var Cases = []ClassifierCase{
	{"As2d", "KsTc", "Qh3h7h9d4c", eval.HighCard, eval.HighCard, Alice, "high card wins"},
	{"Ks2d", "AsTc", "Qh3h7h9d4c", eval.HighCard, eval.HighCard, Bob, "high card wins"},
	{"4s2d", "5s3c", "QhAh7h9dTc", eval.HighCard, eval.HighCard, Tie, "only five cards matter"},
	{"4s3d", "5s3c", "QhAh7h9d2c", eval.HighCard, eval.HighCard, Bob, "the fifth card matters"},
	{"4s3d", "4d3c", "QhAh7h9d2c", eval.HighCard, eval.HighCard, Tie, "suits don't matter"},
	{"As2d", "KsTc", "Qh3h7h9d2c", eval.Pair, eval.HighCard, Alice, "pair beats high card"},
	{"Ks2d", "AsTc", "Qh3h7h9d2c", eval.Pair, eval.HighCard, Alice, "pair beats high card"},
	{"Ks2d", "AsTc", "KhAh7h9d3c", eval.Pair, eval.Pair, Bob, "higher pair wins"},
	{"Ks2d", "KdTc", "KhAh7h9d3c", eval.Pair, eval.Pair, Bob, "pair + higher kicker wins"},
	{"KsTd", "Kd2c", "KhAh7h9d3c", eval.Pair, eval.Pair, Alice, "pair + higher kicker wins"},
	{"Ks3d", "Kd2c", "KhAh7h9d6c", eval.Pair, eval.Pair, Tie, "given a pair, only three other cards matter"},
	{"7s6d", "5d4c", "KhKdJh9d8c", eval.Pair, eval.Pair, Tie, "given a pair, only three other cards matter"},
	{"7s6d", "5d4c", "7d5h4hAdKc", eval.Pair, eval.TwoPair, Bob, "two pair beats higher pair"},
	{"2s6d", "5d4c", "2d5h4hAdKc", eval.Pair, eval.TwoPair, Bob, "two pair beats lower pair"},
	{"7s2d", "5d4c", "2h5h4h7dKc", eval.TwoPair, eval.TwoPair, Alice, "the higher pair matters"},
	{"7s2d", "7d2c", "2h5h4h7hKc", eval.TwoPair, eval.TwoPair, Tie, "two pairs can tie"},
	{"7sAd", "7dQc", "Kh5h4h7hKc", eval.TwoPair, eval.TwoPair, Alice, "two pair + higher kicker wins"},
	{"KsAd", "QdAc", "JhJcThTc2c", eval.TwoPair, eval.TwoPair, Tie, "only one kicker matters with two pair"},
	{"JsAd", "QdAc", "AhJcKhKc2c", eval.TwoPair, eval.TwoPair, Bob, "three pair doesn't matter"},
	{"JsAd", "QdKc", "JhJcQhKs2c", eval.Trips, eval.TwoPair, Alice, "trips beat two pair"},
	{"JsAd", "QdKc", "ThTcTs3s2c", eval.Trips, eval.Trips, Alice, "trips + highest kicker wins"},
	{"9s8d", "7d6c", "ThTcTsAsKc", eval.Trips, eval.Trips, Tie, "only two kickers matter with trips"},
	{"Ts8d", "QdJc", "ThTc2sAsKc", eval.Trips, eval.Straight, Bob, "straight beats trips"},
	{"Ts8d", "QdJc", "2h3c4s5s6c", eval.Straight, eval.Straight, Tie, "kickers don't matter with straights"},
	{"Ah5c", "Tc2h", "6d7h8c9dAs", eval.Straight, eval.Straight, Bob, "highest straight wins"},
	{"AhJc", "5cKh", "2d3h4c5d5h", eval.Straight, eval.Trips, Alice, "aces can be low in straights"},
	{"AhJc", "6cKh", "2d3h4c5d5h", eval.Straight, eval.Straight, Bob, "the wheel is the lowest straight"},
	{"AhJc", "6c2d", "Th3h4h5d5h", eval.Flush, eval.Straight, Alice, "flush beats straight"},
	{"AhJc", "6h2d", "Th3h4h5d5h", eval.Flush, eval.Flush, Alice, "highest flush wins"},
	{"7h6c", "6h2d", "AhKhQh9h8h", eval.Flush, eval.Flush, Tie, "only five cards matter in a flush"},
	{"7h6h", "5h2h", "AhKhQh9h8h", eval.Flush, eval.Flush, Tie, "only five cards matter in a flush"},
	{"7d6d", "5h2h", "7h7c6hTh8h", eval.FullHouse, eval.Flush, Alice, "full house beats flush"},
	{"7d6d", "6c6s", "7h7c6h9h8h", eval.FullHouse, eval.FullHouse, Alice, "with two full houses, higher trips win"},
	{"7d7s", "6c6s", "7h2c6h9h9s", eval.FullHouse, eval.FullHouse, Alice, "with two full houses, higher trips win"},
	{"7d7s", "6c6s", "9c2c6h9h9s", eval.FullHouse, eval.FullHouse, Alice, "if the trips match, higher pairs win"},
	{"AdKd", "QcJs", "9c6c6h9h9s", eval.FullHouse, eval.FullHouse, Tie, "there are no kickers in full houses"},
	{"AdKd", "AcQs", "AsAhQhQdKs", eval.FullHouse, eval.FullHouse, Alice, "two trips don't matter"},
	{"2d2c", "AcQs", "AsAhQh2h2s", eval.Quads, eval.FullHouse, Alice, "quads beat a full house"},
	{"2d2c", "3c3s", "3d3hQh2h2s", eval.Quads, eval.Quads, Bob, "higher quads win"},
	{"Ad7c", "Qc3s", "2d2cQh2h2s", eval.Quads, eval.Quads, Alice, "quads + higher kicker wins"},
	{"AdKc", "AcQs", "2d2cQh2h2s", eval.Quads, eval.Quads, Tie, "only one kicker matters with quads"},
	{"2d3d", "AcAs", "AdAh4d5d6d", eval.StraightFlush, eval.Quads, Alice, "straight flush beats quads"},
	{"Ts8s", "QsJs", "2s3s4s5s6s", eval.StraightFlush, eval.StraightFlush, Tie, "kickers don't matter with straight flushes"},
	{"Ah5c", "Tc2h", "6c7c8c9cKh", eval.StraightFlush, eval.StraightFlush, Bob, "highest straight flush wins"},
	{"AhJc", "5c5s", "2h3h4h5d5h", eval.StraightFlush, eval.Quads, Alice, "aces can be low in straight flushes"},
	{"AhJc", "6hKh", "2h3h4h5h5d", eval.StraightFlush, eval.StraightFlush, Bob, "the steel wheel is the lowest straight flush"},
	{"7d8h", "7h2c", "2h3h4h5h6h", eval.StraightFlush, eval.StraightFlush, Bob, "higher straight flush beats higher flush and straight"},
}
