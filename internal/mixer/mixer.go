// Package mixer provides the deterministic 64-bit hash mixer used to turn
// test-run indices into reproducible hands and boards, and the
// mostly-random 7-card generator used to fuzz the evaluator against itself.
package mixer

import (
	"encoding/binary"

	"github.com/dchest/siphash"

	"github.com/lox/exactodds/internal/card"
)

// k0, k1 are a fixed SipHash key. They make Hash/Hash2/Hash3 deterministic
// across runs, which is all the regression tests need; they are not chosen
// to reproduce any particular external hash's output.
const (
	k0 = 0x0123456789abcdef
	k1 = 0xfedcba9876543210
)

// Hash mixes a single 64-bit value.
func Hash(a uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], a)
	return siphash.Hash(k0, k1, buf[:])
}

// Hash2 mixes two 64-bit values.
func Hash2(a, b uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], a)
	binary.LittleEndian.PutUint64(buf[8:16], b)
	return siphash.Hash(k0, k1, buf[:])
}

// Hash3 mixes three 64-bit values.
func Hash3(a, b, c uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], a)
	binary.LittleEndian.PutUint64(buf[8:16], b)
	binary.LittleEndian.PutUint64(buf[16:24], c)
	return siphash.Hash(k0, k1, buf[:])
}

// MostlyRandomHand derives a 7-card set from a single 64-bit seed by taking
// six bits at a time as a card index modulo 52. A collision (the card is
// already in the set) is resolved by taking the lowest-index card not yet
// in the set, rather than redrawing, so the function is a pure total
// function of r with no retry loop.
func MostlyRandomHand(r uint64) card.Cards {
	var cards card.Cards
	for i := 0; i < 7; i++ {
		idx := int((r>>uint(6*i))&0x3f) % 52
		b := card.Cards(1) << uint(idx)
		if cards&b != 0 {
			cards |= lowestUnsetBit(cards)
		} else {
			cards |= b
		}
	}
	return cards
}

// lowestUnsetBit returns the lowest-index bit not set in c.
func lowestUnsetBit(c card.Cards) card.Cards {
	inv := ^c
	return inv & -inv
}
