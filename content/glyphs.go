package content

import (
	"math/rand"

	"github.com/lixenwraith/digital-rain/constants"
)

// GlyphPool is the fixed set of runes the rain samples from.
// Sub-pools are concatenated once; which sub-pool a rune came from has no meaning to rendering
type GlyphPool struct {
	runes []rune
}

// NewGlyphPool builds the pool from the kana, alphanumeric and reversed alphabet blocks
func NewGlyphPool() *GlyphPool {
	runes := make([]rune, 0, 128)
	runes = append(runes, []rune(constants.HalfWidthKana)...)
	runes = append(runes, []rune(constants.UpperAlphanumeric)...)
	runes = append(runes, []rune(constants.ReversedAlphabet)...)
	return &GlyphPool{runes: runes}
}

// Sample returns one rune chosen uniformly from the pool
func (p *GlyphPool) Sample(rng *rand.Rand) rune {
	return p.runes[rng.Intn(len(p.runes))]
}

// Len returns the pool size
func (p *GlyphPool) Len() int {
	return len(p.runes)
}

// Contains reports whether r is part of the pool
func (p *GlyphPool) Contains(r rune) bool {
	for _, c := range p.runes {
		if c == r {
			return true
		}
	}
	return false
}
