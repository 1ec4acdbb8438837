package constants

// Messages are revealed one after another, wrapping after the last
var Messages = []string{
	"WAKE UP, NEO",
	"FOLLOW THE WHITE RABBIT",
	"THE MATRIX HAS YOU",
	"SYSTEM ONLINE",
}

// FadeStageCount is the number of emphasis levels a locked glyph passes through
// (bright, normal, dim) before it is released back to the rain
const FadeStageCount = 3
