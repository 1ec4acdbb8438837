package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/digital-rain/constants"
)

// Color identities, one per role
var (
	ColorHead    = tcell.ColorWhite
	ColorTrail   = tcell.ColorGreen
	ColorMessage = tcell.ColorGreen
)

// Base styles keep the terminal's own background
var (
	StyleBackground = tcell.StyleDefault.Background(tcell.ColorReset)
	StyleHead       = StyleBackground.Foreground(ColorHead)
	StyleTrail      = StyleBackground.Foreground(ColorTrail)
	StyleMessage    = StyleBackground.Foreground(ColorMessage)
)

// Emphasis is a brightness level applied on top of a color
type Emphasis int

const (
	EmphasisBold Emphasis = iota
	EmphasisNormal
	EmphasisDim
)

// Apply returns style with the emphasis attribute set
func (e Emphasis) Apply(style tcell.Style) tcell.Style {
	switch e {
	case EmphasisBold:
		return style.Bold(true).Dim(false)
	case EmphasisDim:
		return style.Bold(false).Dim(true)
	default:
		return style.Bold(false).Dim(false)
	}
}

// FadeSteps maps a locked glyph's fade stage to its emphasis, brightest first
var FadeSteps = [constants.FadeStageCount]Emphasis{EmphasisBold, EmphasisNormal, EmphasisDim}

// GetStyleForFadeStage returns the message style for a fade stage.
// Stages past the last step clamp to the dimmest emphasis
func GetStyleForFadeStage(stage int) tcell.Style {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(FadeSteps) {
		stage = len(FadeSteps) - 1
	}
	return FadeSteps[stage].Apply(StyleMessage)
}
