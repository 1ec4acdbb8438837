package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/digital-rain/constants"
)

// Handler turns terminal events into intents and decides whether the animation continues
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates an input handler
func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger}
}

// Parse classifies a terminal event
func Parse(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return IntentQuit
		}
		if ev.Key() == tcell.KeyRune {
			for _, r := range constants.QuitRunes {
				if ev.Rune() == r {
					return IntentQuit
				}
			}
		}
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// HandleEvent processes a tcell event and returns false if the animation should exit.
// Resizes need no action here, the frame loop re-reads the grid size every frame
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch Parse(ev) {
	case IntentQuit:
		h.logger.Debug("quit requested")
		return false
	case IntentResize:
		w, hgt := ev.(*tcell.EventResize).Size()
		h.logger.Debug("resize event", zap.Int("width", w), zap.Int("height", hgt))
	}
	return true
}
