package constants

// System priorities, lower runs first. The message overlay must run after the
// rain so its glyphs overwrite rain glyphs in the same cell
const (
	PriorityRain    = 10
	PriorityMessage = 20
)
