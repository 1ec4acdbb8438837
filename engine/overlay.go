package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/digital-rain/constants"
)

// Phase is the message overlay's state
type Phase int

const (
	// PhaseAccumulating: rain falls and message columns lock as heads pass the message row
	PhaseAccumulating Phase = iota
	// PhaseHolding: every column locked, waiting out the hold
	PhaseHolding
	// PhaseDissolving: locked columns fade out one at a time
	PhaseDissolving
	// PhasePaused: a new message was just selected; behaves as accumulating while the pause timer runs
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseAccumulating:
		return "accumulating"
	case PhaseHolding:
		return "holding"
	case PhaseDissolving:
		return "dissolving"
	case PhasePaused:
		return "paused"
	}
	return "unknown"
}

// Revealing reports whether columns may still lock in this phase
func (p Phase) Revealing() bool {
	return p == PhaseAccumulating || p == PhasePaused
}

// Overlay tracks the current hidden message: where it sits, which columns have
// locked and how far each has faded
type Overlay struct {
	Index   int          // Position in the message rotation
	Text    string       // Message being revealed
	Row     int          // Target row
	Start   int          // Column of the first rune
	Columns map[int]rune // Grid column -> message rune, clipped to the grid width
	Locked  map[int]int  // Grid column -> fade stage, keys are a subset of Columns

	Phase       Phase
	CompletedAt time.Time // Set on entering PhaseHolding
	PauseStart  time.Time // Set on entering PhasePaused

	layoutWidth  int
	layoutHeight int
}

// LayoutMessage centers text on the middle row of a width x height grid.
// Runes that would fall past the right edge are left out
func LayoutMessage(text string, width, height int) (row, start int, columns map[int]rune) {
	runes := []rune(text)
	row = height / 2
	start = max(0, (width-len(runes))/2)

	columns = make(map[int]rune, len(runes))
	for i, r := range runes {
		x := start + i
		if x >= width {
			break
		}
		columns[x] = r
	}
	return row, start, columns
}

// Reset starts a fresh reveal of text with no locked columns
func (o *Overlay) Reset(index int, text string, width, height int) {
	o.Index = index
	o.Text = text
	o.Row, o.Start, o.Columns = LayoutMessage(text, width, height)
	o.Locked = make(map[int]int, len(o.Columns))
	o.Phase = PhaseAccumulating
	o.CompletedAt = time.Time{}
	o.PauseStart = time.Time{}
	o.layoutWidth = width
	o.layoutHeight = height
}

// NeedsLayout reports whether the layout was computed for different grid dimensions
func (o *Overlay) NeedsLayout(width, height int) bool {
	return o.layoutWidth != width || o.layoutHeight != height
}

// Relayout re-centers the current message for a resized grid.
// Locked columns keep their fade stage by message position; a hold whose
// message gained unrevealed columns drops back to accumulating
func (o *Overlay) Relayout(width, height int) {
	row, start, columns := LayoutMessage(o.Text, width, height)

	locked := make(map[int]int, len(o.Locked))
	for x, stage := range o.Locked {
		nx := start + (x - o.Start)
		if _, ok := columns[nx]; ok {
			locked[nx] = stage
		}
	}

	o.Row, o.Start, o.Columns, o.Locked = row, start, columns, locked
	o.layoutWidth = width
	o.layoutHeight = height

	if o.Phase == PhaseHolding && !o.Complete() {
		o.Phase = PhaseAccumulating
		o.CompletedAt = time.Time{}
	}
}

// Lock marks column x as revealed at the brightest stage.
// Returns false if x is not a message column or already locked
func (o *Overlay) Lock(x int) bool {
	if _, ok := o.Columns[x]; !ok {
		return false
	}
	if _, ok := o.Locked[x]; ok {
		return false
	}
	o.Locked[x] = 0
	return true
}

// Complete reports whether every message column is locked
func (o *Overlay) Complete() bool {
	return len(o.Columns) > 0 && len(o.Locked) == len(o.Columns)
}

// LockedColumns returns locked column indices in ascending order
func (o *Overlay) LockedColumns() []int {
	cols := make([]int, 0, len(o.Locked))
	for x := range o.Locked {
		cols = append(cols, x)
	}
	sort.Ints(cols)
	return cols
}

// BeginHold moves a completed reveal into PhaseHolding
func (o *Overlay) BeginHold(now time.Time) bool {
	if !o.Phase.Revealing() || !o.Complete() {
		return false
	}
	o.Phase = PhaseHolding
	o.CompletedAt = now
	o.PauseStart = time.Time{}
	return true
}

// BeginDissolve moves a hold older than constants.HoldDuration into PhaseDissolving
func (o *Overlay) BeginDissolve(now time.Time) bool {
	if o.Phase != PhaseHolding || now.Sub(o.CompletedAt) <= constants.HoldDuration {
		return false
	}
	o.Phase = PhaseDissolving
	return true
}

// DissolveStep fades one locked column picked uniformly at random.
// A column fading past the last stage is released. Returns the column touched,
// whether it was released, and false if nothing was dissolved
func (o *Overlay) DissolveStep(rng *rand.Rand) (x int, released bool, ok bool) {
	if o.Phase != PhaseDissolving || len(o.Locked) == 0 {
		return 0, false, false
	}

	cols := o.LockedColumns()
	x = cols[rng.Intn(len(cols))]
	o.Locked[x]++
	if o.Locked[x] >= constants.FadeStageCount {
		delete(o.Locked, x)
		released = true
	}
	return x, released, true
}

// Dissolved reports whether a dissolve has released every column
func (o *Overlay) Dissolved() bool {
	return o.Phase == PhaseDissolving && len(o.Locked) == 0
}

// BeginPause marks a freshly reset overlay as paused from now
func (o *Overlay) BeginPause(now time.Time) {
	o.Phase = PhasePaused
	o.PauseStart = now
}

// EndPause returns to PhaseAccumulating once constants.PauseBetween has passed
func (o *Overlay) EndPause(now time.Time) bool {
	if o.Phase != PhasePaused || now.Sub(o.PauseStart) < constants.PauseBetween {
		return false
	}
	o.Phase = PhaseAccumulating
	o.PauseStart = time.Time{}
	return true
}
