package engine

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/digital-rain/constants"
)

// MockScreen is a minimal mock for tcell.Screen
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shows         int
}

func NewMockScreen(width, height int) *MockScreen {
	return &MockScreen{width: width, height: height, cells: make(map[[2]int]rune)}
}

func (m *MockScreen) Size() (int, int) {
	return m.width, m.height
}

func (m *MockScreen) Clear() {
	m.cells = make(map[[2]int]rune)
}

func (m *MockScreen) Show() {
	m.shows++
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

// recordingSystem draws a marker and logs its call order
type recordingSystem struct {
	name     string
	priority int
	calls    *[]string
	draw     func(f *Frame)
}

func (s *recordingSystem) Priority() int { return s.priority }

func (s *recordingSystem) Update(f *Frame) {
	*s.calls = append(*s.calls, s.name)
	if s.draw != nil {
		s.draw(f)
	}
}

type inputFunc func(ev tcell.Event) bool

func (f inputFunc) HandleEvent(ev tcell.Event) bool { return f(ev) }

func quitOnQ() InputHandler {
	return inputFunc(func(ev tcell.Event) bool {
		if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyRune && (k.Rune() == 'q' || k.Rune() == 'Q') {
			return false
		}
		return true
	})
}

func newTestLoop(screen *MockScreen, events <-chan tcell.Event) (*FrameLoop, *MockTimeProvider) {
	state := newTestState(screen.width, screen.height)
	clock := NewMockTimeProvider(testEpoch)
	return NewFrameLoop(screen, state, clock, events, quitOnQ(), nil), clock
}

func TestFrameLoopSystemOrder(t *testing.T) {
	screen := NewMockScreen(20, 10)
	loop, _ := newTestLoop(screen, nil)

	var calls []string
	loop.AddSystem(&recordingSystem{name: "overlay", priority: 20, calls: &calls})
	loop.AddSystem(&recordingSystem{name: "rain", priority: 10, calls: &calls})

	if !loop.Step() {
		t.Fatal("Expected loop to continue without input")
	}
	if len(calls) != 2 || calls[0] != "rain" || calls[1] != "overlay" {
		t.Errorf("Expected rain then overlay, got %v", calls)
	}
}

// TestFrameLoopLaterSystemWins verifies a higher priority system overdraws the same cell
func TestFrameLoopLaterSystemWins(t *testing.T) {
	screen := NewMockScreen(20, 10)
	loop, _ := newTestLoop(screen, nil)

	var calls []string
	loop.AddSystem(&recordingSystem{name: "rain", priority: 10, calls: &calls, draw: func(f *Frame) {
		f.Buffer.Set(4, 5, 'r', tcell.StyleDefault)
	}})
	loop.AddSystem(&recordingSystem{name: "overlay", priority: 20, calls: &calls, draw: func(f *Frame) {
		f.Buffer.Set(4, 5, 'M', tcell.StyleDefault)
	}})

	loop.Step()
	if got := screen.cells[[2]int{4, 5}]; got != 'M' {
		t.Errorf("Expected overlay glyph 'M', got %q", got)
	}
}

// TestFrameLoopOutOfBoundsDraw verifies a draw at row == height is dropped and the frame still flushes
func TestFrameLoopOutOfBoundsDraw(t *testing.T) {
	screen := NewMockScreen(80, 24)
	loop, _ := newTestLoop(screen, nil)

	var calls []string
	loop.AddSystem(&recordingSystem{name: "edge", calls: &calls, draw: func(f *Frame) {
		f.Buffer.Set(0, f.State.Height, 'X', tcell.StyleDefault)
		f.Buffer.Set(f.State.Width, 0, 'X', tcell.StyleDefault)
		f.Buffer.Set(1, 1, 'V', tcell.StyleDefault)
	}})

	if !loop.Step() {
		t.Fatal("Expected frame to complete")
	}
	if screen.shows != 1 {
		t.Errorf("Expected one flush, got %d", screen.shows)
	}
	if _, ok := screen.cells[[2]int{0, 24}]; ok {
		t.Error("Out-of-bounds cell reached the screen")
	}
	if screen.cells[[2]int{1, 1}] != 'V' {
		t.Error("Expected in-bounds cell flushed")
	}
}

func TestFrameLoopSleepsFrameAndExtraDelay(t *testing.T) {
	screen := NewMockScreen(10, 10)
	loop, clock := newTestLoop(screen, nil)

	var calls []string
	loop.AddSystem(&recordingSystem{name: "slow", calls: &calls, draw: func(f *Frame) {
		f.RequestDelay(constants.DissolveStepDelay)
	}})

	loop.Step()
	want := constants.FrameDelay + constants.DissolveStepDelay
	if clock.Slept() != want {
		t.Errorf("Expected %v slept, got %v", want, clock.Slept())
	}
	if !clock.Now().Equal(testEpoch.Add(want)) {
		t.Errorf("Expected clock advanced by %v", want)
	}
}

// TestFrameLoopFrameNowReadOnce verifies every system sees the same frame time
func TestFrameLoopFrameNowReadOnce(t *testing.T) {
	screen := NewMockScreen(10, 10)
	loop, clock := newTestLoop(screen, nil)

	var calls []string
	var seen []time.Time
	for i := 0; i < 2; i++ {
		loop.AddSystem(&recordingSystem{priority: i, calls: &calls, draw: func(f *Frame) {
			seen = append(seen, f.Now)
			clock.Advance(time.Second)
		}})
	}

	loop.Step()
	if len(seen) != 2 || !seen[0].Equal(seen[1]) {
		t.Errorf("Expected identical frame times, got %v", seen)
	}
}

func TestFrameLoopTracksResize(t *testing.T) {
	screen := NewMockScreen(80, 24)
	loop, _ := newTestLoop(screen, nil)

	screen.width, screen.height = 30, 8
	loop.Step()

	if loop.state.Width != 30 || loop.state.Height != 8 || len(loop.state.Columns) != 30 {
		t.Errorf("Expected state 30x8 with 30 columns, got %dx%d with %d",
			loop.state.Width, loop.state.Height, len(loop.state.Columns))
	}
	if w, h := loop.Buffer().Bounds(); w != 30 || h != 8 {
		t.Errorf("Expected buffer 30x8, got %dx%d", w, h)
	}
}

func TestFrameLoopQuitKey(t *testing.T) {
	for _, r := range []rune{'q', 'Q'} {
		t.Run(string(r), func(t *testing.T) {
			screen := NewMockScreen(20, 10)
			events := make(chan tcell.Event, 4)
			loop, _ := newTestLoop(screen, events)

			events <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
			events <- tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)

			if err := loop.Run(context.Background()); err != nil {
				t.Fatalf("Expected clean quit, got %v", err)
			}
			if screen.shows != 1 {
				t.Errorf("Expected the frame to flush before quitting, got %d shows", screen.shows)
			}
		})
	}
}

func TestFrameLoopIgnoresOtherKeys(t *testing.T) {
	screen := NewMockScreen(20, 10)
	events := make(chan tcell.Event, 4)
	loop, _ := newTestLoop(screen, events)

	events <- tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)

	if !loop.Step() {
		t.Error("Expected loop to continue on non-quit keys")
	}
	if len(events) != 0 {
		t.Errorf("Expected pending events drained, %d left", len(events))
	}
}

func TestFrameLoopClosedEvents(t *testing.T) {
	screen := NewMockScreen(20, 10)
	events := make(chan tcell.Event)
	close(events)
	loop, _ := newTestLoop(screen, events)

	if loop.Step() {
		t.Error("Expected loop to stop when the event source closes")
	}
}

func TestFrameLoopContextCancel(t *testing.T) {
	screen := NewMockScreen(20, 10)
	loop, _ := newTestLoop(screen, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var calls []string
	loop.AddSystem(&recordingSystem{name: "cancel", calls: &calls, draw: func(f *Frame) {
		if f.Number == 2 {
			cancel()
		}
	}})

	err := loop.Run(ctx)
	if err != context.Canceled {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if len(calls) != 3 {
		t.Errorf("Expected cancellation after the third frame completed, got %d frames", len(calls))
	}
	if screen.shows != 3 {
		t.Errorf("Expected 3 flushed frames, got %d", screen.shows)
	}
}

func TestFrameLoopLogsLifecycle(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	screen := NewMockScreen(20, 10)
	events := make(chan tcell.Event, 1)
	state := newTestState(20, 10)
	loop := NewFrameLoop(screen, state, NewMockTimeProvider(testEpoch), events, quitOnQ(), zap.New(core))

	screen.width = 25
	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, msg := range []string{"frame loop started", "grid resized", "frame loop quit"} {
		if logs.FilterMessage(msg).Len() != 1 {
			t.Errorf("Expected one %q log entry, got %d", msg, logs.FilterMessage(msg).Len())
		}
	}
}
