package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone   IntentType = iota
	IntentQuit              // q, Q, Ctrl+C
	IntentResize            // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	}
	return "none"
}
