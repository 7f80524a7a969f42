// Package input turns platform input into discrete game events.
package input

type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	Quit
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a logical direction key.
type Key int

const (
	None Key = iota
	Up
	Down
	Left
	Right
)

type Event struct {
	Kind Kind
	Key  Key
}

// Source is polled once per tick and returns every event captured since the
// previous poll, in order.
type Source interface {
	Poll() []Event
}
