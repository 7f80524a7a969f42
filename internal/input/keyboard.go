package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var arrowKeys = []struct {
	key ebiten.Key
	dir Key
}{
	{ebiten.KeyArrowUp, Up},
	{ebiten.KeyArrowDown, Down},
	{ebiten.KeyArrowLeft, Left},
	{ebiten.KeyArrowRight, Right},
}

// Keyboard reads the arrow keys through ebiten. Closing the window or
// pressing Escape or Q produces a Quit event.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll reports releases before presses, so a key released and pressed again
// within one tick ends up held.
func (k *Keyboard) Poll() []Event {
	var evts []Event
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		evts = append(evts, Event{Kind: Quit})
	}
	for _, a := range arrowKeys {
		if inpututil.IsKeyJustReleased(a.key) {
			evts = append(evts, Event{Kind: KeyUp, Key: a.dir})
		}
	}
	for _, a := range arrowKeys {
		if inpututil.IsKeyJustPressed(a.key) {
			evts = append(evts, Event{Kind: KeyDown, Key: a.dir})
		}
	}
	return evts
}
