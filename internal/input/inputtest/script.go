// Package inputtest provides scripted input sources for tests.
package inputtest

import "pacman/internal/input"

// Script returns one batch per Poll and empty batches once exhausted.
type Script struct {
	Batches [][]input.Event
	Polls   int
}

func (s *Script) Poll() []input.Event {
	s.Polls++
	if len(s.Batches) == 0 {
		return nil
	}
	b := s.Batches[0]
	s.Batches = s.Batches[1:]
	return b
}

// Push appends a batch to be returned by a later Poll.
func (s *Script) Push(evts ...input.Event) {
	s.Batches = append(s.Batches, evts)
}

func Down(k input.Key) input.Event { return input.Event{Kind: input.KeyDown, Key: k} }

func Up(k input.Key) input.Event { return input.Event{Kind: input.KeyUp, Key: k} }

func Quit() input.Event { return input.Event{Kind: input.Quit} }
