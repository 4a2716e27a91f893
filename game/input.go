package game

import (
	"the-snake/game/types"
)

type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
)

type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is a single input event polled from the window.
type Event struct {
	Type EventType
	Key  Key // Set for EventKeyDown
}

func QuitEvent() Event {
	return Event{Type: EventQuit}
}

func KeyEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

var keyDirections = map[Key]types.Direction{
	KeyUp:    types.Up,
	KeyDown:  types.Down,
	KeyLeft:  types.Left,
	KeyRight: types.Right,
}

// HandleEvents applies the events polled for this tick and reports whether
// a quit was requested. Arrow keys queue a direction for the snake; a key
// that would reverse the current direction is ignored.
func (g *Game) HandleEvents(events []Event) bool {
	for _, ev := range events {
		switch ev.Type {
		case EventQuit:
			return true
		case EventKeyDown:
			if dir, ok := keyDirections[ev.Key]; ok {
				g.Snake.SetNextDirection(dir)
			}
		}
	}
	return false
}
