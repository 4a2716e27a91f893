package ui

import (
	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib-backed display surface and event source. Only one
// may be open at a time.
type Window struct {
	width, height int32
}

func OpenWindow(width, height int, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	return &Window{width: int32(width), height: int32(height)}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (w *Window) Fill(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(c))
}

func (w *Window) DrawRect(pos types.Point, size int, c types.Color, filled bool) {
	if filled {
		rl.DrawRectangle(int32(pos.X), int32(pos.Y), int32(size), int32(size), toColor(c))
		return
	}
	rl.DrawRectangleLines(int32(pos.X), int32(pos.Y), int32(size), int32(size), toColor(c))
}

func (w *Window) DrawText(text string, x, y, fontSize int, c types.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(fontSize), toColor(c))
}

// Present ends the frame. raylib polls input here, so keys pressed during
// the wait are visible to the next PollEvents.
func (w *Window) Present() {
	rl.EndDrawing()
}

var keyMap = map[int32]game.Key{
	rl.KeyUp:    game.KeyUp,
	rl.KeyDown:  game.KeyDown,
	rl.KeyLeft:  game.KeyLeft,
	rl.KeyRight: game.KeyRight,
}

// PollEvents drains raylib's key queue. Closing the window, Esc and Q all
// produce a quit event.
func (w *Window) PollEvents() []game.Event {
	var events []game.Event
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
		events = append(events, game.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k, ok := keyMap[key]; ok {
			events = append(events, game.KeyEvent(k))
		}
	}
	return events
}
