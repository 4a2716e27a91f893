package types

type Color struct {
	R, G, B uint8
}

// Palette
var (
	BoardBackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor          = Color{R: 93, G: 216, B: 228}
	AppleColor           = Color{R: 255, G: 0, B: 0}
	SnakeColor           = Color{R: 0, G: 255, B: 0}
	TextColor            = Color{R: 255, G: 255, B: 255}
)

// Surface is the drawing target for one frame. Fill starts the frame and
// Present ends it.
type Surface interface {
	Fill(c Color)
	// DrawRect draws a size x size square at pos. When filled is false only
	// a 1px outline is drawn.
	DrawRect(pos Point, size int, c Color, filled bool)
	DrawText(text string, x, y, fontSize int, c Color)
	Present()
}
