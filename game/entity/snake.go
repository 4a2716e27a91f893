package entity

import (
	"the-snake/game/types"
)

type Snake struct {
	Positions     []types.Point // Head first
	Length        int           // Target length the body grows toward
	Direction     types.Direction
	NextDirection types.Direction // None when nothing is queued
	Last          *types.Point    // Cell vacated by the last move, erased on redraw
	Color         types.Color
	grid          types.Grid
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		Color: types.SnakeColor,
		grid:  grid,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to a single cell at the board center moving right.
func (s *Snake) Reset() {
	s.Length = 1
	s.Positions = []types.Point{s.grid.Center()}
	s.Direction = types.Right
	s.NextDirection = types.None
	s.Last = nil
}

func (s *Snake) Head() types.Point {
	return s.Positions[0]
}

// SetNextDirection queues dir for the next tick unless it would reverse the
// committed direction. Later calls within a tick overwrite earlier ones.
func (s *Snake) SetNextDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.NextDirection = dir
	return true
}

// UpdateDirection commits the queued direction. A queued reversal is
// dropped; the queue is cleared either way.
func (s *Snake) UpdateDirection() {
	if s.NextDirection == types.None {
		return
	}
	if s.NextDirection != s.Direction.Opposite() {
		s.Direction = s.NextDirection
	}
	s.NextDirection = types.None
}

// Move advances the head one cell, wrapping around the board edges, and
// drops the tail once the body is longer than Length.
func (s *Snake) Move() {
	prevLen := len(s.Positions)
	newHead := s.grid.Wrap(s.Head().Add(s.Direction, s.grid.Unit))

	s.Positions = append(s.Positions, types.Point{})
	copy(s.Positions[1:], s.Positions)
	s.Positions[0] = newHead

	s.Last = nil
	if len(s.Positions) > s.Length {
		tail := s.Positions[len(s.Positions)-1]
		s.Positions = s.Positions[:len(s.Positions)-1]
		if prevLen > 1 {
			s.Last = &tail
		}
	}
}

// Grow raises the target length by one. The body catches up one cell per move.
func (s *Snake) Grow() {
	s.Length++
}

// Occupies reports whether any body cell, head included, is at p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Positions {
		if part == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head overlaps any other body cell.
func (s *Snake) HitsItself() bool {
	head := s.Head()
	for _, part := range s.Positions[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Draw erases the vacated tail cell, then paints every segment. The head
// may have moved into the vacated cell, so the erase comes first.
func (s *Snake) Draw(surface types.Surface) {
	if s.Last != nil {
		surface.DrawRect(*s.Last, s.grid.Unit, types.BoardBackgroundColor, true)
	}
	for _, p := range s.Positions {
		surface.DrawRect(p, s.grid.Unit, s.Color, true)
		surface.DrawRect(p, s.grid.Unit, types.BorderColor, false)
	}
}
