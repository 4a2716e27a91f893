package game

import (
	"fmt"
	"log/slog"
	"time"

	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type Game struct {
	Grid    types.Grid
	Snake   *entity.Snake
	Apple   *entity.Apple
	ShowHUD bool // Draw the session stats line

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	statsMgr     *manager.StatsManager
	log          *slog.Logger
}

// NewGame creates the snake and the apple. The same seed always produces the
// same sequence of apple positions.
func NewGame(grid types.Grid, seed uint64, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	rng := rand.New(rand.NewSource(seed))
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Grid:         grid,
		Snake:        entity.NewSnake(grid),
		Apple:        entity.NewApple(grid, rng),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		statsMgr:     manager.NewStatsManager(),
		log:          log,
	}
	g.foodMgr.Respawn(g.Apple, g.Snake)

	g.log.Info("new game",
		"columns", grid.Columns(),
		"rows", grid.Rows(),
		"seed", seed,
		"round", g.statsMgr.Snapshot().RoundID)
	return g
}

// Update advances the game by one tick: commit the queued direction, move,
// then resolve the apple and self collisions in that order.
func (g *Game) Update() {
	g.Snake.UpdateDirection()
	g.Snake.Move()

	if g.collisionMgr.IsFoodCollision(g.Snake, g.Apple) {
		g.Snake.Grow()
		g.statsMgr.RecordApple(g.Snake.Length)
		if !g.foodMgr.Respawn(g.Apple, g.Snake) {
			g.log.Warn("no free cell left for the apple", "length", g.Snake.Length)
		}
		g.log.Debug("apple eaten", "length", g.Snake.Length, "apple", g.Apple.Position)
	}

	if g.collisionMgr.IsSelfCollision(g.Snake) {
		length := g.Snake.Length
		duration := g.statsMgr.RoundDuration()
		ended := g.statsMgr.RecordReset()
		g.Snake.Reset()
		// The apple is re-rolled on every reset even though it did not move.
		g.foodMgr.Respawn(g.Apple, g.Snake)
		g.log.Info("snake hit itself",
			"length", length,
			"apples", ended.ApplesEaten,
			"duration", duration.Round(time.Millisecond),
			"round", ended.RoundID,
			"next_round", g.statsMgr.Snapshot().RoundID)
	}
}

// Draw renders one frame onto surface.
func (g *Game) Draw(surface types.Surface) {
	surface.Fill(types.BoardBackgroundColor)
	g.Apple.Draw(surface)
	g.Snake.Draw(surface)
	if g.ShowHUD {
		surface.DrawText(g.hudLine(), 5, 5, 10, types.TextColor)
	}
	surface.Present()
}

func (g *Game) hudLine() string {
	s := g.statsMgr.Snapshot()
	return fmt.Sprintf("Length: %d  Best: %d  Resets: %d", g.Snake.Length, s.BestLength, s.Resets)
}

// Stats returns the counters of the running session.
func (g *Game) Stats() manager.SessionStats {
	return g.statsMgr.Snapshot()
}
