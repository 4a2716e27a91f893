package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"the-snake/game"
	"the-snake/game/types"
	"the-snake/ui"

	"github.com/lmittmann/tint"
)

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for apple placement")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	hud := flag.Bool("hud", false, "Show length and reset counters")
	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))

	window := ui.OpenWindow(types.ScreenWidth, types.ScreenHeight, types.WindowTitle)
	defer window.Close()

	g := game.NewGame(types.DefaultGrid(), *seed, log)
	g.ShowHUD = *hud

	game.Run(g, window, window, ui.NewClock(types.Speed))
}
