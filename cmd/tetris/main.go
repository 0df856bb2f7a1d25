package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Kili03/tetris/audio"
	"github.com/Kili03/tetris/constants"
	"github.com/Kili03/tetris/engine"
	"github.com/Kili03/tetris/input"
	"github.com/Kili03/tetris/render"
	"github.com/Kili03/tetris/stats"
)

const eventChanSize = 64

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: leave the alternate screen before printing so the
	// diagnostics stay visible after the process dies
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "TETRIS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	manager := stats.NewManager(stats.DefaultBasePath())

	ctx := engine.NewGameContext(manager.Load().Highscore)

	// Audio is best-effort, the game is fully playable in silence
	if snd, err := audio.NewEngine(); err == nil {
		ctx.Sound = snd
	}

	run(screen, ctx, render.New(screen))

	// Quit key and interrupt share this path: restore the terminal,
	// persist the highscore, exit clean
	screen.Fini()
	if err := manager.Save(stats.Stats{Highscore: ctx.Highscore}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save stats: %v\n", err)
		os.Exit(1)
	}
}

// run drives the session loop until quit or interrupt. One iteration
// handles at most one key event, one conditional forced drop and one
// render pass; the game context is mutated by this goroutine only.
func run(screen tcell.Screen, g *engine.GameContext, r *render.Renderer) {
	events := make(chan tcell.Event, eventChanSize)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	lastDrop := time.Now()

	for {
		select {
		case <-interrupts:
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()

			case *tcell.EventKey:
				cmd := input.Translate(ev)

				switch cmd {
				case input.CommandQuit:
					return
				case input.CommandPause:
					g.Paused = !g.Paused
				}

				if cmd.Directional() {
					g.Started = true
				}
				if !g.Paused && g.Started {
					g.Frame(cmd)
				}
			}

		case <-ticker.C:
			// Forced drop cadence, checked once per iteration rather
			// than run off a separate timer
			if !g.Paused && g.Started && time.Since(lastDrop) >= g.DropInterval() {
				g.Frame(input.CommandSoftDrop)
				lastDrop = time.Now()
			}
		}

		r.Draw(g)
	}
}
