// Command artevo evolves a population of shape genomes toward a reference
// image and shows the best candidate live in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/artevo/config"
	"github.com/lixenwraith/artevo/genetic"
	"github.com/lixenwraith/artevo/persistence"
	"github.com/lixenwraith/artevo/render"
	"github.com/lixenwraith/artevo/status"
)

var (
	imageFlag  = flag.String("image", "", "Path to the reference image (PNG, JPEG or BMP)")
	configFlag = flag.String("config", "", "Optional TOML run configuration")
	saveFlag   = flag.String("save", "", "Solution name to save on exit")
	seedFlag   = flag.Uint64("seed", 0, "Controller RNG seed (0 for random)")
)

func main() {
	var screen tcell.Screen

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nARTEVO CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if *imageFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: artevo -image <path> [-config <path>] [-save <name>]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	ref, err := render.LoadImage(*imageFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load reference image: %v\n", err)
		os.Exit(1)
	}

	evaluator := render.NewImageEvaluator(ref)
	engine, err := genetic.New(cfg.Params(ref.Width, ref.Height), evaluator)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create engine: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		engine.SetSeed(*seedFlag)
	}

	reg := status.NewRegistry()
	engine.SetStatus(reg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- engine.Run(ctx)
	}()

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := newViewer(screen, ref, reg)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	engineDone := false
	pending := runDone

loop:
	for {
		select {
		case <-ticker.C:
			if best, ok := engine.Best(); ok {
				v.draw(&best)
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quitKey(ev) {
					break loop
				}
			}
		case <-pending:
			// Engine finished on its own; keep showing the final result
			// until the user quits
			engineDone = true
			pending = nil
			if best, ok := engine.Best(); ok {
				v.draw(&best)
			}
		}
	}

	// Request stop, then wait for the engine loop to join its workers.
	// The current generation always completes first.
	engine.Stop()
	cancel()
	if !engineDone {
		select {
		case <-runDone:
		case <-time.After(30 * time.Second):
			panic("engine failed to shut down")
		}
	}

	if *saveFlag != "" {
		if best, ok := engine.Best(); ok {
			m := persistence.NewManager(cfg.SavePath)
			if err := m.Save(*saveFlag, persistence.ToDTO(&best, ref.Width, ref.Height)); err != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "Failed to save solution: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
