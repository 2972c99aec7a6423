// Command artevo-bench runs the evolution engine headless for a fixed
// number of generations and reports throughput and convergence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/artevo/config"
	"github.com/lixenwraith/artevo/genetic"
	"github.com/lixenwraith/artevo/render"
	"github.com/lixenwraith/artevo/status"
)

var (
	imageFlag   = flag.String("image", "", "Reference image path (synthetic gradient if empty)")
	gensFlag    = flag.Int("gens", 500, "Generations to run")
	popFlag     = flag.Int("pop", 128, "Population size")
	shapesFlag  = flag.Int("shapes", 64, "Genes per chromosome")
	islandsFlag = flag.Int("islands", 4, "Island count")
	seedFlag    = flag.Uint64("seed", 0, "Controller RNG seed (0 for random)")
)

func main() {
	flag.Parse()

	var ref *render.Buffer
	if *imageFlag != "" {
		var err error
		if ref, err = render.LoadImage(*imageFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load reference image: %v\n", err)
			os.Exit(1)
		}
	} else {
		ref = syntheticReference(320, 240)
	}

	cfg := config.Default()
	cfg.PopulationSize = *popFlag
	cfg.NbShapes = *shapesFlag
	cfg.IslandCount = *islandsFlag
	cfg.MaxIterations = *gensFlag

	engine, err := genetic.New(cfg.Params(ref.Width, ref.Height), render.NewImageEvaluator(ref))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create engine: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		engine.SetSeed(*seedFlag)
	}

	engine.SetLogger(func(level genetic.LogLevel, msg string) {
		tag := [...]string{"INFO", "WARN", "ERROR"}[level]
		fmt.Fprintf(os.Stderr, "[%s] %s\n", tag, msg)
	})

	reg := status.NewRegistry()
	engine.SetStatus(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("artevo-bench: %dx%d reference, pop %d, %d shapes, %d islands, %d generations\n",
		ref.Width, ref.Height, cfg.PopulationSize, cfg.NbShapes, cfg.IslandCount, cfg.MaxIterations)

	started := time.Now()
	if err := engine.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Run interrupted: %v\n", err)
	}
	elapsed := time.Since(started)

	gens := reg.Generation.Load()
	best, ok := engine.Best()
	if !ok {
		fmt.Println("No result produced")
		os.Exit(1)
	}

	fmt.Printf("generations:  %d\n", gens)
	fmt.Printf("evaluations:  %d\n", reg.Evaluations.Load())
	fmt.Printf("migrations:   %d\n", reg.Migrations.Load())
	fmt.Printf("best fitness: %.4f\n", best.Fitness)
	fmt.Printf("elapsed:      %s\n", elapsed.Round(time.Millisecond))
	if gens > 0 && elapsed > 0 {
		fmt.Printf("throughput:   %.1f gens/sec\n", float64(gens)/elapsed.Seconds())
	}

	if hist := engine.History(); len(hist) > 0 {
		last := hist[len(hist)-1]
		fmt.Printf("final pool:   best %.1f worst %.1f mean %.1f stddev %.1f\n",
			last.Best, last.Worst, last.Mean, last.StdDev)
	}
}

// syntheticReference builds a color gradient so the benchmark runs without
// any input file
func syntheticReference(w, h int) *render.Buffer {
	b := render.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := uint8(255 * x / w)
			g := uint8(255 * y / h)
			bl := uint8(255 - 255*x/w)
			b.Set(x, y, render.PackARGB(r, g, bl, 255))
		}
	}
	return b
}
