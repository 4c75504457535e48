package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"lifecast/internal/sweep"
)

func main() {
	width := flag.Int("w", 128, "grid width for each run")
	height := flag.Int("h", 128, "grid height for each run")
	steps := flag.Int("steps", 500, "maximum generations per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	from := flag.Float64("from", 0.05, "lowest initial density")
	to := flag.Float64("to", 0.6, "highest initial density")
	step := flag.Float64("step", 0.05, "density increment")
	seeds := flag.Int("seeds", 4, "seeds per density")
	flag.Parse()

	if *width < 0 || *height < 0 || *steps < 0 || *seeds <= 0 {
		log.Fatalf("invalid sweep: %dx%d, %d steps, %d seeds", *width, *height, *steps, *seeds)
	}

	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}
	scenarios := sweep.Grid(sweep.Densities(*from, *to, *step), seedList)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(scenarios), *width, *height, *workers, *steps)
	start := time.Now()
	results := sweep.Run(ctx, *width, *height, *steps, *workers, scenarios)

	for _, res := range results {
		settled := "no"
		if res.Settled > 0 {
			settled = fmt.Sprintf("gen %d", res.Settled)
		}
		fmt.Printf("%s initial=%d peak=%d final=%d steps=%d settled=%s\n",
			res.Scenario, res.Initial, res.Peak, res.Final, res.Steps, settled)
	}
	fmt.Printf("\n%d runs in %s\n", len(results), time.Since(start).Round(time.Millisecond))
}
