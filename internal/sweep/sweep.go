// Package sweep runs many headless Life simulations in parallel and reports
// how each initial density evolves.
package sweep

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"lifecast/pkg/core"
	"lifecast/pkg/life"
)

// Scenario is one random start to simulate.
type Scenario struct {
	Density float64
	Seed    int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("p=%.3f seed=%d", s.Density, s.Seed)
}

// Result summarises one scenario.
type Result struct {
	Scenario Scenario
	Initial  int
	Final    int
	Peak     int
	// Settled is the first generation identical to its predecessor, or 0 if
	// the run never reached a still life.
	Settled uint64
	Steps   uint64
}

// Grid returns one scenario per density and seed.
func Grid(densities []float64, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(densities)*len(seeds))
	for _, d := range densities {
		for _, s := range seeds {
			out = append(out, Scenario{Density: d, Seed: s})
		}
	}
	return out
}

// Densities returns from, from+step, ... up to and including to.
func Densities(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return []float64{from}
	}
	var out []float64
	for i := 0; ; i++ {
		d := from + float64(i)*step
		if d > to+1e-9 {
			break
		}
		out = append(out, d)
	}
	return out
}

// RunScenario simulates s on a w*h grid for up to steps generations. The run
// stops early once the grid stops changing.
func RunScenario(w, h, steps int, s Scenario) Result {
	e := life.NewRandom(w, h, s.Density, core.NewRNG(s.Seed).Source())
	prev := e.Alive()
	res := Result{Scenario: s, Initial: len(prev), Peak: len(prev)}

	for i := 0; i < steps; i++ {
		e.Step()
		cur := e.Alive()
		if len(cur) > res.Peak {
			res.Peak = len(cur)
		}
		if slices.Equal(cur, prev) {
			res.Settled = e.Generation()
			prev = cur
			break
		}
		prev = cur
	}
	res.Final = len(prev)
	res.Steps = e.Generation()
	return res
}

// Run evaluates scenarios on workers goroutines and returns the results
// ordered by density, then seed. Scenarios not started before ctx ends are
// skipped.
func Run(ctx context.Context, w, h, steps, workers int, scenarios []Scenario) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- RunScenario(w, h, steps, s)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, s := range scenarios {
			select {
			case jobs <- s:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].Scenario, all[j].Scenario
		if a.Density != b.Density {
			return a.Density < b.Density
		}
		return a.Seed < b.Seed
	})
	return all
}
