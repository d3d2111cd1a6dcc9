// SPDX-License-Identifier: MIT

// Command cordicsweep measures CORDIC sine/cosine accuracy against math.Sincos
// over a range of angles, one concurrent sweep per iteration count.
//
// Usage:
//
//	cordicsweep -samples 100000 -min -3.14 -max 3.14 -iters 8,10,12,16 -fold
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
)

type config struct {
	Samples int
	Min     float64
	Max     float64
	Iters   string
	Workers int
	Fold    bool
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(); err != nil {
		log.Fatalf("cordicsweep: %v", err)
	}
}

func run() error {
	var cfg config
	flag.IntVar(&cfg.Samples, "samples", 100_000, "Number of angles per sweep")
	flag.Float64Var(&cfg.Min, "min", -1.5, "Smallest angle in radians")
	flag.Float64Var(&cfg.Max, "max", 1.5, "Largest angle in radians")
	flag.StringVar(&cfg.Iters, "iters", "4,8,10,12,16", "Comma-separated iteration counts")
	flag.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "Maximum concurrent sweeps")
	flag.BoolVar(&cfg.Fold, "fold", false, "Enable quadrant folding")
	flag.Parse()

	iters, err := parseIters(cfg.Iters)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runSweeps(ctx, cfg, iters)
	if err != nil {
		return err
	}

	return printResults(os.Stdout, cfg, results)
}
