// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmath/cordic"
	"github.com/katalvlaran/lvmath/num"
)

var (
	errBadIters   = errors.New("iteration count must be in [1, 16]")
	errBadSamples = errors.New("samples must be at least 2")
	errBadRange   = errors.New("min must be finite and below max")
)

// checkEvery is the number of samples between context checks.
const checkEvery = 4096

type result struct {
	Iterations int
	MaxCosErr  float64
	MaxSinErr  float64
	MaxNormErr float64 // max |cos² + sin² - 1|
}

func parseIters(s string) ([]int, error) {
	var iters []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("iters %q: %w", f, err)
		}
		if n < 1 || n > cordic.MaxIterations {
			return nil, fmt.Errorf("iters %d: %w", n, errBadIters)
		}
		iters = append(iters, n)
	}
	if len(iters) == 0 {
		return nil, fmt.Errorf("iters %q: %w", s, errBadIters)
	}

	return iters, nil
}

func validate(cfg config) error {
	if cfg.Samples < 2 {
		return fmt.Errorf("samples %d: %w", cfg.Samples, errBadSamples)
	}
	if math.IsNaN(cfg.Min) || math.IsInf(cfg.Min, 0) || math.IsInf(cfg.Max, 0) || !(cfg.Min < cfg.Max) {
		return fmt.Errorf("range [%g, %g]: %w", cfg.Min, cfg.Max, errBadRange)
	}

	return nil
}

// runSweeps runs one sweep per iteration count, at most cfg.Workers at a time.
// Results keep the order of iters.
func runSweeps(ctx context.Context, cfg config, iters []int) ([]result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	results := make([]result, len(iters))
	for i, n := range iters {
		g.Go(func() error {
			res, err := sweep(ctx, cfg, n)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func sweep(ctx context.Context, cfg config, iterations int) (result, error) {
	opts := []cordic.Option{cordic.WithIterations(iterations)}
	if cfg.Fold {
		opts = append(opts, cordic.WithQuadrantFolding())
	}
	e := cordic.New(opts...)

	res := result{Iterations: iterations}
	step := (cfg.Max - cfg.Min) / float64(cfg.Samples-1)
	for i := 0; i < cfg.Samples; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}

		alpha := num.Real(cfg.Min + float64(i)*step)
		c, s := e.SinCos(alpha)
		ws, wc := math.Sincos(float64(alpha))

		cf, sf := float64(c), float64(s)
		res.MaxCosErr = math.Max(res.MaxCosErr, math.Abs(cf-wc))
		res.MaxSinErr = math.Max(res.MaxSinErr, math.Abs(sf-ws))
		res.MaxNormErr = math.Max(res.MaxNormErr, math.Abs(cf*cf+sf*sf-1))
	}

	return res, nil
}

func printResults(w io.Writer, cfg config, results []result) error {
	fmt.Fprintf(w, "angles: %d in [%g, %g], fold: %t, width: %d bits\n",
		cfg.Samples, cfg.Min, cfg.Max, cfg.Fold, num.Bits)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "iters\tmax|Δcos|\tmax|Δsin|\tmax|norm-1|\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%.3e\t%.3e\t%.3e\t\n", r.Iterations, r.MaxCosErr, r.MaxSinErr, r.MaxNormErr)
	}

	return tw.Flush()
}
