// Package optimize searches the simulation parameter space by random
// sampling and keeps the draw that maximizes terminal balance. Each
// iteration builds its own engine state, so iterations run on a worker
// pool with no shared mutable state beyond the read-only bar slice; only
// the final max-reduction needs any coordination.
package optimize

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Andleep/Trend-andleep8/backtest"
	"github.com/Andleep/Trend-andleep8/indicators"
	"github.com/Andleep/Trend-andleep8/market"
	"github.com/Andleep/Trend-andleep8/sim"
)

// Sampled ranges. Commission, slippage, min amount, Kelly weight, and the
// initial balance are environment constants taken from the base params.
var (
	adxChoices      = []float64{6, 8, 10, 12, 15}
	tpChoices       = []float64{0.02, 0.03, 0.04, 0.05}
	slChoices       = []float64{0.01, 0.015, 0.02, 0.025}
	riskChoices     = []float64{0.02, 0.03, 0.05, 0.08}
	lookbackChoices = []int{200, 400, 800}
)

// Options controls a search run.
type Options struct {
	Iterations int
	Workers    int        // defaults to GOMAXPROCS
	Seed       int64      // 0 means time-seeded; set for reproducible runs
	Base       sim.Params // environment constants; zero value gets DefaultParams
	Logger     *zap.Logger
}

// Best is the winning draw of a search.
type Best struct {
	Score  float64 // terminal balance of the winning run
	Params sim.Params
	Result backtest.Result
}

// Sample draws one parameter set from the search ranges, leaving the
// environment constants of base untouched. Draws consume a fixed number
// of rng values, so a sequence of draws is fully determined by the seed.
func Sample(rng *rand.Rand, base sim.Params) sim.Params {
	p := base
	// Log-uniform over [1e-5, 1e-2]: thresholds this small are better
	// explored in orders of magnitude than linearly.
	p.ScoreThreshold = math.Pow(10, -5.0+3.0*rng.Float64())
	p.ADXThreshold = adxChoices[rng.Intn(len(adxChoices))]
	p.TakeProfitPct = tpChoices[rng.Intn(len(tpChoices))]
	p.StopLossPct = slChoices[rng.Intn(len(slChoices))]
	p.RiskPerTrade = riskChoices[rng.Intn(len(riskChoices))]
	p.Lookback = lookbackChoices[rng.Intn(len(lookbackChoices))]
	return p
}

type iterResult struct {
	idx    int
	params sim.Params
	result backtest.Result
	ok     bool
}

// Search runs opts.Iterations independent simulations over bars and
// returns the parameter set with the highest terminal balance. No
// convergence is claimed, only "best of N samples".
//
// Cancellation stops dispatching between iterations; iterations already
// finished still count and the best-so-far result is returned intact. A
// panicking iteration is logged and skipped, never aborting the search.
func Search(ctx context.Context, bars []market.Bar, symbol string, opts Options) (Best, error) {
	if opts.Iterations <= 0 {
		return Best{}, fmt.Errorf("optimize: iterations must be positive, got %d", opts.Iterations)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Base == (sim.Params{}) {
		opts.Base = sim.DefaultParams()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// All draws come from one sequential source so a given seed yields
	// the same search regardless of worker count or completion order.
	draws := make([]sim.Params, opts.Iterations)
	for i := range draws {
		draws[i] = Sample(rng, opts.Base)
	}

	prepared := indicators.Prepare(bars)

	jobs := make(chan int)
	results := make(chan iterResult, opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- runIteration(prepared, symbol, idx, draws[idx], logger)
			}
		}()
	}

	go func() {
	dispatch:
		for i := 0; i < opts.Iterations; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				logger.Info("search cancelled", zap.Int("dispatched", i))
				break dispatch
			}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	completed := make([]iterResult, 0, opts.Iterations)
	for r := range results {
		completed = append(completed, r)
		if r.ok {
			logger.Debug("iteration done",
				zap.Int("iter", r.idx),
				zap.Float64("final_balance", r.result.FinalBalance))
		}
	}

	// Max-reduction by terminal balance; ties go to the earliest draw so
	// the outcome is order-independent.
	var best Best
	bestIdx := -1
	for _, r := range completed {
		if !r.ok {
			continue
		}
		better := r.result.FinalBalance > best.Score
		if bestIdx == -1 || better || (r.result.FinalBalance == best.Score && r.idx < bestIdx) {
			best = Best{Score: r.result.FinalBalance, Params: r.params, Result: r.result}
			bestIdx = r.idx
		}
	}
	if bestIdx == -1 {
		if err := ctx.Err(); err != nil {
			return Best{}, fmt.Errorf("optimize: no iteration completed: %w", err)
		}
		return Best{}, fmt.Errorf("optimize: no iteration completed")
	}

	logger.Info("search complete",
		zap.Int("iterations", len(completed)),
		zap.Int("best_iter", bestIdx),
		zap.Float64("best_balance", best.Score))
	return best, nil
}

// runIteration isolates one draw: a malformed parameter set that panics
// inside the pipeline is logged and reported as not-ok.
func runIteration(prepared []market.Bar, symbol string, idx int, params sim.Params, logger *zap.Logger) (res iterResult) {
	res = iterResult{idx: idx, params: params}
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("iteration failed, skipping",
				zap.Int("iter", idx),
				zap.Any("panic", r))
			res.ok = false
		}
	}()

	res.result = backtest.SimulatePrepared(prepared, symbol, params)
	res.ok = true
	return res
}
