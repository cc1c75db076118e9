// Package simulator estimates road travel time with a Markov-chain Monte Carlo
// simulation over traffic and weather states.
//
// A trip is cut into fixed-length segments. Each segment is driven at the
// speed of the current state, after which the state advances one step of the
// transition matrix selected for the trip. Repeating the trip many times gives
// a distribution of travel times that is reduced to a SimulationSummary.
package simulator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/chrisdamba/transitsim/internal/stats"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// trials simulated per goroutine and per derived random stream
const trialChunkSize = 64

// SeedSource supplies seeds for per-chunk random streams. *rand.Rand satisfies it.
type SeedSource interface {
	Int63() int64
}

type Option func(*Estimator)

// WithSource injects the random source, e.g. rand.New(rand.NewSource(seed)).
func WithSource(src SeedSource) Option {
	return func(e *Estimator) { e.source = src }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Estimator) { e.logger = logger }
}

// WithWorkers bounds how many trial chunks run concurrently.
func WithWorkers(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// Estimator runs Monte Carlo trip simulations. It is safe for concurrent use.
type Estimator struct {
	Config   *models.Config
	Matrices *MatrixSet
	Zones    ZoneClassifier

	logger  zerolog.Logger
	workers int

	mu     sync.Mutex
	source SeedSource
}

func NewEstimator(config *models.Config, opts ...Option) (*Estimator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	matrices, err := NewMatrixSet(config.TransitionMatrices)
	if err != nil {
		return nil, fmt.Errorf("building transition matrices: %w", err)
	}

	e := &Estimator{
		Config:   config,
		Matrices: matrices,
		Zones:    NewZoneClassifier(config),
		logger:   zerolog.Nop(),
		workers:  config.Workers,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.source = rand.New(rand.NewSource(seed))
	}

	if missing := matrices.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, key := range missing {
			names[i] = key.String()
		}
		if config.StrictMatrices {
			return nil, fmt.Errorf("%w: not configured: %s", models.ErrMissingTransitionMatrix, strings.Join(names, ", "))
		}
		e.logger.Warn().Strs("matrices", names).Msg("transition matrices not configured; matching trips will be rejected")
	}
	return e, nil
}

// tripPlan is everything a single trial needs. It is shared read-only by all trials.
type tripPlan struct {
	distanceKm float64
	segmentKm  float64
	hour       int
	season     models.Season
	matrix     *TransitionMatrix
}

// Estimate validates the request, simulates req.Trials trips and summarizes them.
func (e *Estimator) Estimate(ctx context.Context, req models.EstimateRequest) (models.SimulationSummary, error) {
	plan, err := e.plan(req)
	if err != nil {
		return models.SimulationSummary{}, err
	}

	samples, err := e.simulateTrips(ctx, plan, req.Trials)
	if err != nil {
		return models.SimulationSummary{}, err
	}

	s, err := stats.Summarize(samples)
	if err != nil {
		return models.SimulationSummary{}, err
	}

	return models.SimulationSummary{
		AverageTime:       roundMinutes(s.Mean),
		MinTime:           roundMinutes(s.Min),
		MaxTime:           roundMinutes(s.Max),
		StandardDeviation: roundMinutes(s.StdDev),
		Confidence95: models.ConfidenceInterval{
			Min: roundMinutes(s.CI95Low),
			Max: roundMinutes(s.CI95High),
		},
		MedianTime:  roundMinutes(s.Median),
		P90Time:     roundMinutes(s.P90),
		Distance:    math.Round(plan.distanceKm*10) / 10,
		Simulations: req.Trials,
		Matrix:      plan.matrix.Name(),
		Bearing:     InitialBearing(req.Supplier, req.Destination),
		Midpoint:    Midpoint(req.Supplier, req.Destination),
	}, nil
}

// Simulate returns the raw trip times in minutes, one per trial.
func (e *Estimator) Simulate(ctx context.Context, req models.EstimateRequest) ([]float64, error) {
	plan, err := e.plan(req)
	if err != nil {
		return nil, err
	}
	return e.simulateTrips(ctx, plan, req.Trials)
}

func (e *Estimator) plan(req models.EstimateRequest) (*tripPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	matrix, err := e.Matrices.Select(e.Zones, req.Supplier, req.Destination, req.Hour, req.Season)
	if err != nil {
		return nil, err
	}

	plan := &tripPlan{
		distanceKm: HaversineDistance(req.Supplier, req.Destination) * e.Config.DetourFactor,
		segmentKm:  e.Config.SegmentLengthKm,
		hour:       req.Hour,
		season:     req.Season,
		matrix:     matrix,
	}
	e.logger.Debug().
		Str("matrix", matrix.Name()).
		Float64("distance_km", plan.distanceKm).
		Int("hour", req.Hour).
		Str("season", string(req.Season)).
		Int("trials", req.Trials).
		Msg("simulating trips")
	return plan, nil
}

// simulateTrips splits the trials into chunks, each with its own random
// stream seeded up front, so the samples do not depend on the worker count.
func (e *Estimator) simulateTrips(ctx context.Context, plan *tripPlan, trials int) ([]float64, error) {
	samples := make([]float64, trials)
	chunks := (trials + trialChunkSize - 1) / trialChunkSize
	seeds := e.drawSeeds(chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for c := 0; c < chunks; c++ {
		start := c * trialChunkSize
		end := min(start+trialChunkSize, trials)
		seed := seeds[c]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			for i := start; i < end; i++ {
				samples[i] = simulateTrip(rng, plan)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}

func (e *Estimator) drawSeeds(n int) []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = e.source.Int63()
	}
	return seeds
}

// simulateTrip drives one trip segment by segment and returns its duration in minutes.
func simulateTrip(rng RandomSource, plan *tripPlan) float64 {
	state := SampleInitialState(rng, plan.hour, plan.season)
	remaining := plan.distanceKm
	totalTime := 0.0

	for remaining > 0 {
		segment := math.Min(plan.segmentKm, remaining)
		totalTime += (segment / state.Speed()) * 60
		state = NextState(rng, state, plan.matrix)
		remaining -= segment
	}
	return totalTime
}

func roundMinutes(minutes float64) int {
	return int(math.Round(minutes))
}
