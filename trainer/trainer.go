package trainer

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/rlcsbeam/beamsearch"
	"github.com/katalvlaran/rlcsbeam/instance"
	"github.com/katalvlaran/rlcsbeam/mlp"
	"github.com/katalvlaran/rlcsbeam/node"
)

// Trainer owns one training run's configuration, instance sets, and RNG.
// Construct with NewTrainer; the zero value is not usable.
type Trainer struct {
	opts Options

	trainingInstances   []*instance.Instance
	validationInstances []*instance.Instance

	unitsPerLayer []int
	activation    mlp.Activation

	rng *rand.Rand

	runID uuid.UUID

	onImprovement func(Checkpoint, []float64)
}

// TrainerOption configures a Trainer at construction time.
type TrainerOption func(*Trainer)

// WithOnImprovement registers a callback invoked whenever the incumbent
// strictly improves. fn receives the
// checkpoint and the improving weight vector, in that order; it runs on the
// main goroutine right after the evaluation that produced the improvement,
// never concurrently with itself.
func WithOnImprovement(fn func(Checkpoint, []float64)) TrainerOption {
	return func(tr *Trainer) { tr.onImprovement = fn }
}

// WithRunID overrides the trainer's auto-generated run ID. Useful when a
// caller needs to bind external artifacts (a log recorder, a weights
// directory) to the same ID before Train starts.
func WithRunID(id uuid.UUID) TrainerOption {
	return func(tr *Trainer) { tr.runID = id }
}

// NewTrainer builds a Trainer from opts, a full input-hidden-output unit layout
// (unitsPerLayer[0] must equal node.FeatureCount(opts.FeatureConfiguration),
// checked here, and unitsPerLayer[len-1] must be 1, enforced by mlp.New), an activation
// kind, and the training/validation instance sets.
func NewTrainer(opts Options, unitsPerLayer []int, activation mlp.Activation, trainingInstances, validationInstances []*instance.Instance, runOpts ...TrainerOption) (*Trainer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(trainingInstances) == 0 {
		return nil, ErrNoTrainingInstances
	}
	if _, err := mlp.New(unitsPerLayer, activation); err != nil {
		return nil, err
	}
	if unitsPerLayer[0] != node.FeatureCount(opts.FeatureConfiguration) {
		return nil, beamsearch.ErrFeatureDimensionMismatch
	}

	tr := &Trainer{
		opts:                opts,
		trainingInstances:   trainingInstances,
		validationInstances: validationInstances,
		unitsPerLayer:       append([]int(nil), unitsPerLayer...),
		activation:          activation,
		rng:                 rngFromSeed(opts.Seed),
		runID:               uuid.New(),
	}
	for _, o := range runOpts {
		o(tr)
	}
	return tr, nil
}

// RunID returns the UUID assigned to this trainer at construction, used to
// namespace incumbent weight files (weights_<runID>_<gen>.txt — see
// DESIGN.md Open Question 5).
func (tr *Trainer) RunID() uuid.UUID { return tr.runID }

// Train runs the generational loop until ctx is cancelled or
// Options.TrainingTimeLimit elapses. The outer loop is strictly sequential;
// only per-individual fitness evaluation parallelizes.
func (tr *Trainer) Train(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	nWeights := mlp.NumWeights(tr.unitsPerLayer)
	start := time.Now()

	population := make([]Individual, tr.opts.PopulationSize)
	result := Result{RunID: tr.runID, BestFitness: -1}
	haveBest := false

	stop := false
	generation := 0

	sampleWeights := func() []float64 {
		w := make([]float64, nWeights)
		for i := range w {
			w[i] = (tr.rng.Float64()*2 - 1) * tr.opts.WeightLimit
		}
		return w
	}

	considerIncumbent := func(ind Individual) {
		if haveBest && ind.OFV <= result.BestFitness {
			return
		}
		haveBest = true
		result.BestFitness = ind.OFV
		result.BestWeights = append([]float64(nil), ind.Weights...)

		cp := Checkpoint{
			Elapsed:         time.Since(start),
			Generation:      generation,
			Fitness:         ind.OFV,
			ValidationValue: tr.evaluateAll(ctx, ind.Weights, tr.validationInstances),
		}
		result.History = append(result.History, cp)
		if tr.onImprovement != nil {
			tr.onImprovement(cp, result.BestWeights)
		}
	}

	// initialize population
	for pi := 0; pi < tr.opts.PopulationSize && !stop; pi++ {
		w := sampleWeights()
		ofv := tr.evaluateAll(ctx, w, tr.trainingInstances)
		population[pi] = Individual{Weights: w, OFV: ofv}
		considerIncumbent(population[pi])

		if time.Since(start) > tr.opts.TrainingTimeLimit {
			stop = true
		}
		select {
		case <-ctx.Done():
			stop = true
		default:
		}
	}

	nOffspring := tr.opts.PopulationSize - tr.opts.Elites - tr.opts.Mutants

	for !stop {
		sort.SliceStable(population, func(i, j int) bool {
			return population[i].OFV > population[j].OFV
		})

		next := make([]Individual, tr.opts.PopulationSize)
		copy(next[:tr.opts.Elites], population[:tr.opts.Elites])

		for i := 0; i < tr.opts.Mutants && !stop; i++ {
			w := sampleWeights()
			ofv := tr.evaluateAll(ctx, w, tr.trainingInstances)
			next[tr.opts.Elites+i] = Individual{Weights: w, OFV: ofv}
			considerIncumbent(next[tr.opts.Elites+i])

			if time.Since(start) > tr.opts.TrainingTimeLimit {
				stop = true
			}
		}

		for i := 0; i < nOffspring && !stop; i++ {
			w := tr.crossover(ctx, population, tr.rng)
			ofv := tr.evaluateAll(ctx, w, tr.trainingInstances)
			child := Individual{Weights: w, OFV: ofv}
			next[tr.opts.Elites+tr.opts.Mutants+i] = child
			considerIncumbent(child)

			if time.Since(start) > tr.opts.TrainingTimeLimit {
				stop = true
			}
		}

		population = next
		generation++

		if time.Since(start) > tr.opts.TrainingTimeLimit {
			stop = true
		}
		select {
		case <-ctx.Done():
			stop = true
		default:
		}
	}

	return result, nil
}
