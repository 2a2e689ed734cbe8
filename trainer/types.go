package trainer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// GAKind selects the crossover variant used to build offspring.
type GAKind int

const (
	// RKGA picks two parents uniformly from the whole population and
	// crosses them with a uniform 50/50 per-weight coin flip.
	RKGA GAKind = 1
	// BRKGA biases one parent toward the elite slice via
	// Options.EliteInheritanceProbability.
	BRKGA GAKind = 2
	// Lexicase selects each parent by running the full population against
	// a randomly ordered instance sequence, narrowing to ties at each step.
	Lexicase GAKind = 3
)

// Sentinel errors for trainer configuration.
var (
	// ErrNonPositivePopulation indicates PopulationSize <= 0.
	ErrNonPositivePopulation = errors.New("trainer: population size must be positive")

	// ErrInvalidEliteMutantSplit indicates Elites+Mutants >= PopulationSize,
	// leaving no room for offspring.
	ErrInvalidEliteMutantSplit = errors.New("trainer: elites plus mutants must be smaller than the population size")

	// ErrNonPositiveWeightLimit indicates WeightLimit <= 0.
	ErrNonPositiveWeightLimit = errors.New("trainer: weight limit must be positive")

	// ErrNonPositiveTrainingTimeLimit indicates TrainingTimeLimit <= 0.
	ErrNonPositiveTrainingTimeLimit = errors.New("trainer: training time limit must be positive")

	// ErrNoTrainingInstances indicates an empty training instance set.
	ErrNoTrainingInstances = errors.New("trainer: at least one training instance is required")

	// ErrUnknownGAKind indicates an out-of-range GAConfiguration value.
	ErrUnknownGAKind = errors.New("trainer: unrecognized ga_configuration")
)

// Individual is one candidate scorer in the population: a flat weight
// vector and its cached fitness (objective function value).
type Individual struct {
	Weights []float64
	OFV     float64
}

// Options configures one Train invocation.
type Options struct {
	// WeightLimit bounds uniform weight initialization to
	// [-WeightLimit, +WeightLimit].
	WeightLimit float64

	// TrainingBeamWidth is beta used while evaluating fitness.
	TrainingBeamWidth int

	// TrainingBSTimeLimit bounds each individual fitness-evaluation BS call.
	TrainingBSTimeLimit time.Duration

	// TrainingTimeLimit is the trainer's overall wall-clock budget.
	TrainingTimeLimit time.Duration

	// FeatureConfiguration selects the beamsearch feature set (1..4).
	FeatureConfiguration int

	// PopulationSize is N.
	PopulationSize int

	// Elites is E, the number of top individuals carried unchanged.
	Elites int

	// Mutants is M, the number of freshly sampled individuals per
	// generation.
	Mutants int

	// EliteInheritanceProbability is rho, BRKGA's per-weight bias toward
	// the elite parent.
	EliteInheritanceProbability float64

	// GAConfiguration selects the crossover variant.
	GAConfiguration GAKind

	// Parallel enables the per-individual instance worker pool. When
	// false, fitness evaluation runs on the calling goroutine only,
	// which is what makes Train reproducible under a fixed seed.
	Parallel bool

	// NumThreads bounds worker pool size when Parallel is true. Zero
	// means runtime.GOMAXPROCS(0).
	NumThreads int

	// Seed seeds the main-goroutine RNG that drives initialization,
	// selection, and crossover.
	Seed int64
}

// Validate checks that o holds a valid combination of fields.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return ErrNonPositivePopulation
	}
	if o.Elites+o.Mutants >= o.PopulationSize {
		return ErrInvalidEliteMutantSplit
	}
	if o.WeightLimit <= 0 {
		return ErrNonPositiveWeightLimit
	}
	if o.TrainingTimeLimit <= 0 {
		return ErrNonPositiveTrainingTimeLimit
	}
	switch o.GAConfiguration {
	case RKGA, BRKGA, Lexicase:
	default:
		return ErrUnknownGAKind
	}
	return nil
}

// Checkpoint is one incumbent improvement record: elapsed time, generation
// index, the new best fitness, and its mean validation value.
type Checkpoint struct {
	Elapsed         time.Duration
	Generation      int
	Fitness         float64
	ValidationValue float64
}

// Result is the outcome of one Train call.
type Result struct {
	RunID       uuid.UUID
	BestWeights []float64
	BestFitness float64
	History     []Checkpoint
}
