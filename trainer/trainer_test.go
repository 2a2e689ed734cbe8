package trainer_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/rlcsbeam/instance"
	"github.com/katalvlaran/rlcsbeam/mlp"
	"github.com/katalvlaran/rlcsbeam/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, src string) *instance.Instance {
	t.Helper()
	inst, err := instance.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return inst
}

func baseOpts() trainer.Options {
	return trainer.Options{
		WeightLimit:                 1,
		TrainingBeamWidth:           4,
		TrainingBSTimeLimit:         200 * time.Millisecond,
		TrainingTimeLimit:           300 * time.Millisecond,
		FeatureConfiguration:        1,
		PopulationSize:              6,
		Elites:                      1,
		Mutants:                     1,
		EliteInheritanceProbability: 0.7,
		GAConfiguration:             trainer.RKGA,
		Parallel:                    false,
		Seed:                        42,
	}
}

func TestNewTrainer_ValidatesOptions(t *testing.T) {
	inst := parseFixture(t, "1 2 0 0\n4 aabb\n")
	opts := baseOpts()
	opts.PopulationSize = 0
	_, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst}, nil)
	assert.ErrorIs(t, err, trainer.ErrNonPositivePopulation)
}

func TestNewTrainer_RequiresTrainingInstances(t *testing.T) {
	opts := baseOpts()
	_, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, nil, nil)
	assert.ErrorIs(t, err, trainer.ErrNoTrainingInstances)
}

func TestTrain_ImprovesOrHoldsIncumbent(t *testing.T) {
	inst := parseFixture(t, "1 2 0 0\n4 aabb\n")
	opts := baseOpts()
	tr, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst}, []*instance.Instance{inst})
	require.NoError(t, err)

	res, err := tr.Train(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.BestFitness, 0.0)
	assert.NotEmpty(t, res.BestWeights)
	assert.NotEmpty(t, res.History)
	for _, cp := range res.History {
		assert.GreaterOrEqual(t, cp.Fitness, 0.0)
	}
}

// TestTrain_DeterministicUnderFixedSeed: identical
// instances, options, and seed with parallelism disabled reproduce the same
// best fitness, weights, and checkpoint history. Checkpoint.Elapsed is
// wall-clock time and is left out of the history comparison.
func TestTrain_DeterministicUnderFixedSeed(t *testing.T) {
	inst := parseFixture(t, "1 2 0 0\n4 aabb\n")
	opts := baseOpts()

	tr1, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst}, []*instance.Instance{inst})
	require.NoError(t, err)
	r1, err := tr1.Train(context.Background())
	require.NoError(t, err)

	tr2, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst}, []*instance.Instance{inst})
	require.NoError(t, err)
	r2, err := tr2.Train(context.Background())
	require.NoError(t, err)

	assert.Equal(t, r1.BestFitness, r2.BestFitness)
	if diff := cmp.Diff(r1.History, r2.History, cmpopts.IgnoreFields(trainer.Checkpoint{}, "Elapsed")); diff != "" {
		t.Errorf("Train history diverged under identical seed (-first +second):\n%s", diff)
	}
	assert.Equal(t, r1.BestWeights, r2.BestWeights)
}

func TestTrain_BRKGAConfiguration(t *testing.T) {
	inst := parseFixture(t, "2 3 1 0\n4 abca\n4 abca\n2 bc\n")
	opts := baseOpts()
	opts.GAConfiguration = trainer.BRKGA
	tr, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst}, nil)
	require.NoError(t, err)
	res, err := tr.Train(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.BestWeights)
}

func TestTrain_LexicaseConfiguration(t *testing.T) {
	inst1 := parseFixture(t, "1 2 0 0\n4 aabb\n")
	inst2 := parseFixture(t, "1 3 0 0\n4 abca\n")
	opts := baseOpts()
	opts.GAConfiguration = trainer.Lexicase
	opts.PopulationSize = 4
	opts.Elites = 1
	opts.Mutants = 1
	tr, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst1, inst2}, nil)
	require.NoError(t, err)
	res, err := tr.Train(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.BestWeights)
}

func TestTrain_OnImprovementCallbackFires(t *testing.T) {
	inst := parseFixture(t, "1 2 0 0\n4 aabb\n")
	opts := baseOpts()

	var calls int
	tr, err := trainer.NewTrainer(opts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst}, nil,
		trainer.WithOnImprovement(func(cp trainer.Checkpoint, w []float64) {
			calls++
			assert.NotEmpty(t, w)
		}))
	require.NoError(t, err)

	_, err = tr.Train(context.Background())
	require.NoError(t, err)
	assert.Positive(t, calls)
}

func TestTrain_ParallelMatchesSequentialMean(t *testing.T) {
	inst1 := parseFixture(t, "1 2 0 0\n4 aabb\n")
	inst2 := parseFixture(t, "1 3 0 0\n4 abca\n")

	seqOpts := baseOpts()
	seqOpts.PopulationSize = 4
	seqOpts.Elites = 1
	seqOpts.Mutants = 1
	parOpts := seqOpts
	parOpts.Parallel = true
	parOpts.NumThreads = 2

	trSeq, err := trainer.NewTrainer(seqOpts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst1, inst2}, nil)
	require.NoError(t, err)
	rSeq, err := trSeq.Train(context.Background())
	require.NoError(t, err)

	trPar, err := trainer.NewTrainer(parOpts, []int{9, 3, 1}, mlp.Identity, []*instance.Instance{inst1, inst2}, nil)
	require.NoError(t, err)
	rPar, err := trPar.Train(context.Background())
	require.NoError(t, err)

	assert.Equal(t, rSeq.BestFitness, rPar.BestFitness)
}
