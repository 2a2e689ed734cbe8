package trainer

import (
	"context"
	"runtime"
	"sync"

	"github.com/katalvlaran/rlcsbeam/beamsearch"
	"github.com/katalvlaran/rlcsbeam/instance"
	"github.com/katalvlaran/rlcsbeam/mlp"
)

// newScorer builds a fresh, zero-weight MLP matching tr.unitsPerLayer and
// tr.activation, ready for UnpackWeights.
func (tr *Trainer) newScorer() *mlp.MLP {
	net, err := mlp.New(tr.unitsPerLayer, tr.activation)
	if err != nil {
		// tr.unitsPerLayer was already validated by NewTrainer; a failure
		// here means that invariant was violated after construction.
		panic(err)
	}
	return net
}

// runBS runs one beam search with scorer against inst in training mode,
// returning its objective value (reconstructed length discarded).
func (tr *Trainer) runBS(ctx context.Context, inst *instance.Instance, scorer *mlp.MLP) float64 {
	opts := beamsearch.DefaultOptions()
	opts.TimeLimit = tr.opts.TrainingBSTimeLimit
	opts.BeamWidth = tr.opts.TrainingBeamWidth
	opts.FeatureConfiguration = tr.opts.FeatureConfiguration
	opts.Training = true

	res, err := beamsearch.Run(ctx, inst, scorer, opts)
	if err != nil {
		return 0
	}
	return float64(res.BestLength)
}

// evaluateAll loads w into a scorer and computes the mean BS objective over
// instances, in parallel when tr.opts.Parallel is set. Each worker evaluates
// on its own scorer clone so the read-only weight matrices never cross
// goroutines as mutable state.
func (tr *Trainer) evaluateAll(ctx context.Context, w []float64, instances []*instance.Instance) float64 {
	if len(instances) == 0 {
		return 0
	}

	base := tr.newScorer()
	if err := base.UnpackWeights(w); err != nil {
		return 0
	}

	if !tr.opts.Parallel {
		sum := 0.0
		for _, inst := range instances {
			sum += tr.runBS(ctx, inst, base)
		}
		return sum / float64(len(instances))
	}

	workers := tr.opts.NumThreads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(instances) {
		workers = len(instances)
	}

	jobs := make(chan *instance.Instance)
	var wg sync.WaitGroup
	var mu sync.Mutex
	sum := 0.0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scorer := base.Clone()
			local := 0.0
			for inst := range jobs {
				local += tr.runBS(ctx, inst, scorer)
			}
			mu.Lock()
			sum += local
			mu.Unlock()
		}()
	}
	for _, inst := range instances {
		jobs <- inst
	}
	close(jobs)
	wg.Wait()

	return sum / float64(len(instances))
}
