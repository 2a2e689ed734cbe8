package beamsearch

import (
	"context"
	"sort"
	"time"

	"github.com/katalvlaran/rlcsbeam/instance"
	"github.com/katalvlaran/rlcsbeam/mlp"
	"github.com/katalvlaran/rlcsbeam/node"
)

// Run performs one level-synchronous beam search over inst, guided by
// scorer, per opts. The context may carry an additional caller-side
// deadline/cancellation on top of opts.TimeLimit; whichever fires first ends
// the loop — both are checked at the same cooperative polling point, after
// each beam level.
func Run(ctx context.Context, inst *instance.Instance, scorer *mlp.MLP, opts Options) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if scorer.UnitsPerLayer[0] != node.FeatureCount(opts.FeatureConfiguration) {
		return Result{}, ErrFeatureDimensionMismatch
	}

	arena, root := node.NewArena(inst)

	beam := []node.ID{root}
	bestNode := root
	lBest := 0

	start := time.Now()

	for len(beam) > 0 {
		seen := make(map[string]struct{})
		var level []node.ID

		for _, n := range beam {
			children := arena.Expand(n)
			if len(children) == 0 && arena.Get(n).Depth > lBest && arena.IsComplete(n) {
				lBest = arena.Get(n).Depth
				bestNode = n
			}
			for _, c := range children {
				cn := arena.Get(c)
				key := dedupKey(cn.CursorS, cn.CursorR)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				level = append(level, c)
			}
		}

		for _, c := range level {
			features := arena.Features(c, opts.FeatureConfiguration)
			hv, err := scorer.Forward(features)
			if err != nil {
				return Result{}, err
			}
			arena.Get(c).HeuristicValue = hv
		}

		sort.SliceStable(level, func(i, j int) bool {
			return arena.Get(level[i]).HeuristicValue > arena.Get(level[j]).HeuristicValue
		})

		if len(level) > opts.BeamWidth {
			level = level[:opts.BeamWidth]
		}
		beam = level

		elapsed := time.Since(start)
		if elapsed >= opts.TimeLimit {
			break
		}
		select {
		case <-ctx.Done():
			beam = nil
		default:
		}
	}

	result := Result{
		BestLength: lBest,
		Elapsed:    time.Since(start),
	}
	if !opts.Training {
		result.Solution = arena.Reconstruct(bestNode)
	}
	return result, nil
}
