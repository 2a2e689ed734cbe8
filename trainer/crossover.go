package trainer

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/rlcsbeam/instance"
)

// crossover builds one offspring's weight vector from the current,
// fitness-sorted population (descending, elites first), per the variant
// selected by opts.GAConfiguration.
func (tr *Trainer) crossover(ctx context.Context, population []Individual, rng *rand.Rand) []float64 {
	switch tr.opts.GAConfiguration {
	case BRKGA:
		return tr.crossoverBRKGA(population, rng)
	case Lexicase:
		return tr.crossoverLexicase(ctx, population, rng)
	default:
		return tr.crossoverRKGA(population, rng)
	}
}

// crossoverRKGA picks two distinct parents uniformly from the whole
// population and crosses with a 50/50 per-weight coin flip.
func (tr *Trainer) crossoverRKGA(population []Individual, rng *rand.Rand) []float64 {
	idx := permRange(len(population), rng)
	p1, p2 := population[idx[0]], population[idx[1]]

	child := make([]float64, len(p1.Weights))
	for j := range child {
		if rng.Float64() <= 0.5 {
			child[j] = p1.Weights[j]
		} else {
			child[j] = p2.Weights[j]
		}
	}
	return child
}

// crossoverBRKGA picks parent 1 uniformly from the top-E elites and parent 2
// uniformly from the remaining non-elites, biasing each weight toward the
// elite parent with probability EliteInheritanceProbability.
func (tr *Trainer) crossoverBRKGA(population []Individual, rng *rand.Rand) []float64 {
	e := tr.opts.Elites
	p1 := population[produceRandomInteger(e, rng.Float64())]
	p2 := population[e+produceRandomInteger(len(population)-e, rng.Float64())]

	rho := tr.opts.EliteInheritanceProbability
	child := make([]float64, len(p1.Weights))
	for j := range child {
		if rng.Float64() <= rho {
			child[j] = p1.Weights[j]
		} else {
			child[j] = p2.Weights[j]
		}
	}
	return child
}

// crossoverLexicase selects two parents by running the whole population
// against a randomly ordered instance sequence, narrowing the candidate set
// to whichever individuals tie for the maximum objective at each instance in
// turn, then picks uniformly among the final survivors. This is the
// quadratic (individual x instance) re-evaluation cost called out in
// DESIGN.md Open Question 2.
func (tr *Trainer) crossoverLexicase(ctx context.Context, population []Individual, rng *rand.Rand) []float64 {
	parents := make([]Individual, 0, 2)
	for k := 0; k < 2; k++ {
		order := permRange(len(tr.trainingInstances), rng)
		candidates := append([]Individual(nil), population...)

		for _, ii := range order {
			inst := tr.trainingInstances[ii]
			bestVal := 0.0
			var tied []Individual
			for _, ind := range candidates {
				val := tr.evaluateOne(ctx, inst, ind.Weights)
				if val >= bestVal {
					if val > bestVal {
						bestVal = val
						tied = tied[:0]
					}
					tied = append(tied, ind)
				}
			}
			candidates = tied
			if len(candidates) <= 1 {
				break
			}
		}

		sel := produceRandomInteger(len(candidates), rng.Float64())
		parents = append(parents, candidates[sel])
	}

	child := make([]float64, len(parents[0].Weights))
	for j := range child {
		if rng.Float64() <= 0.5 {
			child[j] = parents[0].Weights[j]
		} else {
			child[j] = parents[1].Weights[j]
		}
	}
	return child
}

// evaluateOne runs a single beam search with w loaded into a fresh scorer
// snapshot against inst, returning its objective value. Used by Lexicase
// selection, which needs per-instance values rather than the mean fitness
// evaluateAll computes.
func (tr *Trainer) evaluateOne(ctx context.Context, inst *instance.Instance, w []float64) float64 {
	scorer := tr.newScorer()
	if err := scorer.UnpackWeights(w); err != nil {
		return 0
	}
	return tr.runBS(ctx, inst, scorer)
}
