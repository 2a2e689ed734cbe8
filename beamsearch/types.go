package beamsearch

import (
	"errors"
	"time"
)

// Sentinel errors for beam-search configuration.
var (
	// ErrNonPositiveBeamWidth indicates BeamWidth <= 0.
	ErrNonPositiveBeamWidth = errors.New("beamsearch: beam width must be positive")

	// ErrNonPositiveTimeLimit indicates TimeLimit <= 0.
	ErrNonPositiveTimeLimit = errors.New("beamsearch: time limit must be positive")

	// ErrFeatureDimensionMismatch indicates FeatureConfiguration does not
	// produce a feature count matching the scorer's input width.
	ErrFeatureDimensionMismatch = errors.New("beamsearch: scorer input width does not match feature configuration")
)

// Options configures one Run invocation.
type Options struct {
	// TimeLimit is the wall-clock budget t_lim for this search.
	TimeLimit time.Duration

	// BeamWidth is β, the number of survivors kept after each level's
	// truncation.
	BeamWidth int

	// FeatureConfiguration selects the cumulative feature-vector extension
	// set (1..4) a node's Features call produces.
	FeatureConfiguration int

	// Training, when true, suppresses solution reconstruction — Run returns
	// the objective value and elapsed time with a nil Solution.
	Training bool
}

// DefaultOptions returns deployment-time defaults: a 10 second budget, beam
// width 50, and feature configuration 1.
func DefaultOptions() Options {
	return Options{
		TimeLimit:            10 * time.Second,
		BeamWidth:            50,
		FeatureConfiguration: 1,
		Training:             false,
	}
}

// Validate checks that o holds a valid combination of fields.
func (o *Options) Validate() error {
	if o.BeamWidth <= 0 {
		return ErrNonPositiveBeamWidth
	}
	if o.TimeLimit <= 0 {
		return ErrNonPositiveTimeLimit
	}
	return nil
}

// Result is the outcome of one Run: the longest complete solution length
// found (l_best), the elapsed wall-clock time, and — unless
// Options.Training was set — the reconstructed solution.
type Result struct {
	BestLength int
	Solution   []int
	Elapsed    time.Duration
}
