package config

import (
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors for configuration loading and validation.
var (
	// ErrMissingArchitecture indicates a negative HiddenLayers count. Zero
	// hidden layers is accepted.
	ErrMissingArchitecture = errors.New("config: neural network architecture not properly defined")

	// ErrUnitsCountMismatch indicates len(Units) != HiddenLayers.
	ErrUnitsCountMismatch = errors.New("config: units count does not match hidden_layers")

	// ErrMissingInputOrTraining indicates neither an input instance (-i)
	// nor training mode was selected.
	ErrMissingInputOrTraining = errors.New("config: either -i (solve mode) or training mode must be selected")
)

// Config holds every solve/train knob the command line and an optional YAML
// overlay can set, populated by Parse and optionally overlaid from a YAML
// file via LoadFile.
type Config struct {
	// Solve-mode fields.
	InputFile   string `yaml:"input_file"`
	OutputFile  string `yaml:"output_file"`
	WeightsFile string `yaml:"weights_file"`

	// Training-mode fields.
	InstancesPathFile       string `yaml:"instances_path_file"`
	TrainingInstancesFile   string `yaml:"training_instances_file"`
	ValidationInstancesFile string `yaml:"validation_instances_file"`

	// Shared architecture/search knobs.
	WeightLimit          float64       `yaml:"weight_limit"`
	TrainingBeamWidth    int           `yaml:"training_beam_width"`
	TrainingTimeLimit    time.Duration `yaml:"training_time_limit"`
	HiddenLayers         int           `yaml:"hidden_layers"`
	Units                []int         `yaml:"units"`
	TimeLimit            time.Duration `yaml:"time_limit"`
	BeamWidth            int           `yaml:"beam_width"`
	ActivationFunction   int           `yaml:"activation_function"`
	FeatureConfiguration int           `yaml:"feature_configuration"`

	// Trainer-only knobs.
	GAConfiguration             int     `yaml:"ga_configuration"`
	PopulationSize              int     `yaml:"population_size"`
	NElites                     int     `yaml:"n_elites"`
	NMutants                    int     `yaml:"n_mutants"`
	EliteInheritanceProbability float64 `yaml:"elite_inheritance_probability"`

	// Concurrency knobs.
	Parallel   bool `yaml:"parallel"`
	NumThreads int  `yaml:"num_threads"`
}

// Training reports whether this configuration selects training mode
// (original_source/src/main.cpp: "training" starts true, flipped to false
// by -i).
func (c *Config) Training() bool { return c.InputFile == "" }

// FeatureCount maps FeatureConfiguration onto its feature-vector width. An
// out-of-range value (including the zero value) defaults to configuration 1.
func (c *Config) FeatureCount() int {
	switch c.FeatureConfiguration {
	case 2:
		return 10
	case 3:
		return 12
	case 4:
		return 14
	default:
		return 9
	}
}

// Validate checks the subset of invariants original_source/src/main.cpp's
// set_up_neural_network enforces as fatal (as opposed to merely warned).
func (c *Config) Validate() error {
	if c.HiddenLayers < 0 {
		return ErrMissingArchitecture
	}
	if len(c.Units) != c.HiddenLayers {
		return ErrUnitsCountMismatch
	}
	return nil
}

// UnitsPerLayer returns the full layer-width slice (input, hidden..., 1)
// given an input width (the feature count for the selected
// FeatureConfiguration).
func (c *Config) UnitsPerLayer(inputWidth int) []int {
	layers := make([]int, 0, len(c.Units)+2)
	layers = append(layers, inputWidth)
	layers = append(layers, c.Units...)
	layers = append(layers, 1)
	return layers
}

// WarnDefaults logs the same three std::cerr warnings
// original_source/src/main.cpp's set_up_neural_network prints for
// not-fully-specified knobs, and applies the defaults it falls back to
// (weight limit 1, GA configuration 1/RKGA). ActivationFunction is left
// untouched — an out-of-range value already behaves as identity in
// mlp.MLP.Forward, so there is nothing to default, only to warn about.
func (c *Config) WarnDefaults(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if c.ActivationFunction < 1 || c.ActivationFunction > 3 {
		logger.Warn("no activation function set, use -activation_function {1: tanh, 2: relu, 3: sigmoid}")
	}
	if c.GAConfiguration < 1 || c.GAConfiguration > 3 {
		logger.Warn("ga configuration not specified, defaulting to 1 (rkga)")
		c.GAConfiguration = 1
	}
	if c.WeightLimit == 0 {
		logger.Warn("weight limit not set, defaulting to 1")
		c.WeightLimit = 1
	}
}
