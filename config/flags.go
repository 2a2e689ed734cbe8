package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Parse builds a Config from args (normally os.Args[1:]), matching
// original_source/src/main.cpp's read_parameters flag-for-flag:
//
//	-i, -o, -weights_file, -instances_path_file, -training_instances_file,
//	-validation_instances_file, -weight_limit, -training_beam_width,
//	-training_time_limit, -hidden_layers, -units, -time_limit, -beam_width,
//	-activation_function, -feature_configuration, -ga_configuration,
//	-population_size, -n_elites, -n_mutants, -rho, -parallel, -num_threads.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("rlcsbeam", pflag.ContinueOnError)

	cfg := &Config{}

	fs.StringVar(&cfg.InputFile, "i", "", "solve a single instance file (disables training mode)")
	fs.StringVar(&cfg.OutputFile, "o", "", "solve-mode output file (stdout if empty)")
	fs.StringVar(&cfg.WeightsFile, "weights_file", "weights.txt", "solve-mode scorer weights file")
	fs.StringVar(&cfg.InstancesPathFile, "instances_path_file", "instances_path.txt", "training-mode base path file")
	fs.StringVar(&cfg.TrainingInstancesFile, "training_instances_file", "training_instances.txt", "training-mode instance manifest")
	fs.StringVar(&cfg.ValidationInstancesFile, "validation_instances_file", "validation_instances.txt", "training-mode validation manifest")

	fs.Float64Var(&cfg.WeightLimit, "weight_limit", 1, "half-range of uniform weight init")
	fs.IntVar(&cfg.TrainingBeamWidth, "training_beam_width", 10, "beam width during training fitness evaluation")

	var trainingTimeLimitSeconds float64
	fs.Float64Var(&trainingTimeLimitSeconds, "training_time_limit", 60, "trainer wall clock, in seconds")

	fs.IntVar(&cfg.HiddenLayers, "hidden_layers", 0, "number of hidden layers")
	units := fs.IntSlice("units", nil, "hidden layer widths, one per -hidden_layers")

	var timeLimitSeconds float64
	fs.Float64Var(&timeLimitSeconds, "time_limit", 10, "per-search wall clock, in seconds")

	fs.IntVar(&cfg.BeamWidth, "beam_width", 50, "beam width")
	fs.IntVar(&cfg.ActivationFunction, "activation_function", 0, "1 tanh, 2 relu, 3 sigmoid (0: identity, logged as a warning)")
	fs.IntVar(&cfg.FeatureConfiguration, "feature_configuration", 1, "feature set, 1..4")
	fs.IntVar(&cfg.GAConfiguration, "ga_configuration", 1, "1 RKGA, 2 BRKGA, 3 Lexicase")
	fs.IntVar(&cfg.PopulationSize, "population_size", 0, "evolutionary population size")
	fs.IntVar(&cfg.NElites, "n_elites", 0, "elites carried unchanged per generation")
	fs.IntVar(&cfg.NMutants, "n_mutants", 0, "freshly sampled individuals per generation")
	fs.Float64Var(&cfg.EliteInheritanceProbability, "rho", 0.7, "BRKGA elite-parent inheritance probability")
	fs.BoolVar(&cfg.Parallel, "parallel", false, "evaluate training/validation instances concurrently")
	fs.IntVar(&cfg.NumThreads, "num_threads", 0, "worker pool size when -parallel is set (0: one worker per training instance)")

	// pflag reads "-name" as a cluster of one-letter shorthands, so each
	// single-dash flag is rewritten to its "--name" form first. Tokens such
	// as "-1" or "-.5" are values, not flags, and are left as they are.
	normalized := make([]string, len(args))
	for i, a := range args {
		if len(a) > 1 && a[0] == '-' && a[1] != '-' && (a[1] < '0' || a[1] > '9') && a[1] != '.' {
			a = "-" + a
		}
		normalized[i] = a
	}

	if err := fs.Parse(normalized); err != nil {
		return nil, err
	}

	cfg.Units = *units
	cfg.TrainingTimeLimit = time.Duration(trainingTimeLimitSeconds * float64(time.Second))
	cfg.TimeLimit = time.Duration(timeLimitSeconds * float64(time.Second))

	return cfg, nil
}
