// Package config collects solve- and train-mode knobs into a Config,
// populated from command-line flags (github.com/spf13/pflag) and
// optionally overlaid from a YAML file, mirroring
// original_source/src/main.cpp's read_parameters / set_up_neural_network.
package config
