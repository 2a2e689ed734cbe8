// Package runlog persists and announces a training run's incumbent
// history: the training_values.txt / validation_values.txt tab-separated
// appenders, the weights_<runID>_<gen>.txt per-incumbent writer, and a
// slog-based console announcement, mirroring
// original_source/nnet.cpp's write_training_and_validation_values and
// print_information.
package runlog
