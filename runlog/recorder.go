package runlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/katalvlaran/rlcsbeam/trainer"
	"github.com/katalvlaran/rlcsbeam/weightsio"
)

// Recorder appends incumbent checkpoints to the training/validation value
// logs, writes each incumbent's weight vector to its own file, and announces
// improvements to a structured logger. The zero value is not usable;
// construct with NewRecorder.
type Recorder struct {
	dir    string
	runID  uuid.UUID
	train  *os.File
	valid  *os.File
	logger *slog.Logger
}

// NewRecorder creates (or truncates) training_values.txt and
// validation_values.txt under dir, writes their header rows, and returns a
// Recorder bound to runID. logger may be nil, in which case
// slog.Default() is used.
func NewRecorder(dir string, runID uuid.UUID, logger *slog.Logger) (*Recorder, error) {
	if logger == nil {
		logger = slog.Default()
	}

	train, err := os.Create(filepath.Join(dir, "training_values.txt"))
	if err != nil {
		return nil, fmt.Errorf("runlog: create training_values.txt: %w", err)
	}
	if _, err := fmt.Fprintln(train, "Time\tGenerations\tTraining value"); err != nil {
		train.Close()
		return nil, fmt.Errorf("runlog: write training_values.txt header: %w", err)
	}

	valid, err := os.Create(filepath.Join(dir, "validation_values.txt"))
	if err != nil {
		train.Close()
		return nil, fmt.Errorf("runlog: create validation_values.txt: %w", err)
	}
	if _, err := fmt.Fprintln(valid, "Time\tGenerations\tValidation value"); err != nil {
		train.Close()
		valid.Close()
		return nil, fmt.Errorf("runlog: write validation_values.txt header: %w", err)
	}

	return &Recorder{dir: dir, runID: runID, train: train, valid: valid, logger: logger}, nil
}

// RecordCheckpoint appends cp's row to both value logs, persists weights to
// weights_<runID>_<generation>.txt, and logs a console announcement
// (original_source/nnet.cpp's print_information).
func (r *Recorder) RecordCheckpoint(cp trainer.Checkpoint, weights []float64) error {
	elapsedSeconds := cp.Elapsed.Seconds()

	if _, err := fmt.Fprintf(r.train, "%.10f\t%d\t%.10f\n", elapsedSeconds, cp.Generation, cp.Fitness); err != nil {
		return fmt.Errorf("runlog: append training_values.txt: %w", err)
	}
	if _, err := fmt.Fprintf(r.valid, "%.10f\t%d\t%.10f\n", elapsedSeconds, cp.Generation, cp.ValidationValue); err != nil {
		return fmt.Errorf("runlog: append validation_values.txt: %w", err)
	}

	weightsPath := filepath.Join(r.dir, fmt.Sprintf("weights_%s_%d.txt", r.runID, cp.Generation))
	if err := weightsio.Write(weightsPath, weights); err != nil {
		return fmt.Errorf("runlog: persist incumbent weights: %w", err)
	}

	r.logger.Info("new incumbent",
		slog.Float64("best", cp.Fitness),
		slog.Float64("time", elapsedSeconds),
		slog.Int("generation", cp.Generation),
		slog.Float64("validation_value", cp.ValidationValue),
	)
	return nil
}

// Close flushes and closes both value-log files.
func (r *Recorder) Close() error {
	err1 := r.train.Close()
	err2 := r.valid.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
