package runlog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/rlcsbeam/runlog"
	"github.com/katalvlaran/rlcsbeam/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCheckpoint_WritesAllThreeArtifacts(t *testing.T) {
	dir := t.TempDir()
	runID := uuid.New()

	rec, err := runlog.NewRecorder(dir, runID, nil)
	require.NoError(t, err)

	cp := trainer.Checkpoint{
		Elapsed:         1500 * time.Millisecond,
		Generation:      3,
		Fitness:         4.0,
		ValidationValue: 3.5,
	}
	require.NoError(t, rec.RecordCheckpoint(cp, []float64{0.1, 0.2, 0.3}))
	require.NoError(t, rec.Close())

	trainData, err := os.ReadFile(filepath.Join(dir, "training_values.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(trainData), "Training value")
	assert.Contains(t, string(trainData), "3")

	validData, err := os.ReadFile(filepath.Join(dir, "validation_values.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(validData), "Validation value")

	weightsPath := filepath.Join(dir, "weights_"+runID.String()+"_3.txt")
	_, err = os.Stat(weightsPath)
	assert.NoError(t, err)
}

func TestNewRecorder_FailsOnUnwritableDir(t *testing.T) {
	_, err := runlog.NewRecorder(filepath.Join(t.TempDir(), "does-not-exist"), uuid.New(), nil)
	assert.Error(t, err)
}
