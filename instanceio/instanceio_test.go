package instanceio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rlcsbeam/instanceio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBasePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instances_path.txt")
	require.NoError(t, os.WriteFile(path, []byte("instances/\n"), 0o644))

	base, err := instanceio.LoadBasePath(path)
	require.NoError(t, err)
	assert.Equal(t, "instances/", base)
}

func TestLoadBasePath_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instances_path.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	_, err := instanceio.LoadBasePath(path)
	assert.ErrorIs(t, err, instanceio.ErrEmptyBasePathFile)
}

func TestLoadFileList_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "training_instances.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.txt\n\nb.txt\n"), 0o644))

	files, err := instanceio.LoadFileList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, files)
}

func TestLoadInstances(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1 2 0 0\n4 aabb\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("1 3 0 0\n4 abca\n"), 0o644))

	insts, err := instanceio.LoadInstances(dir, []string{"a.txt", "b.txt"})
	require.NoError(t, err)
	require.Len(t, insts, 2)
	assert.Equal(t, 2, insts[0].Sigma)
	assert.Equal(t, 3, insts[1].Sigma)
}

func TestLoadInstances_PropagatesError(t *testing.T) {
	dir := t.TempDir()
	_, err := instanceio.LoadInstances(dir, []string{"missing.txt"})
	assert.Error(t, err)
}
