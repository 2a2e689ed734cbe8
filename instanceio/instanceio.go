package instanceio

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/rlcsbeam/instance"
)

// ErrEmptyBasePathFile indicates instances_path.txt exists but contains no
// usable first line.
var ErrEmptyBasePathFile = errors.New("instanceio: base path file is empty")

// LoadBasePath reads the single base-path line from instances_path.txt
// (original_source/src/main.cpp's "instances_path.txt" convention).
func LoadBasePath(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("instanceio: open base path file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", ErrEmptyBasePathFile
	}
	return strings.TrimRight(scanner.Text(), "\r\n"), nil
}

// LoadFileList reads one relative instance filename per line from path
// (the training_instances.txt / validation_instances.txt format). Blank
// lines are skipped.
func LoadFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instanceio: open file list: %w", err)
	}
	defer f.Close()

	var files []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("instanceio: scan file list: %w", err)
	}
	return files, nil
}

// LoadInstances joins basePath with each of relFiles and parses every
// resulting path with instance.Load, in order.
func LoadInstances(basePath string, relFiles []string) ([]*instance.Instance, error) {
	insts := make([]*instance.Instance, 0, len(relFiles))
	for _, rel := range relFiles {
		inst, err := instance.Load(filepath.Join(basePath, rel))
		if err != nil {
			return nil, fmt.Errorf("instanceio: load %q: %w", rel, err)
		}
		insts = append(insts, inst)
	}
	return insts, nil
}
