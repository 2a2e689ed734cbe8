package weightsio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Read parses a flat whitespace-separated weight vector from path, in the
// layer-major order mlp.MLP.UnpackWeights expects.
func Read(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weightsio: open %q: %w", path, err)
	}
	defer f.Close()

	var weights []float64
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("weightsio: parse weight %q: %w", scanner.Text(), err)
		}
		weights = append(weights, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("weightsio: scan %q: %w", path, err)
	}
	return weights, nil
}

// Write writes w to path as space-separated reals on a single line,
// mirroring original_source/nnet.cpp's write_weights_to_file.
func Write(path string, w []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weightsio: create %q: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, v := range w {
		if _, err := fmt.Fprintf(bw, "%v ", v); err != nil {
			return fmt.Errorf("weightsio: write %q: %w", path, err)
		}
	}
	return bw.Flush()
}

// Solution is the rendered result of one solve-mode run, ready for
// WriteSolution.
type Solution struct {
	InstanceName string
	Objective    int
	Rendered     string
	Elapsed      time.Duration
	Feasible     bool
}

// WriteSolution writes sol in the five-line output format (instance name /
// Objective: / Solution: / Time: / Feasible:) to path, or to stdout when
// path is empty, grounded on
// original_source/src/beam_search.cpp's save_in_file.
func WriteSolution(path string, sol Solution) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("weightsio: create %q: %w", path, err)
		}
		defer f.Close()
		return writeSolution(f, sol)
	}
	return writeSolution(w, sol)
}

func writeSolution(w io.Writer, sol Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, sol.InstanceName)
	fmt.Fprintf(bw, "Objective: %d\n", sol.Objective)
	fmt.Fprintf(bw, "Solution: %s\n", sol.Rendered)
	fmt.Fprintf(bw, "Time: %s\n", strings.TrimSpace(sol.Elapsed.String()))
	fmt.Fprintf(bw, "Feasible: %t\n", sol.Feasible)
	return bw.Flush()
}
