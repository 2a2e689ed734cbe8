package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load opens path and parses it as a CC-LCS instance file.
// The cleaned base name (final path segment, extension stripped) becomes
// Instance.Name.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance.Load: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("instance.Load %s: %w", path, err)
	}
	inst.Name = cleanName(path)

	return inst, nil
}

// cleanName extracts the final path component up to (but not including) its
// first '.', mirroring the original implementation's "clean_file_name"
// extraction (original_source/src/beam_search.cpp, save_in_file).
func cleanName(path string) string {
	base := path
	if i := strings.LastIndexAny(path, "/\\"); i >= 0 {
		base = path[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// Parse reads a CC-LCS instance in the following text format:
//
//	line 1:            "m Sigma p r"
//	lines 2..m+p+r+1:   "length string", first m are S, next p are P, last r are R.
//
// The alphabet is the set of distinct runes appearing in any string, encoded
// in first-seen order. Parse builds the full preprocessing tables before
// returning; the returned Instance is immutable.
func Parse(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, ErrMalformedHeader
	}
	m, sigma, p, rr, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	total := m + p + rr
	strs := make([]string, 0, total)
	charToInt := make(map[rune]int)
	var nextCode int

	for len(strs) < total {
		if !sc.Scan() {
			return nil, ErrTooFewLines
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		length, s, err := parseStringLine(line)
		if err != nil {
			return nil, err
		}
		if length != len([]rune(s)) {
			return nil, ErrLengthMismatch
		}
		for _, c := range s {
			if _, ok := charToInt[c]; !ok {
				charToInt[c] = nextCode
				nextCode++
			}
		}
		strs = append(strs, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: scanning input: %w", err)
	}

	intToChar := make(map[int]rune, len(charToInt))
	for c, v := range charToInt {
		intToChar[v] = c
	}

	encode := func(s string) []int {
		out := make([]int, 0, len(s))
		for _, c := range s {
			out = append(out, charToInt[c])
		}
		return out
	}

	inst := &Instance{
		M:         m,
		Sigma:     sigma,
		P:         p,
		R:         rr,
		CharToInt: charToInt,
		IntToChar: intToChar,
	}
	inst.S = make([][]int, m)
	for i := 0; i < m; i++ {
		inst.S[i] = encode(strs[i])
	}
	inst.Pat = make([][]int, p)
	for j := 0; j < p; j++ {
		inst.Pat[j] = encode(strs[m+j])
	}
	inst.Anti = make([][]int, rr)
	for k := 0; k < rr; k++ {
		anti := encode(strs[m+p+k])
		if len(anti) == 0 {
			return nil, ErrEmptyAntiPattern
		}
		inst.Anti[k] = anti
	}

	fillTables(inst)

	return inst, nil
}

func parseHeader(line string) (m, sigma, p, r int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, 0, 0, ErrMalformedHeader
	}
	vals := make([]int, 4)
	for i, f := range fields {
		v, convErr := strconv.Atoi(f)
		if convErr != nil || v < 0 {
			return 0, 0, 0, 0, ErrMalformedHeader
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

func parseStringLine(line string) (length int, s string, err error) {
	fields := strings.Fields(line)
	if len(fields) != 1 && len(fields) != 2 {
		return 0, "", ErrMalformedLine
	}
	length, convErr := strconv.Atoi(fields[0])
	if convErr != nil || length < 0 {
		return 0, "", ErrMalformedLine
	}
	if len(fields) == 1 {
		// A lone length token denotes the empty string; a non-zero length
		// then fails the caller's length check.
		return length, "", nil
	}
	return length, fields[1], nil
}
