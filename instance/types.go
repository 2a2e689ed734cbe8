package instance

// Instance is an immutable, fully preprocessed CC-LCS problem instance.
//
// Name is an opaque label (typically a cleaned file name) carried through to
// the output writer; it plays no role in solving.
type Instance struct {
	Name string

	M, Sigma, P, R int

	S [][]int // input strings
	Pat [][]int // pattern strings
	Anti [][]int // anti-pattern strings

	CharToInt map[rune]int
	IntToChar map[int]rune

	// SuffixCount[a][i][j] = occurrences of letter a in S[i][j:].
	SuffixCount [][][]int
	// NextOcc[a][i][j] = smallest k>=j with S[i][k]==a, else len(S[i]).
	NextOcc [][][]int
	// PatEmbed[i][j][x] = largest k such that Pat[j][x:] embeds into S[i][k:], else -1.
	PatEmbed [][][]int
}

// NumInputs returns the number of S-strings.
func (inst *Instance) NumInputs() int { return inst.M }

// NumPatterns returns the number of P-strings.
func (inst *Instance) NumPatterns() int { return inst.P }

// NumAntiPatterns returns the number of R-strings.
func (inst *Instance) NumAntiPatterns() int { return inst.R }

// Render converts an encoded letter sequence back into its original
// characters, using the instance's reverse alphabet map. Unknown letters are
// rendered as the Unicode replacement character.
func (inst *Instance) Render(seq []int) string {
	out := make([]rune, 0, len(seq))
	for _, l := range seq {
		c, ok := inst.IntToChar[l]
		if !ok {
			c = '�'
		}
		out = append(out, c)
	}
	return string(out)
}
