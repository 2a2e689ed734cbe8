package beamsearch

import "github.com/katalvlaran/rlcsbeam/instance"

// Validate performs a redundant, independent post-hoc check of sol against
// inst's constraints: sol must be a subsequence of every S-string, must
// contain every P-string as a subsequence, and must not contain any
// R-string as a subsequence. A false result indicates a bug in Run's
// pruning, not an expected runtime condition. Grounded on
// original_source/src/beam_search.cpp's validate_solution. An empty sol is
// never feasible, matching the original's early return.
func Validate(inst *instance.Instance, sol []int) bool {
	if len(sol) == 0 {
		return false
	}

	for i := 0; i < inst.M; i++ {
		if !isSubsequenceOf(sol, inst.S[i]) {
			return false
		}
	}
	for j := 0; j < inst.P; j++ {
		if !isSubsequenceOf(inst.Pat[j], sol) {
			return false
		}
	}
	for k := 0; k < inst.R; k++ {
		if isSubsequenceOf(inst.Anti[k], sol) {
			return false
		}
	}
	return true
}

// isSubsequenceOf reports whether needle occurs as a subsequence of hay.
func isSubsequenceOf(needle, hay []int) bool {
	i := 0
	for _, v := range hay {
		if i < len(needle) && needle[i] == v {
			i++
		}
	}
	return i == len(needle)
}
