// Package instance parses a CC-LCS problem instance and builds the
// read-only tables that make feasibility testing and pruning of candidate
// extensions constant-time per beam-search node.
//
// An Instance bundles three string families:
//
//	S — input strings: the solution must be a subsequence of every S[i].
//	P — pattern strings: the solution must contain every P[j] as a subsequence.
//	R — anti-pattern strings: the solution must NOT contain any R[k] as a subsequence.
//
// All strings are encoded over a dense per-instance alphabet 0..Σ-1 assigned
// in first-seen order; the reverse mapping is retained only so solutions can
// be rendered back into human-readable characters.
//
// Three tables are built in one right-to-left scan each, giving every
// search node an O(m + p + r) feasibility check with no further searching:
//
//	SuffixCount[a][i][j] — occurrences of letter a in S[i][j:].
//	NextOcc[a][i][j]     — smallest k >= j with S[i][k] == a, or len(S[i]) if none.
//	PatEmbed[i][j][x]    — largest k such that P[j][x:] embeds into S[i][k:], or -1.
//
// Instance is immutable after construction: no exported method mutates it.
package instance
