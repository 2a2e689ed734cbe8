// Package beamsearch implements the level-synchronous beam search that
// solves one CC-LCS instance given a scorer.
//
// Run expands every node in the current beam, deduplicates children that
// reach the same (cursor_S, cursor_R) pair within a level (cursor_P is a
// deterministic function of the history that reaches that pair — see
// DESIGN.md Open Question 4 — so it is omitted from the key), computes and
// standardizes each surviving child's feature vector, scores it with the
// MLP, sorts the level by heuristic value descending, and truncates to beam
// width β. The loop stops when the beam empties or the time limit elapses.
package beamsearch
