// SPDX-License-Identifier: MIT
//
// Package node implements the CC-LCS beam-search state and its expansion
// rule.
//
// A Node is a cursor triple (CursorS, CursorP, CursorR) summarising how much
// of each input string, pattern string, and anti-pattern string has been
// consumed by the partial solution reaching that node, plus a parent link,
// a depth, and (once scored) a feature vector and heuristic value.
//
// Nodes are never allocated individually. Every node created by one
// beamsearch.Run call lives in that call's Arena, addressed by a small
// integer ID instead of a pointer — this avoids a garbage-collected pointer
// web for what is, per search, potentially millions of short-lived
// records, and lets the whole arena be dropped in one step when the search
// ends.
//
// Expand applies four pruning stages in order:
//
//	Stage 1 — availability: a letter must be extractable from every S[i]'s remaining suffix.
//	Stage 2 — cursor-triple computation for each surviving letter.
//	Stage 3 — pattern-reachability: the remaining pattern suffix must still embed in every S[i].
//	Stage 4 — dominance: a strictly-better survivor eliminates a sibling.
package node
