package beamsearch

import (
	"strconv"
	"strings"
)

// dedupKey encodes a node's (cursor_S, cursor_R) pair as a string key for a
// per-level deduplication set. cursor_P is deliberately excluded — see
// DESIGN.md Open Question 4.
func dedupKey(cursorS, cursorR []int) string {
	var b strings.Builder
	for _, v := range cursorS {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, v := range cursorR {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}
	return b.String()
}
