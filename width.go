package lineui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the display width of s in terminal columns.
//
// Width is grapheme-aware: combining sequences count as one cluster, and
// wide (East Asian, emoji) clusters count as two columns. Pure printable
// ASCII takes a fast path.
func Width(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// clusterWidth returns the display width of one grapheme cluster.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// fitPrefix returns the byte length and display width of the longest prefix
// of s that occupies at most budget columns. The cut lands on a grapheme
// cluster boundary, never inside one.
func fitPrefix(s string, budget int) (n, w int) {
	state := -1
	rest := s
	for len(rest) > 0 {
		cluster, tail, _, next := uniseg.FirstGraphemeClusterInString(rest, state)
		cw := clusterWidth(cluster)
		if w+cw > budget {
			break
		}
		n += len(cluster)
		w += cw
		rest = tail
		state = next
	}
	return n, w
}

// fitSuffix returns the byte offset and display width of the longest suffix
// of s that occupies at most budget columns, cut on a cluster boundary.
func fitSuffix(s string, budget int) (start, w int) {
	total := Width(s)
	if total <= budget {
		return 0, total
	}
	state := -1
	rest := s
	dropped := 0
	for len(rest) > 0 {
		cluster, tail, _, next := uniseg.FirstGraphemeClusterInString(rest, state)
		start += len(cluster)
		dropped += clusterWidth(cluster)
		rest = tail
		state = next
		if total-dropped <= budget {
			return start, total - dropped
		}
	}
	return len(s), 0
}
