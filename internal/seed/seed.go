// Package seed provides the canonical string hash used wherever a stable
// pseudo-random choice must be re-derivable from its inputs alone.
package seed

import "unicode/utf16"

// Hash folds s into a uint32 with h = h*31 + unit over the UTF-16 code units
// of s, wrapping at 32 bits. Characters outside the BMP contribute both
// surrogates.
func Hash(s string) uint32 {
	var h uint32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(c)
	}
	return h
}

// Float maps s to [0, 1) as (Hash(s) mod 10000) / 10000.
func Float(s string) float64 {
	return float64(Hash(s)%10000) / 10000
}

// Index maps s to [0, n). It returns 0 when n <= 0.
func Index(s string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Hash(s) % uint32(n))
}
