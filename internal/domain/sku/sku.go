// Package sku generates system SKUs and unit serial codes.
package sku

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// Segment derives a 4-character code from a name: first two letters of
// the first two words ("Blue Side" -> "BLSI"), or the first four of a
// single word, right-padded with '1' to four characters. Empty input
// yields the placeholder "XXXX".
func Segment(text string) string {
	if text == "" {
		return "XXXX"
	}
	clean := nonAlnum.ReplaceAllString(text, "")
	words := strings.Fields(clean)
	if len(words) == 0 {
		return "XXXX"
	}

	var code string
	switch {
	case len(words) >= 2:
		code = strings.ToUpper(prefix(words[0], 2) + prefix(words[1], 2))
	case len(words) == 1:
		code = strings.ToUpper(prefix(words[0], 4))
	}
	for len(code) < 4 {
		code += "1"
	}
	return code
}

// Base builds the three-segment base SKU from brand, category and
// collection, e.g. "SLAM-POLA-TUBA".
func Base(brand, category, collection string) string {
	return Segment(brand) + "-" + Segment(category) + "-" + Segment(collection)
}

// ResolveCollision returns base if unused, otherwise varies the last
// segment's fourth character through 1-9, falling back to a random
// two-digit suffix when all nine candidates are taken.
func ResolveCollision(base string, existing map[string]struct{}) string {
	if _, taken := existing[base]; !taken {
		return base
	}
	parts := strings.Split(base, "-")
	if len(parts) < 3 {
		return base + "-01"
	}
	prefixPart := parts[0] + "-" + parts[1]
	baseName := prefix(parts[2], 3)
	for i := 1; i <= 9; i++ {
		candidate := fmt.Sprintf("%s-%s%d", prefixPart, baseName, i)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
	return fmt.Sprintf("%s%d", base, 10+rand.Intn(90))
}

// SerialCode formats a unit's serial (and QR payload) from the product
// SKU and its sequence number, e.g. "SLAM-POLA-TUBA-0007".
func SerialCode(code string, sequence int) string {
	return fmt.Sprintf("%s-%04d", code, sequence)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
