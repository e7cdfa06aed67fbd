package utils

import (
	"regexp"
	"strings"
)

var (
	productsMarker = regexp.MustCompile(`(?i)\[PRODUCTS\]\s*:?\s*\[([^\]]+)\]`)
	productIDSplit = regexp.MustCompile(`[,\s]+`)
)

// StripProducts removes every [PRODUCTS]:[...] marker and trims the result.
func StripProducts(text string) string {
	return strings.TrimSpace(productsMarker.ReplaceAllString(text, ""))
}

// ParseProducts returns text without markers and the vendor ids they listed,
// de-duplicated in first-seen order.
func ParseProducts(text string) (string, []string) {
	var ids []string
	seen := map[string]bool{}
	for _, m := range productsMarker.FindAllStringSubmatch(text, -1) {
		for _, raw := range productIDSplit.Split(m[1], -1) {
			id := strings.Trim(raw, `"'`)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return StripProducts(text), ids
}
