package grouping

import (
	"strings"

	"github.com/edievo/edsis-api/internal/domain/entity"
)

// Terms splits a query on commas into trimmed, lower-cased, non-empty
// search terms. An empty result means "match everything".
func Terms(query string) []string {
	parts := strings.Split(strings.ToLower(query), ",")
	terms := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// Matches reports whether every term of the query is a substring of the
// product's searchable text (brand, category, collection, system SKU and
// manufacturer code). Empty fields contribute an empty string.
func Matches(p entity.Product, query string) bool {
	terms := Terms(query)
	if len(terms) == 0 {
		return true
	}
	text := strings.ToLower(strings.Join([]string{
		p.Brand, p.Category, p.Collection, p.Code, p.ManufacturerCode,
	}, " "))
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
