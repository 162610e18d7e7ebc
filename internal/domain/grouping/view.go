package grouping

import "github.com/edievo/edsis-api/internal/domain/entity"

// View selects the grouping fields and visibility filter for a tree.
type View string

const (
	ViewBrand    View = "BRAND"
	ViewCategory View = "CATEGORY"
	ViewStatus   View = "STATUS"
	ViewLocation View = "LOCATION"
)

// Valid reports whether v is one of the four known views.
func (v View) Valid() bool {
	switch v {
	case ViewBrand, ViewCategory, ViewStatus, ViewLocation:
		return true
	}
	return false
}

// FieldsFor returns the partition fields for a view. The STATUS view has
// no field list; it uses BuildStatusTree instead.
func FieldsFor(v View) []string {
	switch v {
	case ViewBrand:
		return []string{"brand", "category"}
	case ViewCategory:
		return []string{"category", "brand"}
	case ViewLocation:
		return []string{"location", "brand", "category"}
	default:
		return nil
	}
}

// FilterAndGroup applies the view's visibility rule and the search
// predicate, then builds the tree for the view. Not-for-sale and
// upcoming products are hidden from the BRAND and CATEGORY views only,
// and only while no search query is active.
func FilterAndGroup(products []entity.Product, view View, query string) []GroupNode {
	searching := len(Terms(query)) > 0
	hideFlagged := !searching && (view == ViewBrand || view == ViewCategory)

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if hideFlagged && (p.IsNotForSale || p.IsUpcoming) {
			continue
		}
		if !Matches(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	if view == ViewStatus {
		return BuildStatusTree(filtered)
	}
	return BuildTree(filtered, FieldsFor(view))
}
