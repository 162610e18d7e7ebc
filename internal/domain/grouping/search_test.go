package grouping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/grouping"
)

func TestMatches_ANDSemantics(t *testing.T) {
	p := entity.Product{
		Brand: "SLAMP", Category: "Tableware", Collection: "Blue Lagoon",
		Code: "SLAM-TABL-BLLA",
	}

	assert.True(t, grouping.Matches(p, "blue, tableware"),
		"both terms present as substrings")
	assert.False(t, grouping.Matches(p, "blue, seating"),
		"every term must match, not just one")
}

func TestMatches_CaseInsensitive(t *testing.T) {
	p := entity.Product{Brand: "SLAMP", Collection: "Tuba"}
	assert.True(t, grouping.Matches(p, "TUBA"))
	assert.True(t, grouping.Matches(p, "slamp"))
}

func TestMatches_EmptyQueryMatchesEverything(t *testing.T) {
	p := entity.Product{Brand: "SLAMP"}
	assert.True(t, grouping.Matches(p, ""))
	assert.True(t, grouping.Matches(p, " , ,, "))
}

func TestMatches_EmptyFieldsContributeNothing(t *testing.T) {
	// A product with no manufacturer code must not match the literal
	// text an encoding bug would leak.
	p := entity.Product{Brand: "SLAMP", Collection: "Tuba"}
	assert.False(t, grouping.Matches(p, "undefined"))
}

func TestMatches_ManufacturerCodeSearchable(t *testing.T) {
	p := entity.Product{Brand: "SLAMP", ManufacturerCode: "A123-F"}
	assert.True(t, grouping.Matches(p, "a123"))
}

func TestTerms_SplitsOnCommasOnly(t *testing.T) {
	assert.Equal(t, []string{"blue lagoon", "slamp"}, grouping.Terms(" Blue Lagoon , SLAMP "))
}

func TestFilterAndGroup_VisibilityRule(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Tuba", Location: "Showroom"},
		{ID: "p2", Brand: "SLAMP", Collection: "Aria", IsNotForSale: true, Location: "Showroom"},
		{ID: "p3", Brand: "SLAMP", Collection: "Vela", IsUpcoming: true, Location: "Showroom"},
	}

	brand := grouping.FilterAndGroup(products, grouping.ViewBrand, "")
	require.Len(t, brand, 1)
	assert.Len(t, brand[0].Items, 1, "flagged products hidden from the BRAND view")

	location := grouping.FilterAndGroup(products, grouping.ViewLocation, "")
	require.Len(t, location, 1)
	assert.Len(t, location[0].Items, 3, "LOCATION view shows flagged products")
}

func TestFilterAndGroup_SearchBypassesVisibilityRule(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Aria", IsNotForSale: true},
	}
	tree := grouping.FilterAndGroup(products, grouping.ViewBrand, "aria")

	require.Len(t, tree, 1)
	assert.Len(t, tree[0].Items, 1, "searching surfaces flagged products")
}

func TestFilterAndGroup_StatusViewDispatch(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Tuba", TotalStock: 0},
	}
	tree := grouping.FilterAndGroup(products, grouping.ViewStatus, "")

	require.Len(t, tree, 1)
	assert.Equal(t, grouping.KeyNoStock, tree[0].Key)
}

func TestFilterAndGroup_ViewFieldLists(t *testing.T) {
	assert.Equal(t, []string{"brand", "category"}, grouping.FieldsFor(grouping.ViewBrand))
	assert.Equal(t, []string{"category", "brand"}, grouping.FieldsFor(grouping.ViewCategory))
	assert.Equal(t, []string{"location", "brand", "category"}, grouping.FieldsFor(grouping.ViewLocation))
	assert.Nil(t, grouping.FieldsFor(grouping.ViewStatus))
}
