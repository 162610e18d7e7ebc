package grouping_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/grouping"
)

func catalogFixture() []entity.Product {
	return []entity.Product{
		{ID: "p1", Brand: "SLAMP", Category: "Lighting", Collection: "Tuba"},
		{ID: "p2", Brand: "SLAMP", Category: "Lighting", Collection: "Aria"},
		{ID: "p3", Brand: "SLAMP", Category: "Tableware", Collection: "Polaris"},
		{ID: "p4", Brand: "KARTELL", Category: "Seating", Collection: "Masters"},
		{ID: "p5", Brand: "KARTELL", Category: "Lighting", Collection: "Bourgie"},
		{ID: "p6", Brand: "BONALDO", Category: "Seating", Collection: "Lars"},
	}
}

func collectIDs(nodes []grouping.GroupNode) map[string]int {
	ids := map[string]int{}
	for _, n := range nodes {
		for _, p := range n.Items {
			ids[p.ID]++
		}
	}
	return ids
}

func TestBuildTree_Completeness(t *testing.T) {
	products := catalogFixture()
	tree := grouping.BuildTree(products, []string{"brand", "category"})

	ids := collectIDs(tree)
	require.Len(t, ids, len(products), "every product must land in exactly one top-level group")
	for _, p := range products {
		assert.Equal(t, 1, ids[p.ID], "product %s must appear exactly once", p.ID)
	}
}

func TestBuildTree_ItemsAreTransitiveUnion(t *testing.T) {
	tree := grouping.BuildTree(catalogFixture(), []string{"brand", "category"})

	var check func(n grouping.GroupNode)
	check = func(n grouping.GroupNode) {
		if len(n.Subgroups) > 0 {
			sum := 0
			for _, sg := range n.Subgroups {
				sum += len(sg.Items)
			}
			assert.Equal(t, len(n.Items), sum,
				"node %q must carry the union of its subgroup items", n.Key)
		}
		for _, sg := range n.Subgroups {
			check(sg)
		}
	}
	for _, n := range tree {
		check(n)
	}
}

func TestBuildTree_DeterministicUnderShuffle(t *testing.T) {
	products := catalogFixture()
	reference := grouping.BuildTree(products, []string{"brand", "category"})

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]entity.Product(nil), products...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, reference, grouping.BuildTree(shuffled, []string{"brand", "category"}),
			"tree must be identical regardless of input order")
	}
}

func TestBuildTree_KeyOrderAscending(t *testing.T) {
	tree := grouping.BuildTree(catalogFixture(), []string{"brand"})

	require.Len(t, tree, 3)
	assert.Equal(t, "BONALDO", tree[0].Key)
	assert.Equal(t, "KARTELL", tree[1].Key)
	assert.Equal(t, "SLAMP", tree[2].Key)
}

func TestBuildTree_LeafOrderByCollection(t *testing.T) {
	tree := grouping.BuildTree(catalogFixture(), []string{"brand"})

	require.Equal(t, "SLAMP", tree[2].Key)
	collections := make([]string, 0, len(tree[2].Items))
	for _, p := range tree[2].Items {
		collections = append(collections, p.Collection)
	}
	assert.Equal(t, []string{"Aria", "Polaris", "Tuba"}, collections)
}

func TestBuildTree_MissingFieldGoesToUnknown(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Tuba", Location: "Showroom"},
		{ID: "p2", Brand: "SLAMP", Collection: "Aria"}, // no location
	}
	tree := grouping.BuildTree(products, []string{"location"})

	require.Len(t, tree, 2)
	keys := []string{tree[0].Key, tree[1].Key}
	assert.Contains(t, keys, grouping.UnknownKey)
	assert.Contains(t, keys, "Showroom")
}

func TestBuildTree_LevelsFollowDepth(t *testing.T) {
	tree := grouping.BuildTree(catalogFixture(), []string{"brand", "category"})

	for _, n := range tree {
		assert.Equal(t, 0, n.Level)
		for _, sg := range n.Subgroups {
			assert.Equal(t, 1, sg.Level)
			assert.Empty(t, sg.Subgroups, "recursion must stop after the last field")
		}
	}
}

func TestPath_JoinsAncestorKeys(t *testing.T) {
	assert.Equal(t, "SLAMP", grouping.Path("", "SLAMP"))
	assert.Equal(t, "SLAMP-Lighting", grouping.Path("SLAMP", "Lighting"))
}
