package grouping_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/grouping"
)

func TestBuildStatusTree_MultiMembership(t *testing.T) {
	// Upcoming AND discounted: must appear in exactly two buckets.
	products := []entity.Product{
		{
			ID: "p1", Brand: "SLAMP", Collection: "Tuba", TotalStock: 3,
			IsUpcoming: true,
			Discounts: []entity.DiscountSnapshot{
				{RuleID: "d1", Name: "Season Sale", Value: decimal.NewFromInt(20)},
			},
		},
	}
	tree := grouping.BuildStatusTree(products)

	require.Len(t, tree, 2)
	assert.Equal(t, grouping.KeyDiscountItem, tree[0].Key)
	assert.Equal(t, grouping.KeyUpcomingItem, tree[1].Key)
	for _, n := range tree {
		assert.Len(t, n.Items, 1)
	}
}

func TestBuildStatusTree_EmptyBucketsDropped(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Tuba", TotalStock: 2, BookedStock: 1},
	}
	tree := grouping.BuildStatusTree(products)

	require.Len(t, tree, 1)
	assert.Equal(t, grouping.KeyBookedItem, tree[0].Key)
}

func TestBuildStatusTree_NoStockBucket(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Tuba", TotalStock: 0},
		{ID: "p2", Brand: "SLAMP", Collection: "Aria", TotalStock: 5},
	}
	tree := grouping.BuildStatusTree(products)

	require.Len(t, tree, 1)
	require.Equal(t, grouping.KeyNoStock, tree[0].Key)
	require.Len(t, tree[0].Items, 1)
	assert.Equal(t, "p1", tree[0].Items[0].ID)
}

func TestBuildStatusTree_BrandSubtreeShiftedOneLevel(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Brand: "SLAMP", Collection: "Tuba", IsNotForSale: true, TotalStock: 1},
		{ID: "p2", Brand: "KARTELL", Collection: "Masters", IsNotForSale: true, TotalStock: 1},
	}
	tree := grouping.BuildStatusTree(products)

	require.Len(t, tree, 1)
	node := tree[0]
	assert.Equal(t, grouping.KeyNotForSale, node.Key)
	assert.Equal(t, 0, node.Level)

	require.Len(t, node.Subgroups, 2)
	assert.Equal(t, "KARTELL", node.Subgroups[0].Key)
	assert.Equal(t, "SLAMP", node.Subgroups[1].Key)
	for _, sg := range node.Subgroups {
		// Shifted so it nests under the synthetic status node.
		assert.Equal(t, 1, sg.Level)
	}
}

func TestBuildStatusTree_FixedBucketOrder(t *testing.T) {
	products := []entity.Product{
		{
			ID: "p1", Brand: "SLAMP", Collection: "Tuba",
			IsNotForSale: true, IsUpcoming: true, TotalStock: 0, BookedStock: 1,
			Discounts: []entity.DiscountSnapshot{{RuleID: "d1", Value: decimal.NewFromInt(10)}},
		},
	}
	tree := grouping.BuildStatusTree(products)

	require.Len(t, tree, 5)
	keys := make([]string, 0, 5)
	for _, n := range tree {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []string{
		grouping.KeyDiscountItem,
		grouping.KeyBookedItem,
		grouping.KeyUpcomingItem,
		grouping.KeyNotForSale,
		grouping.KeyNoStock,
	}, keys)
}
