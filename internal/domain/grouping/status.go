package grouping

import "github.com/edievo/edsis-api/internal/domain/entity"

// Fixed status-view bucket keys, in display order.
const (
	KeyDiscountItem = "DISCOUNT ITEM"
	KeyBookedItem   = "BOOKED ITEM"
	KeyUpcomingItem = "UPCOMING ITEM"
	KeyNotForSale   = "NOT FOR SALE"
	KeyNoStock      = "NO STOCK"
)

// statusBuckets are five independent predicates; a product may match
// several of them, unlike the exclusive partition of BuildTree.
var statusBuckets = []struct {
	key   string
	match func(entity.Product) bool
}{
	{KeyDiscountItem, func(p entity.Product) bool { return len(p.Discounts) > 0 }},
	{KeyBookedItem, func(p entity.Product) bool { return p.BookedStock > 0 }},
	{KeyUpcomingItem, func(p entity.Product) bool { return p.IsUpcoming }},
	{KeyNotForSale, func(p entity.Product) bool { return p.IsNotForSale }},
	{KeyNoStock, func(p entity.Product) bool { return p.TotalStock == 0 }},
}

// BuildStatusTree groups products into the five fixed status buckets
// (multi-membership), drops empty buckets, and expands each bucket one
// level deeper by brand with levels shifted down so the subtree nests
// under the synthetic status node.
func BuildStatusTree(products []entity.Product) []GroupNode {
	nodes := make([]GroupNode, 0, len(statusBuckets))
	for _, bucket := range statusBuckets {
		var members []entity.Product
		for _, p := range products {
			if bucket.match(p) {
				members = append(members, p)
			}
		}
		if len(members) == 0 {
			continue
		}
		sub := BuildTree(members, []string{"brand"})
		shiftLevel(sub)
		nodes = append(nodes, GroupNode{
			Key:       bucket.key,
			Level:     0,
			Items:     members,
			Subgroups: sub,
		})
	}
	return nodes
}

func shiftLevel(nodes []GroupNode) {
	for i := range nodes {
		nodes[i].Level++
		shiftLevel(nodes[i].Subgroups)
	}
}
