// Package grouping builds the navigation trees over a flat product
// list. Two distinct algorithms live behind the same GroupNode shape:
// the recursive exclusive partition by field values (BuildTree) and the
// fixed multi-membership status grouping (BuildStatusTree). Both are
// pure functions over value snapshots and safe to run concurrently.
package grouping

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/edievo/edsis-api/internal/domain/entity"
)

// UnknownKey is the bucket for products missing the grouping field.
const UnknownKey = "Unknown"

// PathDelimiter joins ancestor keys into a node address. Callers use the
// resulting path as an opaque handle for expansion state, one state set
// per view.
const PathDelimiter = "-"

// GroupNode is one node of a grouping tree. Items carries the node's
// full transitive item set at every depth, not only direct leaves, so
// len(Items) always equals the sum over Subgroups when those exist.
type GroupNode struct {
	Key       string
	Level     int
	Items     []entity.Product
	Subgroups []GroupNode
}

// Path returns the address of a child key under a parent path.
func Path(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + PathDelimiter + key
}

// BuildTree partitions products into an ordered tree, one level per
// field. Group keys sort ascending with locale-aware comparison; members
// of every bucket sort by collection name, so the output is identical
// for any input ordering.
func BuildTree(products []entity.Product, fields []string) []GroupNode {
	return buildRecursive(newCollator(), products, fields, 0)
}

func newCollator() *collate.Collator {
	// A collator is not safe for concurrent use; each build gets its own.
	return collate.New(language.English)
}

func buildRecursive(c *collate.Collator, items []entity.Product, fields []string, depth int) []GroupNode {
	if depth >= len(fields) {
		return nil
	}
	field := fields[depth]

	buckets := make(map[string][]entity.Product)
	keys := make([]string, 0)
	for _, item := range items {
		key := fieldValue(item, field)
		if key == "" {
			key = UnknownKey
		}
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], item)
	}

	sort.Slice(keys, func(i, j int) bool {
		return c.CompareString(keys[i], keys[j]) < 0
	})

	nodes := make([]GroupNode, 0, len(keys))
	for _, key := range keys {
		members := buckets[key]
		sort.SliceStable(members, func(i, j int) bool {
			return c.CompareString(members[i].Collection, members[j].Collection) < 0
		})
		nodes = append(nodes, GroupNode{
			Key:       key,
			Level:     depth,
			Items:     members,
			Subgroups: buildRecursive(c, members, fields, depth+1),
		})
	}
	return nodes
}

// fieldValue resolves a grouping field by name. Unknown fields and empty
// values fall through to "" and end up in the Unknown bucket.
func fieldValue(p entity.Product, field string) string {
	switch field {
	case "brand":
		return p.Brand
	case "category":
		return p.Category
	case "collection":
		return p.Collection
	case "code":
		return p.Code
	case "location":
		return p.Location
	default:
		return ""
	}
}
