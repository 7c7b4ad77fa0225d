package types

// ParentNode is implemented by items that may hang under a parent item.
// An empty parent id marks a top-level item.
type ParentNode interface {
	GetParentID() string
}

// Grouped is a two-level grouping of items by parent id.
type Grouped[T ParentNode] struct {
	Parents  []T
	Children map[string][]T
}

// GroupByParent partitions items in a single pass. Top-level items keep their
// input order in Parents; every other item is appended to Children under its
// parent id, also in input order. Items are never sorted, and a child whose
// parent is absent from items is still grouped under that parent id.
func GroupByParent[T ParentNode](items []T) Grouped[T] {
	g := Grouped[T]{
		Parents:  make([]T, 0, len(items)),
		Children: make(map[string][]T),
	}
	for _, item := range items {
		parentID := item.GetParentID()
		if parentID == "" {
			g.Parents = append(g.Parents, item)
			continue
		}
		g.Children[parentID] = append(g.Children[parentID], item)
	}
	return g
}
