// Package projection reassembles nested domain objects from flat,
// prefix-qualified SQL join rows and computes per-group review statistics.
package projection

import (
	"fmt"
	"math"
	"strings"
)

// Row is a single flat result-set record keyed by column name. Columns named
// "group:field" belong to the nested entity "group"; unprefixed columns
// belong to the root entity.
type Row map[string]any

// Tree is one reassembled root entity: its own columns, one object per
// nested group, and the flat rows that formed the group. Rows are kept so
// aggregates can be computed over the group's detail columns.
type Tree struct {
	Root   map[string]any
	Nested map[string]map[string]any
	Rows   []Row
}

// Project groups rows by the value of idColumn and rebuilds one Tree per
// distinct root, ordered by first appearance in the input. Root and nested
// values are taken from the first row of each group; join semantics
// guarantee they are identical across the group. A nested group whose
// columns are all NULL (outer join with no match) yields an empty object,
// never nil, so the serialized shape stays stable.
//
// Project is a pure function: it holds no state across calls and never
// mutates its input.
func Project(rows []Row, idColumn string) []*Tree {
	var order []string
	groups := make(map[string]*Tree)

	for _, row := range rows {
		key := fmt.Sprint(row[idColumn])
		tree, ok := groups[key]
		if !ok {
			tree = newTree(row)
			groups[key] = tree
			order = append(order, key)
		}
		tree.Rows = append(tree.Rows, row)
	}

	out := make([]*Tree, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key])
	}
	return out
}

func newTree(first Row) *Tree {
	t := &Tree{
		Root:   make(map[string]any),
		Nested: make(map[string]map[string]any),
	}
	for col, val := range first {
		group, field, ok := strings.Cut(col, ":")
		if !ok {
			t.Root[col] = val
			continue
		}
		nested := t.Nested[group]
		if nested == nil {
			nested = make(map[string]any)
			t.Nested[group] = nested
		}
		if val != nil {
			nested[field] = val
		}
	}
	return t
}

// ReviewStats computes the distinct detail count and the rounded mean
// rating over a group's constituent rows. Distinctness is keyed on
// idColumn so an additional one-to-many join cannot multiply the count.
// Rows whose idColumn is NULL (outer join matched nothing) are skipped.
// An empty group yields (0, 0) — never a division by zero.
func ReviewStats(rows []Row, idColumn, ratingColumn string) (count, average int) {
	seen := make(map[string]struct{})
	var sum, n float64

	for _, row := range rows {
		id := row[idColumn]
		if id == nil {
			continue
		}
		key := fmt.Sprint(id)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if rating, ok := toFloat(row[ratingColumn]); ok {
			sum += rating
			n++
		}
	}

	if n == 0 {
		return len(seen), 0
	}
	return len(seen), int(math.Round(sum / n))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
