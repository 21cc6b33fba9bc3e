// Package listorder applies AIP-132 order_by expressions to in-memory lists.
package listorder

import (
	"fmt"
	"sort"
	"strings"

	"go.einride.tech/aip/ordering"
)

// Fields lists the sortable paths of list pages.
var Fields = []string{"name", "start_date"}

// Parse reads an order_by value. Blank input yields an empty ordering.
func Parse(raw string) (ordering.OrderBy, error) {
	var orderBy ordering.OrderBy
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return orderBy, nil
	}
	if err := orderBy.UnmarshalString(raw); err != nil {
		return ordering.OrderBy{}, fmt.Errorf("parse order_by %q: %w", raw, err)
	}
	if err := orderBy.ValidateForPaths(Fields...); err != nil {
		return ordering.OrderBy{}, fmt.Errorf("validate order_by %q: %w", raw, err)
	}
	return orderBy, nil
}

// Sort orders items in place by orderBy using keys to read each path.
// Ties keep their backend order.
func Sort[T any](items []T, orderBy ordering.OrderBy, keys map[string]func(T) string) {
	if len(orderBy.Fields) == 0 {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		for _, field := range orderBy.Fields {
			key, ok := keys[field.Path]
			if !ok {
				continue
			}
			a, b := strings.ToLower(key(items[i])), strings.ToLower(key(items[j]))
			if a == b {
				continue
			}
			if field.Desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}
