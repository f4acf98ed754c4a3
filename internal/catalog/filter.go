package catalog

import (
	"sort"
	"strings"

	"github.com/restu-food/api/internal/enum"
)

// Query describes an active set of menu filters. Zero values mean "no
// constraint": empty text matches everything, empty category is treated
// like "all", an empty tag set disables dietary filtering.
type Query struct {
	Text     string
	Category string
	Tags     []string
	Sort     string
}

// Apply filters and sorts the catalog for display. Filters are applied in
// a fixed order (category, text, tags) before sorting; an empty result is
// a valid outcome, not an error.
func Apply(items []MenuItem, q Query) []MenuItem {
	text := strings.ToLower(q.Text)

	var out []MenuItem
	for _, item := range items {
		if q.Category != "" && q.Category != enum.CategoryAll && item.Category != q.Category {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(item.Name), text) &&
			!strings.Contains(strings.ToLower(item.Description), text) {
			continue
		}
		if len(q.Tags) > 0 && !matchesAnyTag(item, q.Tags) {
			continue
		}
		out = append(out, item)
	}

	sortItems(out, q.Sort)
	return out
}

// matchesAnyTag is an OR across the selected dietary filters.
func matchesAnyTag(item MenuItem, tags []string) bool {
	for _, tag := range tags {
		if item.HasTag(tag) {
			return true
		}
	}
	return false
}

func sortItems(items []MenuItem, key string) {
	switch key {
	case enum.SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.LessThan(items[j].Price)
		})
	case enum.SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.GreaterThan(items[j].Price)
		})
	case enum.SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	default:
		// SortPopular and anything unknown: popular items first, catalog
		// order preserved within each group.
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].IsPopular && !items[j].IsPopular
		})
	}
}
