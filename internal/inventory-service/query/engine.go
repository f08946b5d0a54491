// Package query holds the pure filtering, search and sorting functions
// the inventory store derives its view from. All functions are
// stateless, never mutate their input and are safe for concurrent
// readers.
package query

import (
	"sort"
	"strconv"
	"strings"

	"server-inventory-dashboard/internal/inventory-service/model"
)

// ApplyFiltersAndSearch returns the records passing every filter
// (conjunction) and, if search is non-empty, matching it in at least one
// field. Matching is case-insensitive substring. Relative input order is
// preserved.
func ApplyFiltersAndSearch(records []model.Server, filters []model.Filter, search string) []model.Server {
	result := records
	if len(filters) > 0 {
		filtered := make([]model.Server, 0, len(result))
		for _, server := range result {
			if matchesFilters(&server, filters) {
				filtered = append(filtered, server)
			}
		}
		result = filtered
	}
	if search != "" {
		needle := strings.ToLower(search)
		matched := make([]model.Server, 0, len(result))
		for _, server := range result {
			if matchesSearch(&server, needle) {
				matched = append(matched, server)
			}
		}
		result = matched
	}
	return result
}

func matchesFilters(s *model.Server, filters []model.Filter) bool {
	for _, filter := range filters {
		if filter.Key == model.FilterKeyAll {
			continue
		}
		needle := strings.ToLower(filter.Value)
		if !anyValueContains(FieldValues(s, filter.Key), needle) {
			return false
		}
	}
	return true
}

func matchesSearch(s *model.Server, needle string) bool {
	for _, getter := range getters {
		if anyValueContains(getter(s), needle) {
			return true
		}
	}
	return false
}

func anyValueContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// ApplySort returns a sorted copy of records using keys as a
// lexicographic multi-key comparator. With no keys the input is returned
// unchanged. The sort is stable; each key's direction only flips that
// key's comparison.
//
// Fields compare as strings, so numeric fields order lexicographically
// ("10" before "2") unless numericAware is set, which compares values
// parsing as numbers numerically.
func ApplySort(records []model.Server, keys []model.SortKey, numericAware bool) []model.Server {
	if len(keys) == 0 {
		return records
	}
	sorted := make([]model.Server, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		for _, key := range keys {
			c := compareField(&sorted[i], &sorted[j], key.Key, numericAware)
			if c == 0 {
				continue
			}
			if key.Direction == model.SortDesc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return sorted
}

func compareField(a, b *model.Server, field string, numericAware bool) int {
	av := sortValue(a, field)
	bv := sortValue(b, field)
	if numericAware {
		af, aerr := strconv.ParseFloat(av, 64)
		bf, berr := strconv.ParseFloat(bv, 64)
		if aerr == nil && berr == nil {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(av, bv)
}
