// Package memory provides in-memory repository implementations backing the
// memory store driver. All repositories are safe for concurrent use and
// enforce the same unique keys as the PostgreSQL schema.
package memory

import (
	"sort"
	"strings"
	"time"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// inDateRange applies optional YYYY-MM-DD bounds to a date.
func inDateRange(date time.Time, start, end string) bool {
	d := date.Format("2006-01-02")
	if start != "" && d < start {
		return false
	}
	if end != "" && d > end {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// paginate slices a sorted result set the way LIMIT/OFFSET would.
func paginate[T any](items []T, page, limit int) []T {
	if limit == 0 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func sortByDateDesc[T any](items []T, date func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return date(items[i]).After(date(items[j]))
	})
}
