// Package records holds generic filter and sort helpers over record slices.
// Every function returns a new slice and leaves its input untouched.
package records

import (
	"slices"
	"time"
)

// All is the filter value that matches every record.
const All = "all"

// FilterByField keeps the records whose field equals value. The sentinel All
// and the empty string return the input unchanged.
func FilterByField[T any](records []T, field func(T) string, value string) []T {
	if value == All || value == "" {
		return records
	}
	return Filter(records, func(r T) bool { return field(r) == value })
}

// Filter keeps the records matching pred, preserving order.
func Filter[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDateRange keeps records whose date lies in [from, to]. Zero bounds are open.
func FilterByDateRange[T any](records []T, date func(T) time.Time, from, to time.Time) []T {
	if from.IsZero() && to.IsZero() {
		return records
	}
	return Filter(records, func(r T) bool {
		d := date(r)
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	})
}

// SortByDateDesc returns a copy sorted newest first. Equal dates keep input order.
func SortByDateDesc[T any](records []T, date func(T) time.Time) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return date(b).Compare(date(a))
	})
	return out
}

// SortByDateAsc returns a copy sorted oldest first. Equal dates keep input order.
func SortByDateAsc[T any](records []T, date func(T) time.Time) []T {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b T) int {
		return date(a).Compare(date(b))
	})
	return out
}

// Take returns at most n leading records.
func Take[T any](records []T, n int) []T {
	if n < 0 || n >= len(records) {
		return records
	}
	return records[:n]
}

// GroupBy buckets records by key, keeping input order inside each bucket.
func GroupBy[T any, K comparable](records []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, r := range records {
		k := key(r)
		out[k] = append(out[k], r)
	}
	return out
}
