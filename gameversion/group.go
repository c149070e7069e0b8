package gameversion

import (
	"sort"

	"github.com/samber/lo"
)

// GroupByVariant partitions entries into per-variant buckets and sorts each bucket
// descending by the supplied numeric key, newest release first. The partition preserves
// upstream order and the sort is stable, so entries with equal keys keep their relative
// order and the result is deterministic.
func GroupByVariant[E any](entries []E, variantOf func(E) Variant, sortKey func(E) int) map[Variant][]E {
	buckets := lo.GroupBy(entries, func(entry E) Variant {
		return variantOf(entry)
	})

	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			return sortKey(bucket[i]) > sortKey(bucket[j])
		})
	}

	return buckets
}
