package history

import (
	"cmp"
	"slices"

	"github.com/arloliu/teamsplit/types"
)

// newestFirst sorts records by CreatedAt descending, ties by ID, and applies limit.
func newestFirst(records []types.HistoryRecord, limit int) []types.HistoryRecord {
	slices.SortFunc(records, func(a, b types.HistoryRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records
}
