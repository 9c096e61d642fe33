package query

import (
	"math"

	"github.com/google/btree"

	"github.com/fulldump/studentdb/record"
)

type ordered struct {
	key float64
	pos int
	record.Record
}

// SortBy returns a copy of records ordered by field. Equal values keep
// their input order in both directions.
func SortBy(records []record.Record, field record.Field, reverse bool) []record.Record {

	tree := btree.NewG(32, func(a, b *ordered) bool {
		if a.key != b.key {
			if reverse {
				return a.key > b.key
			}
			return a.key < b.key
		}
		return a.pos < b.pos
	})

	for i, r := range records {
		key := field.Value(r)
		if math.IsNaN(key) {
			key = math.Inf(-1)
		}
		tree.ReplaceOrInsert(&ordered{key: key, pos: i, Record: r})
	}

	result := make([]record.Record, 0, len(records))
	tree.Ascend(func(item *ordered) bool {
		result = append(result, item.Record)
		return true
	})

	return result
}
