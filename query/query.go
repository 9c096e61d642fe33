// Package query answers questions over a slice of records returned by the
// store. Every function is a pure full scan: inputs are never modified and
// results keep input order unless a sort is requested.
package query

import (
	"strconv"

	"github.com/fulldump/studentdb/record"
)

// Table is the tabular form of a record slice.
type Table struct {
	Header []string
	Rows   [][]string
}

var TableHeader = []string{"ID", "Name", "Sex", "Age", "Math", "Chinese", "English"}

// ListAll formats every record as a row. Empty input gives a table with a
// header and no rows; the caller decides how to report it.
func ListAll(records []record.Record) Table {
	t := Table{
		Header: append([]string{}, TableHeader...),
		Rows:   make([][]string, 0, len(records)),
	}
	for _, r := range records {
		t.Rows = append(t.Rows, Row(r))
	}
	return t
}

// Row formats scores with one decimal.
func Row(r record.Record) []string {
	return []string{
		strconv.Itoa(r.Id),
		r.Name,
		r.Sex,
		strconv.Itoa(r.Age),
		formatScore(r.Math),
		formatScore(r.Chinese),
		formatScore(r.English),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FilterByRange keeps the records whose field lies in [from, to], both ends
// included. An inverted range matches nothing.
func FilterByRange(records []record.Record, field record.Field, from, to float64) []record.Record {
	result := []record.Record{}
	if from > to {
		return result
	}
	for _, r := range records {
		v := field.Value(r)
		if from <= v && v <= to {
			result = append(result, r)
		}
	}
	return result
}
