package query

import (
	"github.com/fulldump/studentdb/record"
)

type FieldSummary struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

type Summary struct {
	Count  int                     `json:"count"`
	Fields map[string]FieldSummary `json:"fields"`
}

// Summarize computes aggregates from a loaded slice. There is no cached
// counter anywhere: the slice is the source of truth.
func Summarize(records []record.Record) Summary {

	s := Summary{
		Count:  len(records),
		Fields: map[string]FieldSummary{},
	}
	if len(records) == 0 {
		return s
	}

	for _, field := range record.Fields {
		first := field.Value(records[0])
		fs := FieldSummary{Min: first, Max: first}
		sum := 0.0
		for _, r := range records {
			v := field.Value(r)
			if v < fs.Min {
				fs.Min = v
			}
			if v > fs.Max {
				fs.Max = v
			}
			sum += v
		}
		fs.Mean = sum / float64(len(records))
		s.Fields[field.String()] = fs
	}

	return s
}
