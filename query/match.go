package query

import (
	"fmt"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/utils"
)

type MatchOptions struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"` // 0 means no limit
}

// Match keeps the records whose JSON form matches options.Filter, using
// mongo style operators ($eq, $gt, $in, ...).
func Match(records []record.Record, options MatchOptions) ([]record.Record, error) {

	result := []record.Record{}
	hasFilter := len(options.Filter) > 0

	skip := options.Skip
	limit := options.Limit
	for _, r := range records {

		if options.Limit > 0 && limit == 0 {
			break
		}

		if hasFilter {
			data := map[string]interface{}{}
			err := utils.Remarshal(r, &data)
			if err != nil {
				return nil, fmt.Errorf("remarshal record %d: %w", r.Id, err)
			}

			match, err := connor.Match(options.Filter, data)
			if err != nil {
				return nil, fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		result = append(result, r)
	}

	return result, nil
}
