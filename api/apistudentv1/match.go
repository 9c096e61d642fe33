package apistudentv1

import (
	"context"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
)

func match(ctx context.Context, input query.MatchOptions) ([]record.Record, error) {
	return GetServicer(ctx).Match(input)
}
