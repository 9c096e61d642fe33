package apistudentv1

import (
	"context"
	"errors"
	"fmt"

	"github.com/fulldump/studentdb/record"
)

var ErrBadRequest = errors.New("bad request")

type FindInput struct {
	Field string   `json:"field"`
	From  *float64 `json:"from"`
	To    *float64 `json:"to"`
}

// find returns the students whose field is inside [from, to].
func find(ctx context.Context, input FindInput) ([]record.Record, error) {

	if input.From == nil || input.To == nil {
		return nil, fmt.Errorf("%w: 'from' and 'to' are mandatory", ErrBadRequest)
	}

	field := input.Field
	if field == "" {
		field = record.FieldMath.String()
	}

	return GetServicer(ctx).FindByRange(field, *input.From, *input.To)
}
