package apistudentv1

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fulldump/studentdb/record"
)

// listStudents accepts ?sort=<field>&reverse=true
func listStudents(ctx context.Context, r *http.Request) ([]record.Record, error) {

	params := r.URL.Query()
	reverse, _ := strconv.ParseBool(params.Get("reverse"))

	return GetServicer(ctx).ListStudents(params.Get("sort"), reverse)
}
