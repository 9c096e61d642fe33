package apistudentv1

import (
	"context"

	"github.com/fulldump/studentdb/service"
)

func getStats(ctx context.Context) (*service.Stats, error) {
	return GetServicer(ctx).Stats()
}
