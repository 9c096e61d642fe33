package apistudentv1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/studentdb/service"
)

type contextServicerKey struct{}

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, contextServicerKey{}, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	s, _ := ctx.Value(contextServicerKey{}).(service.Servicer)
	return s
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
