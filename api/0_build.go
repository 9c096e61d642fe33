package api

import (
	"github.com/fulldump/box"

	"github.com/fulldump/studentdb/api/apistudentv1"
	"github.com/fulldump/studentdb/service"
	"github.com/fulldump/studentdb/statics"
)

func Build(s service.Servicer, staticsDir, version, apiKey, apiSecret string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
		Authenticate(apiKey, apiSecret),
	)

	apistudentv1.BuildV1Students(v1, s)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}
