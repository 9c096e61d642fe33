package apistudentv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/studentdb/service"
)

func BuildV1Students(v1 *box.R, s service.Servicer) *box.R {

	v1.WithInterceptors(
		injectServicer(s),
	)

	students := v1.Resource("/students").
		WithActions(
			box.Get(listStudents).WithName("listStudents"),
			box.ActionPost(find).WithName("find"),
			box.ActionPost(match).WithName("match"),
		)

	v1.Resource("/stats").
		WithActions(
			box.Get(getStats).WithName("getStats"),
		)

	return students
}
