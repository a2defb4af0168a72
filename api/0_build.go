package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/todos/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()
	b.Serializer = serialize

	b.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
	)

	b.Resource("/todos").
		WithActions(
			box.Get(listTodos),
			box.Post(createTodo),
			box.ActionPost(countTodos).WithName("count"),
		).
		WithInterceptors(
			injectServicer(s),
		)

	b.Resource("/todos/{id}").
		WithActions(
			box.Get(getTodo),
			box.Put(updateTodo),
			box.Delete(deleteTodo),
		).
		WithInterceptors(
			injectServicer(s),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "Todos"
	spec.Info.Description = "An in-memory todo list served over HTTP."
	spec.Info.Version = version
	b.Resource("/openapi.json").
		WithActions(box.Get(func(r *http.Request) any {

			spec.Servers = []boxopenapi.Server{
				{
					Url: "https://" + r.Host,
				},
				{
					Url: "http://" + r.Host,
				},
			}

			return spec
		}).WithName("openapi"))

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
