package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/todos/todo"
)

func getTodo(ctx context.Context) (*todo.Todo, error) {

	id, err := parseID(box.GetUrlParameter(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return GetServicer(ctx).ReadOne(ctx, id)
}
