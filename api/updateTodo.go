package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/todos/todo"
)

func updateTodo(ctx context.Context, r *http.Request) (*todo.Todo, error) {

	id, err := parseID(box.GetUrlParameter(ctx, "id"))
	if err != nil {
		return nil, err
	}

	insert, err := decodeInsert(r)
	if err != nil {
		return nil, err
	}

	return GetServicer(ctx).Update(ctx, id, insert)
}
