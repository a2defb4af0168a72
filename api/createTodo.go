package api

import (
	"context"
	"net/http"
)

// createTodo answers with the id assigned to the new todo.
func createTodo(ctx context.Context, r *http.Request) (uint64, error) {

	insert, err := decodeInsert(r)
	if err != nil {
		return 0, err
	}

	return GetServicer(ctx).Create(ctx, insert)
}
