package api

import (
	"context"
	"net/http"

	"github.com/SierraSoftworks/connor"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/todos/todo"
	"github.com/fulldump/todos/utils"
)

func listTodos(ctx context.Context, r *http.Request) ([]*todo.Todo, error) {

	s := GetServicer(ctx)

	filter := map[string]interface{}{}
	if raw := r.URL.Query().Get("filter"); raw != "" {
		err := json.Unmarshal([]byte(raw), &filter)
		if err != nil {
			return nil, badRequest("Malformed filter", err)
		}
	}

	if len(filter) == 0 {
		return s.ReadAll(ctx)
	}

	// Unknown operators must fail even when there is no todo to match against.
	_, err := connor.Match(filter, map[string]interface{}{})
	if err != nil {
		return nil, badRequest("Invalid filter", err)
	}

	return s.Find(ctx, func(row *todo.Todo) (bool, error) {
		rowData := map[string]interface{}{}
		err := utils.Remarshal(row, &rowData)
		if err != nil {
			return false, err
		}
		ok, err := connor.Match(filter, rowData)
		if err != nil {
			return false, badRequest("Invalid filter", err)
		}
		return ok, nil
	})
}
