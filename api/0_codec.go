package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json"

	"github.com/fulldump/todos/todo"
)

type insertRequest struct {
	Done *bool   `json:"done"`
	Val  *string `json:"val"`
}

func decodeInsert(r *http.Request) (todo.Insert, error) {

	input := &insertRequest{}
	err := json.UnmarshalRead(r.Body, input, json.RejectUnknownMembers(true))
	if err != nil {
		return todo.Insert{}, badRequest("Malformed JSON", err)
	}

	if input.Done == nil {
		return todo.Insert{}, badRequest("Missing field", errors.New("field 'done' is required"))
	}
	if input.Val == nil {
		return todo.Insert{}, badRequest("Missing field", errors.New("field 'val' is required"))
	}

	return todo.Insert{
		Done: *input.Done,
		Val:  *input.Val,
	}, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, badRequest("Invalid id", fmt.Errorf("id '%s' is not an unsigned integer", s))
	}
	return id, nil
}

// serialize writes handler results as JSON. A nil result is an empty 200
// response. v is encoded before touching w so an encoding failure can still
// be reported with a proper status code.
func serialize(ctx context.Context, w io.Writer, v interface{}) error {

	if v == nil {
		box.GetResponse(ctx).WriteHeader(http.StatusOK)
		return nil
	}

	payload, err := json.Marshal(v)
	if err != nil {
		err = fmt.Errorf("encode response: %w", err)
		box.SetError(ctx, err)
		return err
	}

	_, err = w.Write(append(payload, '\n'))
	return err
}
