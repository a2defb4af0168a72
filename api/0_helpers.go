package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/todos/service"
	"github.com/fulldump/todos/todo"
)

var ErrUnavailable = errors.New("temporary unavailable")

// BadRequestError is returned by handlers when the client sent something that
// can not be turned into a store operation.
type BadRequestError struct {
	Message     string
	Description string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func badRequest(description string, err error) error {
	return &BadRequestError{
		Message:     err.Error(),
		Description: description,
	}
}

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := s.Status()
			if status != todo.StatusOperating {
				box.SetError(ctx, fmt.Errorf("%w: %s", ErrUnavailable, status))
				return
			}
			next(ctx)
		}
	}
}

// PrettyErrorInterceptor is the only place where store and handler errors
// become HTTP status codes.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		status, description := classify(ctx, err)
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}

func classify(ctx context.Context, err error) (int, string) {

	badRequestErr := &BadRequestError{}

	switch {
	case errors.Is(err, todo.ErrNotFound):
		return http.StatusNotFound, fmt.Sprintf("todo '%s' not found", box.GetUrlParameter(ctx, "id"))

	case errors.As(err, &badRequestErr):
		return http.StatusBadRequest, badRequestErr.Description

	case errors.Is(err, ErrUnavailable), errors.Is(err, todo.ErrStopped):
		return http.StatusServiceUnavailable, "the store is not accepting operations"

	case errors.Is(err, box.ErrResourceNotFound):
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())

	case errors.Is(err, box.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	}

	return http.StatusInternalServerError, "Unexpected error"
}
