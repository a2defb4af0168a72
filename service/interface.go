package service

import (
	"context"

	"github.com/fulldump/todos/todo"
)

// Servicer is everything the HTTP layer needs from the store.
type Servicer interface {
	Create(ctx context.Context, insert todo.Insert) (uint64, error)
	ReadAll(ctx context.Context) ([]*todo.Todo, error)
	ReadOne(ctx context.Context, id uint64) (*todo.Todo, error)
	Update(ctx context.Context, id uint64, insert todo.Insert) (*todo.Todo, error)
	Delete(ctx context.Context, id uint64) error
	Find(ctx context.Context, match func(row *todo.Todo) (bool, error)) ([]*todo.Todo, error)
	Len(ctx context.Context) (int, error)
	Status() todo.Status
}

var _ Servicer = (*todo.Store)(nil)
