package api

import (
	"context"

	"github.com/fulldump/todos/service"
)

type contextKey string

const contextServicerKey contextKey = "servicer"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, contextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(contextServicerKey).(service.Servicer) // injectServicer is mounted on every todo resource
}
