package api

import (
	"context"

	"github.com/fulldump/box"
)

func deleteTodo(ctx context.Context) error {

	id, err := parseID(box.GetUrlParameter(ctx, "id"))
	if err != nil {
		return err
	}

	return GetServicer(ctx).Delete(ctx, id)
}
