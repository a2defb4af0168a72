package api

import (
	"context"
)

type countResponse struct {
	Total int `json:"total"`
}

func countTodos(ctx context.Context) (*countResponse, error) {

	total, err := GetServicer(ctx).Len(ctx)
	if err != nil {
		return nil, err
	}

	return &countResponse{Total: total}, nil
}
