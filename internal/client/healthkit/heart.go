package healthkit

import (
	"context"
	"net/http"
)

type heartService struct {
	client *Client
}

func (s *heartService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[HeartSummary], error) {
	const route = "/v1/heart/daily"

	var resp PaginatedResponse[HeartSummary]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
