package healthkit

import (
	"context"
	"net/http"
)

type activityService struct {
	client *Client
}

func (s *activityService) List(ctx context.Context, params *ListParams) (*PaginatedResponse[ActivitySummary], error) {
	const route = "/v1/activity/daily"

	var resp PaginatedResponse[ActivitySummary]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
