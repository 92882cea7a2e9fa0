package healthkit

import "context"

type SleepService interface {
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[SleepSummary], error)
}

type HeartService interface {
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[HeartSummary], error)
}

type ActivityService interface {
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[ActivitySummary], error)
}

type WorkoutService interface {
	Get(ctx context.Context, id string) (*Workout, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResponse[Workout], error)
}
