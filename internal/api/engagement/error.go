package engagement

import "ProjectInkwell/pkg/response"

var (
	ErrListReviews = response.NewError(500, "failed to list reviews")
	ErrGetStats    = response.NewError(500, "failed to get stats")
)
