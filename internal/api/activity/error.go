package activities

import "ProjectInkwell/pkg/response"

var (
	ErrRecordActivity = response.NewError(500, "failed to record activity")
	ErrListActivities = response.NewError(500, "failed to list activities")
)
