package users

import "ProjectInkwell/pkg/response"

var (
	ErrUserNotFound      = response.NewError(404, "user not found")
	ErrEmailAlreadyInUse = response.NewError(409, "email already in use")
	ErrSyncUser          = response.NewError(500, "failed to sync user")
)
