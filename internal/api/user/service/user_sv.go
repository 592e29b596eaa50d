package userService

import (
	users "ProjectInkwell/internal/api/user"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

// SyncOnLogin upserts the caller's profile record: first login creates it
// with the default role, later logins refresh the mutable profile fields.
// The role is never written by this path.
func (s *userService) SyncOnLogin(ctx context.Context, identity entity.Identity, req users.SyncUserRequest) (users.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return users.UserResponse{}, err
	}
	defer repo.Rollback()

	displayName := req.DisplayName
	if displayName == "" {
		displayName = identity.Name
	}
	photoURL := req.PhotoURL
	if photoURL == "" {
		photoURL = identity.Photo
	}

	existing, err := repo.Users.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      identity.Email,
			"error":      err.Error(),
		}).Error("Failed to look up user")
		return users.UserResponse{}, users.ErrSyncUser
	}

	if errors.Is(err, users.ErrUserNotFound) {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return users.UserResponse{}, err
		}

		now := time.Now()
		user := entity.User{
			ID:          id,
			UID:         identity.UID,
			DisplayName: displayName,
			Email:       identity.Email,
			PhotoURL:    photoURL,
			Role:        entity.RoleUser,
			CreatedAt:   now,
			LastLogin:   now,
		}

		if err := repo.Users.CreateUser(ctx, user); err != nil {
			if errors.Is(err, users.ErrEmailAlreadyInUse) {
				return users.UserResponse{}, err
			}
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create user")
			return users.UserResponse{}, users.ErrSyncUser
		}

		if err := repo.Commit(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to commit transaction")
			return users.UserResponse{}, users.ErrSyncUser
		}

		return s.makeUserResponse(user), nil
	}

	update := entity.User{
		UID:         identity.UID,
		DisplayName: displayName,
		Email:       identity.Email,
		PhotoURL:    photoURL,
	}

	if err := repo.Users.UpdateOnLogin(ctx, update); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      identity.Email,
			"error":      err.Error(),
		}).Error("Failed to update user on login")
		return users.UserResponse{}, users.ErrSyncUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return users.UserResponse{}, users.ErrSyncUser
	}

	existing.UID = identity.UID
	if displayName != "" {
		existing.DisplayName = displayName
	}
	if photoURL != "" {
		existing.PhotoURL = photoURL
	}
	existing.LastLogin = time.Now()

	return s.makeUserResponse(existing), nil
}

// RoleByEmail resolves the stored role for an email. An unknown email is the
// default role with no record created: unknown users are never auto-elevated.
func (s *userService) RoleByEmail(ctx context.Context, email string) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return "", err
	}

	user, err := repo.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return entity.RoleUser, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
			"error":      err.Error(),
		}).Error("Failed to look up user role")
		return "", err
	}

	if user.Role == "" {
		return entity.RoleUser, nil
	}

	return user.Role, nil
}

func (s *userService) Profile(ctx context.Context, email string) (users.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return users.UserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      email,
			}).Warn("User not found")
			return users.UserResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
			"error":      err.Error(),
		}).Error("Failed to get user profile")
		return users.UserResponse{}, err
	}

	return s.makeUserResponse(user), nil
}

func (s *userService) makeUserResponse(user entity.User) users.UserResponse {
	return users.UserResponse{
		ID:          user.ID,
		UID:         user.UID,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		PhotoURL:    user.PhotoURL,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		LastLogin:   user.LastLogin,
	}
}
