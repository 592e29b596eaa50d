package userRepository

import (
	users "ProjectInkwell/internal/api/user"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"time"
)

type UserDB struct {
	ID          sql.NullString `db:"id"`
	UID         sql.NullString `db:"uid"`
	DisplayName sql.NullString `db:"display_name"`
	Email       sql.NullString `db:"email"`
	PhotoURL    sql.NullString `db:"photo_url"`
	Role        sql.NullString `db:"role"`
	CreatedAt   sql.NullTime   `db:"created_at"`
	LastLogin   sql.NullTime   `db:"last_login"`
}

func (r *usersRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           user.ID,
		"uid":          user.UID,
		"display_name": user.DisplayName,
		"email":        user.Email,
		"photo_url":    user.PhotoURL,
		"role":         user.Role,
		"created_at":   user.CreatedAt,
		"last_login":   user.LastLogin,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      user.Email,
			}).Warn("Email already in use")
			return users.ErrEmailAlreadyInUse
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *usersRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryGetUserByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      email,
			}).Debug("GetByEmail no rows found")
			return entity.User{}, users.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *usersRepository) UpdateOnLogin(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"uid":          user.UID,
		"display_name": user.DisplayName,
		"photo_url":    user.PhotoURL,
		"last_login":   time.Now(),
		"email":        user.Email,
	}

	query, args, err := sqlx.Named(queryUpdateUserOnLogin, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOnLogin named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOnLogin execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOnLogin rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      user.Email,
		}).Warn("UpdateOnLogin no rows affected")
		return users.ErrUserNotFound
	}

	return nil
}

func (r *usersRepository) makeUser(user UserDB) entity.User {
	return entity.User{
		ID:          user.ID.String,
		UID:         user.UID.String,
		DisplayName: user.DisplayName.String,
		Email:       user.Email.String,
		PhotoURL:    user.PhotoURL.String,
		Role:        user.Role.String,
		CreatedAt:   user.CreatedAt.Time,
		LastLogin:   user.LastLogin.Time,
	}
}
