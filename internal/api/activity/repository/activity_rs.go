package activityRepository

import (
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type ActivityDB struct {
	ID        sql.NullString `db:"id"`
	UserUID   sql.NullString `db:"user_uid"`
	UserEmail sql.NullString `db:"user_email"`
	Type      sql.NullString `db:"type"`
	Message   sql.NullString `db:"message"`
	BlogID    sql.NullString `db:"blog_id"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *activitiesRepository) CreateActivity(ctx context.Context, activity entity.Activity) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         activity.ID,
		"user_uid":   activity.UserUID,
		"user_email": activity.UserEmail,
		"type":       activity.Type,
		"message":    activity.Message,
		"blog_id":    activity.BlogID,
		"created_at": activity.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateActivity, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateActivity")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating activity")
		return err
	}

	return nil
}

func (r *activitiesRepository) ListByUID(ctx context.Context, uid string) ([]entity.Activity, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ActivityDB

	argsKV := map[string]interface{}{
		"user_uid": uid,
	}

	query, args, err := sqlx.Named(queryListActivitiesByUID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByUID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"uid":        uid,
			"error":      err.Error(),
		}).Error("Database error when listing activities")
		return nil, err
	}

	result := make([]entity.Activity, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeActivity(row))
	}

	return result, nil
}

func makeActivity(row ActivityDB) entity.Activity {
	return entity.Activity{
		ID:        row.ID.String,
		UserUID:   row.UserUID.String,
		UserEmail: row.UserEmail.String,
		Type:      row.Type.String,
		Message:   row.Message.String,
		BlogID:    row.BlogID.String,
		CreatedAt: row.CreatedAt,
	}
}
