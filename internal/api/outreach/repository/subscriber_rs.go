package outreachRepository

import (
	"ProjectInkwell/internal/api/outreach"
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

type SubscriberDB struct {
	Email     sql.NullString `db:"email"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *subscribersRepository) CreateSubscriber(ctx context.Context, subscriber entity.Subscriber) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"email":      subscriber.Email,
		"created_at": subscriber.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateSubscriber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSubscriber named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      subscriber.Email,
			}).Warn("Email already subscribed")
			return outreach.ErrAlreadySubscribed
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating subscriber")
		return err
	}

	return nil
}

func (r *subscribersRepository) ListSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []SubscriberDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryListSubscribers)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing subscribers")
		return nil, err
	}

	result := make([]entity.Subscriber, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.Subscriber{
			Email:     row.Email.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return result, nil
}

func (r *subscribersRepository) DeleteSubscriber(ctx context.Context, email string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryDeleteSubscriber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSubscriber named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting subscriber")
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
		}).Warn("DeleteSubscriber no rows found")
		return outreach.ErrSubscriberNotFound
	}

	return nil
}
