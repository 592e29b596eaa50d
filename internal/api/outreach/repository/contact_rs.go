package outreachRepository

import (
	"ProjectInkwell/internal/api/outreach"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"context"
	"database/sql"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type ContactDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Message   sql.NullString `db:"message"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *contactsRepository) CreateContact(ctx context.Context, contact entity.Contact) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         contact.ID,
		"name":       contact.Name,
		"email":      contact.Email,
		"message":    contact.Message,
		"created_at": contact.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateContact, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContact named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating contact")
		return err
	}

	return nil
}

func (r *contactsRepository) ListContacts(ctx context.Context) ([]entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ContactDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryListContacts)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing contacts")
		return nil, err
	}

	result := make([]entity.Contact, 0, len(rows))
	for _, row := range rows {
		result = append(result, entity.Contact{
			ID:        row.ID.String,
			Name:      row.Name.String,
			Email:     row.Email.String,
			Message:   row.Message.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return result, nil
}

func (r *contactsRepository) DeleteContact(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteContact, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteContact named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting contact")
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteContact no rows found")
		return outreach.ErrContactNotFound
	}

	return nil
}
