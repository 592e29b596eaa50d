package outreachRepository

import (
	"ProjectInkwell/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Subscribers: &subscribersRepository{q: sqlExecutor, log: r.log},
		Contacts:    &contactsRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Subscribers interface {
		CreateSubscriber(ctx context.Context, subscriber entity.Subscriber) error
		ListSubscribers(ctx context.Context) ([]entity.Subscriber, error)
		DeleteSubscriber(ctx context.Context, email string) error
	}

	Contacts interface {
		CreateContact(ctx context.Context, contact entity.Contact) error
		ListContacts(ctx context.Context) ([]entity.Contact, error)
		DeleteContact(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type subscribersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type contactsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
