package activityService

import (
	activityRepository "ProjectInkwell/internal/api/activity/repository"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/utils"
	"context"
	"io"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityStore struct {
	records []entity.Activity
}

func (f *fakeActivityStore) NewClient(tx bool) (activityRepository.Client, error) {
	return activityRepository.Client{
		Activities: &fakeActivities{store: f},
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

type fakeActivities struct{ store *fakeActivityStore }

func (f *fakeActivities) CreateActivity(_ context.Context, activity entity.Activity) error {
	f.store.records = append(f.store.records, activity)
	return nil
}

func (f *fakeActivities) ListByUID(_ context.Context, uid string) ([]entity.Activity, error) {
	var result []entity.Activity
	for _, record := range f.store.records {
		if record.UserUID == uid {
			result = append(result, record)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func newTestActivityService(store *fakeActivityStore) IActivityService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, store, utils.New())
}

func TestRecordSnapshotsCaller(t *testing.T) {
	store := &fakeActivityStore{}
	service := newTestActivityService(store)

	identity := entity.Identity{UID: "uid-1", Email: "author@example.com"}
	err := service.Record(context.Background(), identity, entity.ActivityTypeCreate, `Created blog "First"`, "blog-1")
	require.NoError(t, err)

	require.Len(t, store.records, 1)
	record := store.records[0]
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "uid-1", record.UserUID)
	assert.Equal(t, "author@example.com", record.UserEmail)
	assert.Equal(t, entity.ActivityTypeCreate, record.Type)
	assert.Equal(t, "blog-1", record.BlogID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestRecordAnonymousCallerDefaults(t *testing.T) {
	store := &fakeActivityStore{}
	service := newTestActivityService(store)

	err := service.Record(context.Background(), entity.Identity{}, entity.ActivityTypeCreate, "Created blog", "")
	require.NoError(t, err)

	require.Len(t, store.records, 1)
	assert.Equal(t, "guest", store.records[0].UserUID)
	assert.Equal(t, "unknown", store.records[0].UserEmail)
}

func TestListForUIDScopesToCaller(t *testing.T) {
	store := &fakeActivityStore{}
	service := newTestActivityService(store)

	mine := entity.Identity{UID: "uid-1", Email: "me@example.com"}
	theirs := entity.Identity{UID: "uid-2", Email: "them@example.com"}

	require.NoError(t, service.Record(context.Background(), mine, entity.ActivityTypeCreate, "first", "b1"))
	require.NoError(t, service.Record(context.Background(), theirs, entity.ActivityTypeCreate, "other", "b2"))
	require.NoError(t, service.Record(context.Background(), mine, entity.ActivityTypeCreate, "second", "b3"))

	result, err := service.ListForUID(context.Background(), "uid-1")
	require.NoError(t, err)

	require.Equal(t, 2, result.Total)
	for _, activity := range result.Activities {
		assert.Equal(t, "uid-1", activity.UserUID)
	}

	// Newest first
	assert.Equal(t, "second", result.Activities[0].Message)
	assert.Equal(t, "first", result.Activities[1].Message)
}
