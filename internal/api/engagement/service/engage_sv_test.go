package engagementService

import (
	engagementRepository "ProjectInkwell/internal/api/engagement/repository"
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngagementStore struct {
	reviews   []engagementRepository.FeedReviewRow
	blogCount int
	userCount int
	mostLiked engagementRepository.MostLikedRow
	hasBlogs  bool
}

func (f *fakeEngagementStore) NewClient(tx bool) (engagementRepository.Client, error) {
	return engagementRepository.Client{
		Engagement: &fakeEngagement{store: f},
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

type fakeEngagement struct{ store *fakeEngagementStore }

func (f *fakeEngagement) ListAllReviews(_ context.Context) ([]engagementRepository.FeedReviewRow, error) {
	return f.store.reviews, nil
}

func (f *fakeEngagement) CountBlogs(_ context.Context) (int, error) {
	return f.store.blogCount, nil
}

func (f *fakeEngagement) CountUsers(_ context.Context) (int, error) {
	return f.store.userCount, nil
}

func (f *fakeEngagement) MostLikedBlog(_ context.Context) (engagementRepository.MostLikedRow, bool, error) {
	return f.store.mostLiked, f.store.hasBlogs, nil
}

func newTestEngagementService(store *fakeEngagementStore) IEngagementService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, store)
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func TestAllReviewsAppliesDefaults(t *testing.T) {
	reviewedAt := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	store := &fakeEngagementStore{
		reviews: []engagementRepository.FeedReviewRow{
			{
				ID:        nullStr("r-1"),
				BlogID:    nullStr("b-1"),
				BlogTitle: nullStr("First Post"),
				UserID:    nullStr("alice"),
				UserName:  nullStr("Alice"),
				UserImage: nullStr("https://img.example.com/alice.png"),
				Comment:   nullStr("Great"),
				Rating:    sql.NullInt64{Int64: 5, Valid: true},
				CreatedAt: sql.NullTime{Time: reviewedAt, Valid: true},
			},
			{
				ID:        nullStr("r-2"),
				BlogID:    nullStr("b-1"),
				BlogTitle: nullStr("First Post"),
				Comment:   nullStr("Anonymous drive-by"),
			},
		},
	}
	service := newTestEngagementService(store)

	result, err := service.AllReviews(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)

	full := result.Reviews[0]
	assert.Equal(t, "Alice", full.UserName)
	assert.Equal(t, 5, full.Rating)
	assert.Equal(t, reviewedAt, full.Date)
	assert.Equal(t, "First Post", full.BlogTitle)

	bare := result.Reviews[1]
	assert.Equal(t, "Guest", bare.UserName)
	assert.NotEmpty(t, bare.UserImage)
	assert.Equal(t, 0, bare.Rating)
	assert.WithinDuration(t, time.Now(), bare.Date, time.Minute)
}

func TestStats(t *testing.T) {
	store := &fakeEngagementStore{
		blogCount: 7,
		userCount: 3,
		hasBlogs:  true,
		mostLiked: engagementRepository.MostLikedRow{
			ID:    nullStr("b-9"),
			Title: nullStr("Popular"),
			Likes: 12,
		},
	}
	service := newTestEngagementService(store)

	result, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalBlogs)
	assert.Equal(t, 3, result.TotalUsers)
	require.NotNil(t, result.MostLiked)
	assert.Equal(t, "b-9", result.MostLiked.ID)
	assert.Equal(t, 12, result.MostLiked.Likes)
}

func TestStatsWithEmptyStore(t *testing.T) {
	service := newTestEngagementService(&fakeEngagementStore{})

	result, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.TotalBlogs)
	assert.Nil(t, result.MostLiked)
}
