package blogService

import (
	blogs "ProjectInkwell/internal/api/blog"
	blogRepository "ProjectInkwell/internal/api/blog/repository"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/utils"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	blogs   map[string]entity.Blog
	likes   map[string]map[string]bool
	reviews map[string][]entity.Review
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		blogs:   make(map[string]entity.Blog),
		likes:   make(map[string]map[string]bool),
		reviews: make(map[string][]entity.Review),
	}
}

func (f *fakeStore) NewClient(tx bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    &fakeBlogs{store: f},
		Likes:    &fakeLikes{store: f},
		Reviews:  &fakeReviews{store: f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeBlogs struct{ store *fakeStore }

func (f *fakeBlogs) CreateBlog(_ context.Context, blog entity.Blog) error {
	f.store.blogs[blog.ID] = blog
	return nil
}

func (f *fakeBlogs) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	blog, ok := f.store.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return blog, nil
}

func (f *fakeBlogs) GetAllBlogs(_ context.Context) ([]entity.Blog, error) {
	result := make([]entity.Blog, 0, len(f.store.blogs))
	for _, blog := range f.store.blogs {
		result = append(result, blog)
	}
	return result, nil
}

func (f *fakeBlogs) GetBlogsByAuthorEmail(_ context.Context, email string) ([]entity.Blog, error) {
	var result []entity.Blog
	for _, blog := range f.store.blogs {
		if blog.AuthorEmail == email {
			result = append(result, blog)
		}
	}
	return result, nil
}

func (f *fakeBlogs) UpdateBlog(_ context.Context, blog entity.Blog) error {
	existing, ok := f.store.blogs[blog.ID]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	if blog.Title != "" {
		existing.Title = blog.Title
	}
	if blog.Content != "" {
		existing.Content = blog.Content
	}
	if blog.Category != "" {
		existing.Category = blog.Category
	}
	if blog.ImageURL != "" {
		existing.ImageURL = blog.ImageURL
	}
	f.store.blogs[blog.ID] = existing
	return nil
}

func (f *fakeBlogs) ClearBlogImage(_ context.Context, id string) error {
	existing, ok := f.store.blogs[id]
	if !ok {
		return blogs.ErrBlogNotFound
	}
	existing.ImageURL = ""
	f.store.blogs[id] = existing
	return nil
}

func (f *fakeBlogs) DeleteBlog(_ context.Context, id string) error {
	if _, ok := f.store.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}
	delete(f.store.blogs, id)
	delete(f.store.likes, id)
	delete(f.store.reviews, id)
	return nil
}

type fakeLikes struct{ store *fakeStore }

func (f *fakeLikes) AddLike(_ context.Context, blogID, userID string) error {
	if _, ok := f.store.blogs[blogID]; !ok {
		return blogs.ErrBlogNotFound
	}
	set, ok := f.store.likes[blogID]
	if !ok {
		set = make(map[string]bool)
		f.store.likes[blogID] = set
	}
	if set[userID] {
		return blogs.ErrAlreadyLiked
	}
	set[userID] = true
	return nil
}

func (f *fakeLikes) IncrementLikes(_ context.Context, blogID string) (int, error) {
	blog, ok := f.store.blogs[blogID]
	if !ok {
		return 0, blogs.ErrBlogNotFound
	}
	blog.Likes++
	f.store.blogs[blogID] = blog
	return blog.Likes, nil
}

func (f *fakeLikes) ListUserIDs(_ context.Context, blogID string) ([]string, error) {
	result := make([]string, 0, len(f.store.likes[blogID]))
	for userID := range f.store.likes[blogID] {
		result = append(result, userID)
	}
	return result, nil
}

type fakeReviews struct{ store *fakeStore }

func (f *fakeReviews) CreateReview(_ context.Context, review entity.Review) error {
	if _, ok := f.store.blogs[review.BlogID]; !ok {
		return blogs.ErrBlogNotFound
	}
	f.store.reviews[review.BlogID] = append(f.store.reviews[review.BlogID], review)
	return nil
}

func (f *fakeReviews) ListByBlog(_ context.Context, blogID string) ([]entity.Review, error) {
	return f.store.reviews[blogID], nil
}

func (f *fakeReviews) DeleteReview(_ context.Context, blogID, reviewID string) error {
	reviews := f.store.reviews[blogID]
	for i, review := range reviews {
		if review.ID == reviewID {
			f.store.reviews[blogID] = append(reviews[:i], reviews[i+1:]...)
			return nil
		}
	}
	return blogs.ErrReviewNotFound
}

type fakeS3 struct{}

func (fakeS3) UploadFile(_ *multipart.FileHeader) (string, error) { return "blogs/test.png", nil }
func (fakeS3) PresignUrl(fileName string) (string, error) {
	return "https://cdn.example.com/" + fileName, nil
}
func (fakeS3) DeleteFile(_ string) error { return nil }

type fakeRecorder struct {
	records []entity.Activity
}

func (f *fakeRecorder) Record(_ context.Context, identity entity.Identity, activityType, message, blogID string) error {
	f.records = append(f.records, entity.Activity{
		UserUID:   identity.UID,
		UserEmail: identity.Email,
		Type:      activityType,
		Message:   message,
		BlogID:    blogID,
	})
	return nil
}

func newTestService(store *fakeStore, recorder *fakeRecorder) IBlogsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewBlogsService(logger, store, fakeS3{}, utils.New(), recorder)
}

func testIdentity() entity.Identity {
	return entity.Identity{UID: "uid-1", Email: "author@example.com", Name: "Author"}
}

func TestCreateBlogForcesAuthorFromIdentity(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	service := newTestService(store, recorder)

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:    "First Post",
		Content:  "Hello",
		Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	stored := store.blogs[id]
	assert.Equal(t, "uid-1", stored.AuthorUID)
	assert.Equal(t, "author@example.com", stored.AuthorEmail)
	assert.Equal(t, 0, stored.Likes)

	require.Len(t, recorder.records, 1)
	assert.Equal(t, entity.ActivityTypeCreate, recorder.records[0].Type)
	assert.Equal(t, id, recorder.records[0].BlogID)
	assert.Equal(t, "uid-1", recorder.records[0].UserUID)
}

func TestLikeBlogCountsDistinctUsers(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "T", Content: "C", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	users := []string{"alice", "bob", "carol"}
	for i, user := range users {
		likes, err := service.LikeBlog(context.Background(), id, user)
		require.NoError(t, err)
		assert.Equal(t, i+1, likes)
	}

	blog, err := service.GetBlogByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, len(users), blog.Likes)
	assert.Len(t, blog.LikedUsers, len(users))
}

func TestLikeBlogRejectsDuplicate(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "T", Content: "C", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	_, err = service.LikeBlog(context.Background(), id, "alice")
	require.NoError(t, err)

	_, err = service.LikeBlog(context.Background(), id, "alice")
	assert.ErrorIs(t, err, blogs.ErrAlreadyLiked)

	blog, err := service.GetBlogByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, blog.Likes)
	assert.Equal(t, []string{"alice"}, blog.LikedUsers)
}

func TestLikeBlogMissingOrMalformedID(t *testing.T) {
	service := newTestService(newFakeStore(), &fakeRecorder{})

	_, err := service.LikeBlog(context.Background(), "not-a-ulid", "alice")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)

	_, err = service.LikeBlog(context.Background(), "01HQZX5J8N3V2K9W4T6Y7B8C9D", "alice")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestAddAndRemoveReviewRoundTrip(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "T", Content: "C", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	result, err := service.AddReview(context.Background(), id, blogs.AddReviewRequest{
		UserID:  "alice",
		Comment: "Nice read",
		Rating:  4,
	})
	require.NoError(t, err)
	require.Len(t, result.Reviews, 1)
	reviewID := result.Reviews[0].ID
	require.NotEmpty(t, reviewID)

	require.NoError(t, service.RemoveReview(context.Background(), id, reviewID))

	blog, err := service.GetBlogByID(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, blog.Reviews)
}

func TestAddReviewMalformedID(t *testing.T) {
	service := newTestService(newFakeStore(), &fakeRecorder{})

	_, err := service.AddReview(context.Background(), "nope", blogs.AddReviewRequest{
		UserID: "alice", Comment: "x",
	})
	assert.ErrorIs(t, err, blogs.ErrInvalidBlogID)
}

func TestRemoveReviewDistinguishesMissingBlogFromMissingReview(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	err := service.RemoveReview(context.Background(), "01HQZX5J8N3V2K9W4T6Y7B8C9D", "01HQZX5J8N3V2K9W4T6Y7B8C9E")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "T", Content: "C", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	err = service.RemoveReview(context.Background(), id, "01HQZX5J8N3V2K9W4T6Y7B8C9E")
	assert.ErrorIs(t, err, blogs.ErrReviewNotFound)
}

func TestUpdateBlogOwnershipAndMerge(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "Original", Content: "Body", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	stranger := entity.Identity{UID: "uid-2", Email: "other@example.com"}
	err = service.UpdateBlog(context.Background(), id, blogs.UpdateBlogRequest{Title: "Hijacked"}, stranger, nil)
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)

	err = service.UpdateBlog(context.Background(), id, blogs.UpdateBlogRequest{Title: "Renamed"}, testIdentity(), nil)
	require.NoError(t, err)

	stored := store.blogs[id]
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "Body", stored.Content)
	assert.Equal(t, "tech", stored.Category)
}

func TestUpdateBlogUnownedSkipsOwnershipCheck(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "Original", Content: "Body", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	require.NoError(t, service.UpdateBlogUnowned(context.Background(), id, blogs.UpdateBlogRequest{Title: "Moderated"}))
	assert.Equal(t, "Moderated", store.blogs[id].Title)

	err = service.UpdateBlogUnowned(context.Background(), "01HQZX5J8N3V2K9W4T6Y7B8C9D", blogs.UpdateBlogRequest{Title: "X"})
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestDeleteBlog(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	id, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "T", Content: "C", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	stranger := entity.Identity{UID: "uid-2", Email: "other@example.com"}
	err = service.DeleteBlog(context.Background(), id, stranger)
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)

	require.NoError(t, service.DeleteBlog(context.Background(), id, testIdentity()))

	err = service.DeleteBlog(context.Background(), id, testIdentity())
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetBlogByIDMalformed(t *testing.T) {
	service := newTestService(newFakeStore(), &fakeRecorder{})

	_, err := service.GetBlogByID(context.Background(), "nope")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetBlogsByAuthor(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeRecorder{})

	_, err := service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "Mine", Content: "C", Category: "tech",
	}, testIdentity(), nil)
	require.NoError(t, err)

	other := entity.Identity{UID: "uid-2", Email: "other@example.com"}
	_, err = service.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title: "Theirs", Content: "C", Category: "tech",
	}, other, nil)
	require.NoError(t, err)

	result, err := service.GetBlogsByAuthor(context.Background(), "author@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Mine", result.Blogs[0].Title)
	assert.Equal(t, "author@example.com", result.Blogs[0].Author.Email)
}
