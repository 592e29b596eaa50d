package engagementService

import (
	"ProjectInkwell/internal/api/engagement"
	engagementRepository "ProjectInkwell/internal/api/engagement/repository"
	contextPkg "ProjectInkwell/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

const defaultReviewerImage = "https://www.gravatar.com/avatar/?d=mp"

// AllReviews flattens every post's reviews into one feed, the parent post's
// id and title attached to each entry. Optional reviewer fields left empty
// at submission time are filled with display defaults here, not in the store.
func (s *engagementService) AllReviews(ctx context.Context) (engagement.ReviewFeedResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.engagementRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return engagement.ReviewFeedResponse{}, engagement.ErrListReviews
	}

	rows, err := repo.Engagement.ListAllReviews(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list reviews")
		return engagement.ReviewFeedResponse{}, engagement.ErrListReviews
	}

	reviews := make([]engagement.FeedReviewResponse, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, makeFeedReview(row))
	}

	return engagement.ReviewFeedResponse{
		Reviews: reviews,
		Total:   len(reviews),
	}, nil
}

func (s *engagementService) Stats(ctx context.Context) (engagement.StatsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.engagementRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return engagement.StatsResponse{}, engagement.ErrGetStats
	}

	totalBlogs, err := repo.Engagement.CountBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count blogs")
		return engagement.StatsResponse{}, engagement.ErrGetStats
	}

	totalUsers, err := repo.Engagement.CountUsers(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to count users")
		return engagement.StatsResponse{}, engagement.ErrGetStats
	}

	result := engagement.StatsResponse{
		TotalBlogs: totalBlogs,
		TotalUsers: totalUsers,
	}

	mostLiked, found, err := repo.Engagement.MostLikedBlog(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to find most liked blog")
		return engagement.StatsResponse{}, engagement.ErrGetStats
	}
	if found {
		result.MostLiked = &engagement.MostLikedResponse{
			ID:    mostLiked.ID.String,
			Title: mostLiked.Title.String,
			Likes: mostLiked.Likes,
		}
	}

	return result, nil
}

func makeFeedReview(row engagementRepository.FeedReviewRow) engagement.FeedReviewResponse {
	review := engagement.FeedReviewResponse{
		ID:        row.ID.String,
		BlogID:    row.BlogID.String,
		BlogTitle: row.BlogTitle.String,
		UserID:    row.UserID.String,
		UserName:  row.UserName.String,
		UserImage: row.UserImage.String,
		Comment:   row.Comment.String,
		Rating:    int(row.Rating.Int64),
	}

	if review.UserName == "" {
		review.UserName = "Guest"
	}
	if review.UserImage == "" {
		review.UserImage = defaultReviewerImage
	}
	if row.CreatedAt.Valid {
		review.Date = row.CreatedAt.Time
	} else {
		review.Date = time.Now()
	}

	return review
}
