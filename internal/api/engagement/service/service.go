package engagementService

import (
	"ProjectInkwell/internal/api/engagement"
	engagementRepository "ProjectInkwell/internal/api/engagement/repository"
	"context"
	"github.com/sirupsen/logrus"
)

type IEngagementService interface {
	AllReviews(ctx context.Context) (engagement.ReviewFeedResponse, error)
	Stats(ctx context.Context) (engagement.StatsResponse, error)
}

type engagementService struct {
	log            *logrus.Logger
	engagementRepo engagementRepository.Repository
}

func New(
	log *logrus.Logger,
	engagementRepo engagementRepository.Repository,
) IEngagementService {
	return &engagementService{
		log:            log,
		engagementRepo: engagementRepo,
	}
}
