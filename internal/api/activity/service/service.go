package activityService

import (
	activities "ProjectInkwell/internal/api/activity"
	activityRepository "ProjectInkwell/internal/api/activity/repository"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type IActivityService interface {
	Record(ctx context.Context, identity entity.Identity, activityType, message, blogID string) error
	ListForUID(ctx context.Context, uid string) (activities.ActivityListResponse, error)
}

type activityService struct {
	log          *logrus.Logger
	activityRepo activityRepository.Repository
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	activityRepo activityRepository.Repository,
	utils utils.IUtils,
) IActivityService {
	return &activityService{
		log:          log,
		activityRepo: activityRepo,
		utils:        utils,
	}
}
