package activityService

import (
	activities "ProjectInkwell/internal/api/activity"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

// Record appends one audit entry. The caller snapshot is taken at event
// time, so an anonymous caller is recorded as guest rather than rejected.
func (s *activityService) Record(ctx context.Context, identity entity.Identity, activityType, message, blogID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.activityRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return activities.ErrRecordActivity
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return activities.ErrRecordActivity
	}

	uid := identity.UID
	if uid == "" {
		uid = "guest"
	}
	email := identity.Email
	if email == "" {
		email = "unknown"
	}

	activity := entity.Activity{
		ID:        id,
		UserUID:   uid,
		UserEmail: email,
		Type:      activityType,
		Message:   message,
		BlogID:    blogID,
		CreatedAt: time.Now(),
	}

	if err := repo.Activities.CreateActivity(ctx, activity); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"uid":        uid,
			"type":       activityType,
			"error":      err.Error(),
		}).Error("Failed to record activity")
		return activities.ErrRecordActivity
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"uid":        uid,
		"type":       activityType,
	}).Info("Activity recorded")

	return nil
}

// ListForUID returns the caller's own audit trail, newest first.
func (s *activityService) ListForUID(ctx context.Context, uid string) (activities.ActivityListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.activityRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return activities.ActivityListResponse{}, activities.ErrListActivities
	}

	records, err := repo.Activities.ListByUID(ctx, uid)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"uid":        uid,
			"error":      err.Error(),
		}).Error("Failed to list activities")
		return activities.ActivityListResponse{}, activities.ErrListActivities
	}

	result := make([]activities.ActivityResponse, 0, len(records))
	for _, record := range records {
		result = append(result, activities.ActivityResponse{
			ID:        record.ID,
			UserUID:   record.UserUID,
			UserEmail: record.UserEmail,
			Type:      record.Type,
			Message:   record.Message,
			BlogID:    record.BlogID,
			CreatedAt: record.CreatedAt,
		})
	}

	return activities.ActivityListResponse{
		Activities: result,
		Total:      len(result),
	}, nil
}
