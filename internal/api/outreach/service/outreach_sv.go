package outreachService

import (
	"ProjectInkwell/internal/api/outreach"
	"ProjectInkwell/internal/entity"
	contextPkg "ProjectInkwell/pkg/context"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"strings"
	"time"
)

func (s *outreachService) Subscribe(ctx context.Context, req outreach.SubscribeRequest) (outreach.SubscriberResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.outreachRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return outreach.SubscriberResponse{}, outreach.ErrSubscribe
	}

	subscriber := entity.Subscriber{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		CreatedAt: time.Now(),
	}

	if err := repo.Subscribers.CreateSubscriber(ctx, subscriber); err != nil {
		if errors.Is(err, outreach.ErrAlreadySubscribed) {
			return outreach.SubscriberResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      subscriber.Email,
			"error":      err.Error(),
		}).Error("Failed to create subscriber")
		return outreach.SubscriberResponse{}, outreach.ErrSubscribe
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"email":      subscriber.Email,
	}).Info("Subscriber added")

	return outreach.SubscriberResponse{
		Email:     subscriber.Email,
		CreatedAt: subscriber.CreatedAt,
	}, nil
}

func (s *outreachService) ListSubscribers(ctx context.Context) (outreach.SubscriberListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.outreachRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return outreach.SubscriberListResponse{}, outreach.ErrListSubscribers
	}

	subscribers, err := repo.Subscribers.ListSubscribers(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list subscribers")
		return outreach.SubscriberListResponse{}, outreach.ErrListSubscribers
	}

	result := make([]outreach.SubscriberResponse, 0, len(subscribers))
	for _, subscriber := range subscribers {
		result = append(result, outreach.SubscriberResponse{
			Email:     subscriber.Email,
			CreatedAt: subscriber.CreatedAt,
		})
	}

	return outreach.SubscriberListResponse{
		Subscribers: result,
		Total:       len(result),
	}, nil
}

func (s *outreachService) RemoveSubscriber(ctx context.Context, email string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.outreachRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return outreach.ErrRemoveSubscriber
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if err := repo.Subscribers.DeleteSubscriber(ctx, email); err != nil {
		if errors.Is(err, outreach.ErrSubscriberNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
			"error":      err.Error(),
		}).Error("Failed to delete subscriber")
		return outreach.ErrRemoveSubscriber
	}

	return nil
}

func (s *outreachService) SubmitContact(ctx context.Context, req outreach.ContactRequest) (outreach.ContactResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.outreachRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return outreach.ContactResponse{}, outreach.ErrCreateContact
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return outreach.ContactResponse{}, outreach.ErrCreateContact
	}

	contact := entity.Contact{
		ID:        id,
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := repo.Contacts.CreateContact(ctx, contact); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create contact")
		return outreach.ContactResponse{}, outreach.ErrCreateContact
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"contact_id": contact.ID,
	}).Info("Contact message submitted")

	return outreach.ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}, nil
}

func (s *outreachService) ListContacts(ctx context.Context) (outreach.ContactListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.outreachRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return outreach.ContactListResponse{}, outreach.ErrListContacts
	}

	contacts, err := repo.Contacts.ListContacts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list contacts")
		return outreach.ContactListResponse{}, outreach.ErrListContacts
	}

	result := make([]outreach.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, outreach.ContactResponse{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Message:   contact.Message,
			CreatedAt: contact.CreatedAt,
		})
	}

	return outreach.ContactListResponse{
		Contacts: result,
		Total:    len(result),
	}, nil
}

func (s *outreachService) RemoveContact(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.outreachRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return outreach.ErrRemoveContact
	}

	if !s.utils.IsValidULID(id) {
		return outreach.ErrContactNotFound
	}

	if err := repo.Contacts.DeleteContact(ctx, id); err != nil {
		if errors.Is(err, outreach.ErrContactNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete contact")
		return outreach.ErrRemoveContact
	}

	return nil
}
