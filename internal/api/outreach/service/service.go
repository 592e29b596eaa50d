package outreachService

import (
	"ProjectInkwell/internal/api/outreach"
	outreachRepository "ProjectInkwell/internal/api/outreach/repository"
	"ProjectInkwell/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type IOutreachService interface {
	Subscribe(ctx context.Context, req outreach.SubscribeRequest) (outreach.SubscriberResponse, error)
	ListSubscribers(ctx context.Context) (outreach.SubscriberListResponse, error)
	RemoveSubscriber(ctx context.Context, email string) error

	SubmitContact(ctx context.Context, req outreach.ContactRequest) (outreach.ContactResponse, error)
	ListContacts(ctx context.Context) (outreach.ContactListResponse, error)
	RemoveContact(ctx context.Context, id string) error
}

type outreachService struct {
	log          *logrus.Logger
	outreachRepo outreachRepository.Repository
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	outreachRepo outreachRepository.Repository,
	utils utils.IUtils,
) IOutreachService {
	return &outreachService{
		log:          log,
		outreachRepo: outreachRepo,
		utils:        utils,
	}
}
