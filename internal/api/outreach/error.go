package outreach

import "ProjectInkwell/pkg/response"

var (
	ErrAlreadySubscribed  = response.NewError(400, "email already subscribed")
	ErrSubscriberNotFound = response.NewError(404, "subscriber not found")
	ErrContactNotFound    = response.NewError(404, "contact not found")
	ErrSubscribe          = response.NewError(500, "failed to subscribe")
	ErrListSubscribers    = response.NewError(500, "failed to list subscribers")
	ErrRemoveSubscriber   = response.NewError(500, "failed to remove subscriber")
	ErrCreateContact      = response.NewError(500, "failed to submit contact message")
	ErrListContacts       = response.NewError(500, "failed to list contact messages")
	ErrRemoveContact      = response.NewError(500, "failed to remove contact message")
)
