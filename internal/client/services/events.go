package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

const landingEventsKey = "landing-events"

// EventService covers the event catalogue: member listings, the public
// landing-page subset, admin management, and participation.
type EventService interface {
	List(ctx context.Context) api.Result[[]models.Event]
	Landing(ctx context.Context) api.Result[[]models.Event]
	Get(ctx context.Context, id string) api.Result[models.Event]
	Create(ctx context.Context, in models.EventInput) api.Result[models.Event]
	Update(ctx context.Context, id string, in models.EventInput) api.Result[models.Event]
	Delete(ctx context.Context, id string) api.Result[struct{}]
	Join(ctx context.Context, id string) api.Result[models.EventParticipant]
	Leave(ctx context.Context, id string) api.Result[struct{}]
	Participants(ctx context.Context, id string) api.Result[[]models.EventParticipant]
	SetParticipation(ctx context.Context, id, status string) api.Result[models.EventParticipant]
}

type eventService struct {
	client api.Client
	cache  *gocache.Cache
}

// NewEventService constructs an EventService. cacheTTL bounds how stale the
// public landing listing may be; authenticated listings are never cached.
func NewEventService(client api.Client, cacheTTL time.Duration) EventService {
	return &eventService{
		client: client,
		cache:  gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *eventService) List(ctx context.Context) api.Result[[]models.Event] {
	return api.Decode[[]models.Event](s.client.Get(ctx, "/api/events"))
}

// Landing returns the public landing-page events. Successful responses are
// cached for the configured TTL; failures are never cached.
func (s *eventService) Landing(ctx context.Context) api.Result[[]models.Event] {
	if v, ok := s.cache.Get(landingEventsKey); ok {
		return api.OKResult(200, v.([]models.Event))
	}

	res := api.Decode[[]models.Event](s.client.Get(ctx, "/api/landing-events"))
	if res.OK {
		s.cache.SetDefault(landingEventsKey, res.Data)
	}
	return res
}

func (s *eventService) Get(ctx context.Context, id string) api.Result[models.Event] {
	if id == "" {
		return api.Invalid[models.Event]("event id is required")
	}
	return api.DecodeOne[models.Event](s.client.Get(ctx, "/api/events/"+id))
}

func (s *eventService) Create(ctx context.Context, in models.EventInput) api.Result[models.Event] {
	if in.Title == "" || in.EventDate.IsZero() {
		return api.Invalid[models.Event]("title and event date are required")
	}
	return api.DecodeOne[models.Event](s.client.Post(ctx, "/api/admin/events", in))
}

func (s *eventService) Update(ctx context.Context, id string, in models.EventInput) api.Result[models.Event] {
	if id == "" {
		return api.Invalid[models.Event]("event id is required")
	}
	return api.DecodeOne[models.Event](s.client.Put(ctx, "/api/admin/events/"+id, in))
}

func (s *eventService) Delete(ctx context.Context, id string) api.Result[struct{}] {
	if id == "" {
		return api.Invalid[struct{}]("event id is required")
	}
	return api.Decode[struct{}](s.client.Delete(ctx, "/api/admin/events/"+id))
}

func (s *eventService) Join(ctx context.Context, id string) api.Result[models.EventParticipant] {
	if id == "" {
		return api.Invalid[models.EventParticipant]("event id is required")
	}
	return api.DecodeOne[models.EventParticipant](s.client.Post(ctx, "/api/events/"+id+"/join", nil))
}

func (s *eventService) Leave(ctx context.Context, id string) api.Result[struct{}] {
	if id == "" {
		return api.Invalid[struct{}]("event id is required")
	}
	return api.Decode[struct{}](s.client.Delete(ctx, "/api/events/"+id+"/leave"))
}

func (s *eventService) Participants(ctx context.Context, id string) api.Result[[]models.EventParticipant] {
	if id == "" {
		return api.Invalid[[]models.EventParticipant]("event id is required")
	}
	return api.Decode[[]models.EventParticipant](s.client.Get(ctx, "/api/events/"+id+"/participants"))
}

func (s *eventService) SetParticipation(ctx context.Context, id, status string) api.Result[models.EventParticipant] {
	if id == "" {
		return api.Invalid[models.EventParticipant]("event id is required")
	}
	switch status {
	case models.ParticipationInterested, models.ParticipationConfirmed, models.ParticipationDeclined:
	default:
		return api.Invalid[models.EventParticipant]("unknown participation status: " + status)
	}
	return api.DecodeOne[models.EventParticipant](s.client.Put(ctx, "/api/events/"+id+"/participation",
		map[string]string{"participation_status": status}))
}
