package services

import (
	"context"
	"net/url"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

// ApplicationService covers membership applications: the public submission
// form and the admin review queue. Decisions are one-way; the server rejects
// a second decision and that rejection surfaces as a normal error result.
type ApplicationService interface {
	Submit(ctx context.Context, in models.NewApplication) api.Result[models.Application]
	List(ctx context.Context, status string) api.Result[[]models.Application]
	Get(ctx context.Context, id string) api.Result[models.Application]
	Approve(ctx context.Context, id string) api.Result[models.Application]
	Reject(ctx context.Context, id, reason string) api.Result[models.Application]
}

type applicationService struct {
	client api.Client
}

func NewApplicationService(client api.Client) ApplicationService {
	return &applicationService{client: client}
}

func (s *applicationService) Submit(ctx context.Context, in models.NewApplication) api.Result[models.Application] {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return api.Invalid[models.Application]("first name, last name and email are required")
	}
	return api.DecodeOne[models.Application](s.client.Post(ctx, "/api/applications", in))
}

// List returns the admin queue, optionally narrowed to one status.
func (s *applicationService) List(ctx context.Context, status string) api.Result[[]models.Application] {
	endpoint := "/api/admin/applications"
	if status != "" {
		switch status {
		case models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected:
		default:
			return api.Invalid[[]models.Application]("unknown application status: " + status)
		}
		endpoint += "?status=" + url.QueryEscape(status)
	}
	return api.Decode[[]models.Application](s.client.Get(ctx, endpoint))
}

func (s *applicationService) Get(ctx context.Context, id string) api.Result[models.Application] {
	if id == "" {
		return api.Invalid[models.Application]("application id is required")
	}
	return api.DecodeOne[models.Application](s.client.Get(ctx, "/api/admin/applications/"+id))
}

func (s *applicationService) Approve(ctx context.Context, id string) api.Result[models.Application] {
	return s.decide(ctx, id, models.ApplicationDecision{Decision: models.ApplicationApproved})
}

// Reject requires a reason so the applicant always learns why.
func (s *applicationService) Reject(ctx context.Context, id, reason string) api.Result[models.Application] {
	if reason == "" {
		return api.Invalid[models.Application]("a rejection reason is required")
	}
	return s.decide(ctx, id, models.ApplicationDecision{
		Decision:        models.ApplicationRejected,
		RejectionReason: reason,
	})
}

func (s *applicationService) decide(ctx context.Context, id string, d models.ApplicationDecision) api.Result[models.Application] {
	if id == "" {
		return api.Invalid[models.Application]("application id is required")
	}
	return api.DecodeOne[models.Application](s.client.Post(ctx, "/api/admin/applications/"+id+"/decision", d))
}
