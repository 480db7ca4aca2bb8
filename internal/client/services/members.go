package services

import (
	"context"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

// MemberService covers the admin member directory.
type MemberService interface {
	List(ctx context.Context) api.Result[[]models.User]
	Get(ctx context.Context, id string) api.Result[models.User]
	SetStatus(ctx context.Context, id, status string) api.Result[models.User]
}

type memberService struct {
	client api.Client
}

func NewMemberService(client api.Client) MemberService {
	return &memberService{client: client}
}

func (s *memberService) List(ctx context.Context) api.Result[[]models.User] {
	return api.Decode[[]models.User](s.client.Get(ctx, "/api/admin/members"))
}

func (s *memberService) Get(ctx context.Context, id string) api.Result[models.User] {
	if id == "" {
		return api.Invalid[models.User]("member id is required")
	}
	return api.DecodeOne[models.User](s.client.Get(ctx, "/api/admin/members/"+id))
}

// SetStatus flips a member between active and passive.
func (s *memberService) SetStatus(ctx context.Context, id, status string) api.Result[models.User] {
	if id == "" {
		return api.Invalid[models.User]("member id is required")
	}
	if status != models.MembershipActive && status != models.MembershipPassive {
		return api.Invalid[models.User]("unknown membership status: " + status)
	}
	return api.DecodeOne[models.User](s.client.Post(ctx, "/api/admin/members/"+id+"/status",
		map[string]string{"membership_status": status}))
}
