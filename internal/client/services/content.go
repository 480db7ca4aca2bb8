package services

import (
	"context"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

// ContentService covers the published site content: news items and sponsor
// entries share one record shape and one admin surface. The backend bumps
// the view counter on every detail fetch; the client never writes it.
type ContentService interface {
	News(ctx context.Context) api.Result[[]models.Content]
	Sponsors(ctx context.Context) api.Result[[]models.Content]
	Get(ctx context.Context, kind, id string) api.Result[models.Content]
	Create(ctx context.Context, in models.ContentInput) api.Result[models.Content]
	Update(ctx context.Context, id string, in models.ContentInput) api.Result[models.Content]
	Delete(ctx context.Context, kind, id string) api.Result[struct{}]
}

type contentService struct {
	client api.Client
}

func NewContentService(client api.Client) ContentService {
	return &contentService{client: client}
}

// kindSegment maps a content family to its path segment.
func kindSegment(kind string) (string, bool) {
	switch kind {
	case models.ContentNews:
		return "news", true
	case models.ContentSponsor:
		return "sponsors", true
	}
	return "", false
}

func (s *contentService) News(ctx context.Context) api.Result[[]models.Content] {
	return api.Decode[[]models.Content](s.client.Get(ctx, "/api/news"))
}

func (s *contentService) Sponsors(ctx context.Context) api.Result[[]models.Content] {
	return api.Decode[[]models.Content](s.client.Get(ctx, "/api/sponsors"))
}

func (s *contentService) Get(ctx context.Context, kind, id string) api.Result[models.Content] {
	seg, ok := kindSegment(kind)
	if !ok {
		return api.Invalid[models.Content]("unknown content type: " + kind)
	}
	if id == "" {
		return api.Invalid[models.Content]("content id is required")
	}
	return api.DecodeOne[models.Content](s.client.Get(ctx, "/api/"+seg+"/"+id))
}

func (s *contentService) Create(ctx context.Context, in models.ContentInput) api.Result[models.Content] {
	seg, ok := kindSegment(in.Type)
	if !ok {
		return api.Invalid[models.Content]("unknown content type: " + in.Type)
	}
	if in.Title == "" {
		return api.Invalid[models.Content]("title is required")
	}
	return api.DecodeOne[models.Content](s.client.Post(ctx, "/api/admin/"+seg, in))
}

func (s *contentService) Update(ctx context.Context, id string, in models.ContentInput) api.Result[models.Content] {
	seg, ok := kindSegment(in.Type)
	if !ok {
		return api.Invalid[models.Content]("unknown content type: " + in.Type)
	}
	if id == "" {
		return api.Invalid[models.Content]("content id is required")
	}
	return api.DecodeOne[models.Content](s.client.Put(ctx, "/api/admin/"+seg+"/"+id, in))
}

func (s *contentService) Delete(ctx context.Context, kind, id string) api.Result[struct{}] {
	seg, ok := kindSegment(kind)
	if !ok {
		return api.Invalid[struct{}]("unknown content type: " + kind)
	}
	if id == "" {
		return api.Invalid[struct{}]("content id is required")
	}
	return api.Decode[struct{}](s.client.Delete(ctx, "/api/admin/"+seg+"/"+id))
}
