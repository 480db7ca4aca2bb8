package services

import (
	"context"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

// StatisticsService fetches the admin dashboard counters.
type StatisticsService interface {
	Dashboard(ctx context.Context) api.Result[models.Statistics]
}

type statisticsService struct {
	client api.Client
}

func NewStatisticsService(client api.Client) StatisticsService {
	return &statisticsService{client: client}
}

func (s *statisticsService) Dashboard(ctx context.Context) api.Result[models.Statistics] {
	return api.Decode[models.Statistics](s.client.Get(ctx, "/api/admin/statistics"))
}
