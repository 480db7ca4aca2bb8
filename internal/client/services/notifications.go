package services

import (
	"context"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/client/repositories/notifications"
	"github.com/bosphorusfellas/clubclient/internal/logging"
)

// DefaultPollInterval is the period between incremental notification polls.
const DefaultPollInterval = 30 * time.Second

// NotificationService keeps the local notification mirror in sync with the
// server and sends notifications on behalf of admins.
//
// Contract:
//   - Load: full fetch, optionally narrowed by read state; replaces the
//     mirror.
//   - Poll: incremental fetch since the last successful poll; overlapping
//     calls are skipped, never run concurrently.
//   - MarkRead / MarkAllRead: server first, then the mirror; both idempotent.
//   - StartPolling: background loop, stopped by the returned cancel func or
//     by the context.
type NotificationService interface {
	Load(ctx context.Context, isRead *bool) api.Result[[]models.Notification]
	Poll(ctx context.Context) api.Result[int]
	MarkRead(ctx context.Context, id string) api.Result[struct{}]
	MarkAllRead(ctx context.Context) BulkResult
	Send(ctx context.Context, in models.NotificationInput) api.Result[models.Notification]
	SendBulk(ctx context.Context, userIDs []string, title, message, kind, relatedID string) BulkResult
	SendToAllMembers(ctx context.Context, title, message, kind, relatedID string) (BulkResult, error)
	StartPolling(ctx context.Context, interval time.Duration) (stop func())
	Subscribe(fn func()) (cancel func())
	Items() []models.Notification
	Unread() int
}

type notificationService struct {
	client  api.Client
	cache   *notifications.Cache
	polling atomic.Bool
	log     logging.Logger

	// now is a test seam for the poll watermark.
	now func() time.Time
}

func NewNotificationService(client api.Client, cache *notifications.Cache, log logging.Logger) NotificationService {
	return &notificationService{
		client: client,
		cache:  cache,
		log:    log,
		now:    time.Now,
	}
}

// Load fetches the notification list and resets the mirror. A non-nil
// isRead narrows the fetch to read or unread items. The poll watermark
// moves to now so the next poll only asks for newer items.
func (s *notificationService) Load(ctx context.Context, isRead *bool) api.Result[[]models.Notification] {
	started := s.now()
	endpoint := "/api/notifications"
	if isRead != nil {
		endpoint += "?is_read=" + strconv.FormatBool(*isRead)
	}
	res := api.Decode[[]models.Notification](s.client.Get(ctx, endpoint))
	if res.OK {
		s.cache.Replace(res.Data)
		s.cache.Advance(started)
	}
	return res
}

// Poll asks for notifications created at or after the last watermark. The
// inclusive bound re-fetches items on the boundary; the mirror's id-dedup
// drops them. A poll already in flight makes this call a no-op.
func (s *notificationService) Poll(ctx context.Context) api.Result[int] {
	if !s.polling.CompareAndSwap(false, true) {
		return api.OKResult(0, 0)
	}
	defer s.polling.Store(false)

	started := s.now()
	endpoint := "/api/notifications"
	if since, ok := s.cache.Since(); ok {
		endpoint += "?since=" + url.QueryEscape(since.UTC().Format(time.RFC3339))
	}

	res := api.Decode[[]models.Notification](s.client.Get(ctx, endpoint))
	if !res.OK {
		// Watermark stays put: the same window is retried next time.
		s.log.Warn(ctx, "notification poll failed", "error", res.ErrorMessage)
		return api.Result[int]{StatusCode: res.StatusCode, ErrorMessage: res.ErrorMessage, Err: res.Err}
	}

	added, _ := s.cache.Merge(res.Data)
	s.cache.Advance(started)
	return api.OKResult(res.StatusCode, added)
}

// MarkRead records the read flag on the server, then mirrors it locally.
// The mirror is not touched when the server refuses.
func (s *notificationService) MarkRead(ctx context.Context, id string) api.Result[struct{}] {
	if id == "" {
		return api.Invalid[struct{}]("notification id is required")
	}
	res := api.Decode[struct{}](s.client.Put(ctx, "/api/notifications/"+id+"/read", nil))
	if res.OK {
		s.cache.MarkRead(id)
	}
	return res
}

// MarkAllRead marks every cached unread item, one by one. Failed items stay
// unread locally, so a retry picks up exactly the remainder.
func (s *notificationService) MarkAllRead(ctx context.Context) BulkResult {
	ids := s.cache.UnreadIDs()
	bulk := BulkResult{Total: len(ids)}
	for _, id := range ids {
		if s.MarkRead(ctx, id).OK {
			bulk.Successful++
		} else {
			bulk.Failed++
		}
	}
	return bulk
}

func (s *notificationService) Send(ctx context.Context, in models.NotificationInput) api.Result[models.Notification] {
	if in.UserID == "" || in.Title == "" || in.Message == "" {
		return api.Invalid[models.Notification]("user id, title and message are required")
	}
	return api.DecodeOne[models.Notification](s.client.Post(ctx, "/api/notifications", in))
}

// SendBulk sends one notification per recipient and aggregates the outcome;
// a failed recipient never aborts the rest.
func (s *notificationService) SendBulk(ctx context.Context, userIDs []string, title, message, kind, relatedID string) BulkResult {
	bulk := BulkResult{Total: len(userIDs)}
	for _, id := range userIDs {
		res := s.Send(ctx, models.NotificationInput{
			UserID:    id,
			Title:     title,
			Message:   message,
			Kind:      kind,
			RelatedID: relatedID,
		})
		if res.OK {
			bulk.Successful++
		} else {
			bulk.Failed++
			s.log.Warn(ctx, "notification send failed", "user_id", id, "error", res.ErrorMessage)
		}
	}
	return bulk
}

// SendToAllMembers fans out to the full member directory.
func (s *notificationService) SendToAllMembers(ctx context.Context, title, message, kind, relatedID string) (BulkResult, error) {
	members := api.Decode[[]models.User](s.client.Get(ctx, "/api/admin/members"))
	if !members.OK {
		return BulkResult{}, members.Err
	}

	ids := make([]string, 0, len(members.Data))
	for _, m := range members.Data {
		ids = append(ids, m.ID)
	}
	return s.SendBulk(ctx, ids, title, message, kind, relatedID), nil
}

// StartPolling runs Poll on a ticker until stopped. Poll errors are logged
// and the loop keeps going.
func (s *notificationService) StartPolling(ctx context.Context, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				s.Poll(ctx)
			}
		}
	}()

	var once atomic.Bool
	return func() {
		if once.CompareAndSwap(false, true) {
			close(done)
		}
	}
}

func (s *notificationService) Subscribe(fn func()) (cancel func()) {
	return s.cache.Subscribe(fn)
}

func (s *notificationService) Items() []models.Notification {
	return s.cache.Items()
}

func (s *notificationService) Unread() int {
	return s.cache.Unread()
}
