package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/blobstore"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/common"
	"github.com/bosphorusfellas/clubclient/internal/logging"
)

// UploadRequest is one file handed to the media pipeline.
type UploadRequest struct {
	Filename string
	Data     []byte
	MimeType string

	AltText   string
	Caption   string
	IsPublic  bool
	EventID   string
	ContentID string
}

// UploadOutcome pairs a batch entry with its result.
type UploadOutcome struct {
	Filename string
	Result   api.Result[models.Media]
}

// MediaService runs the media pipeline: validate, write to object storage,
// then persist metadata. A failed metadata insert triggers a compensating
// storage delete so no unreferenced object survives a half-done upload.
type MediaService interface {
	Upload(ctx context.Context, req UploadRequest) api.Result[models.Media]
	UploadMany(ctx context.Context, reqs []UploadRequest) (BulkResult, []UploadOutcome)
	List(ctx context.Context, f models.MediaFilter) api.Result[[]models.Media]
	Get(ctx context.Context, id string) api.Result[models.Media]
	Update(ctx context.Context, id string, patch models.MediaUpdate) api.Result[models.Media]
	Delete(ctx context.Context, id string) api.Result[struct{}]
	LinkToEvent(ctx context.Context, link models.EventMediaLink) api.Result[models.EventMediaLink]
	UnlinkFromEvent(ctx context.Context, eventID, mediaID string) api.Result[struct{}]
	EventMedia(ctx context.Context, eventID string) api.Result[[]models.Media]
	Usage(ctx context.Context) api.Result[models.StorageUsage]
}

type mediaService struct {
	client       api.Client
	store        blobstore.Store
	maxSize      int64
	allowedTypes map[string]struct{}
	log          logging.Logger
}

// NewMediaService constructs a MediaService. allowedTypes is the MIME
// allow-list; maxSize is the per-file byte limit.
func NewMediaService(client api.Client, store blobstore.Store, allowedTypes []string, maxSize int64, log logging.Logger) MediaService {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(t)] = struct{}{}
	}
	return &mediaService{
		client:       client,
		store:        store,
		maxSize:      maxSize,
		allowedTypes: allowed,
		log:          log,
	}
}

// validate runs the pre-I/O checks. A violation means neither the object
// store nor the API has been touched.
func (s *mediaService) validate(req UploadRequest) string {
	switch {
	case len(req.Data) == 0:
		return "no file provided"
	case req.Filename == "":
		return "filename is required"
	}
	if _, ok := s.allowedTypes[strings.ToLower(req.MimeType)]; !ok {
		return "unsupported file type: " + req.MimeType
	}
	if int64(len(req.Data)) > s.maxSize {
		return fmt.Sprintf("file too large: maximum %s", FormatFileSize(s.maxSize))
	}
	return ""
}

// Upload writes the object, derives its public URL, then inserts metadata.
// On insert failure the stored object is removed best-effort; the insert
// error is what the caller sees, classified as a storage consistency
// failure.
func (s *mediaService) Upload(ctx context.Context, req UploadRequest) api.Result[models.Media] {
	if msg := s.validate(req); msg != "" {
		return api.Invalid[models.Media](msg)
	}

	key := blobstore.RandomKey() + strings.ToLower(path.Ext(req.Filename))
	if err := s.store.Upload(ctx, key, req.Data, req.MimeType); err != nil {
		return api.Fail[models.Media](common.ErrTransport, 0, fmt.Sprintf("storage upload: %v", err))
	}

	res := api.DecodeOne[models.Media](s.client.Post(ctx, "/api/media", models.MediaInsert{
		Filename:         path.Base(key),
		OriginalFilename: req.Filename,
		StorageKey:       key,
		FileURL:          s.store.PublicURL(key),
		FileSize:         int64(len(req.Data)),
		MimeType:         req.MimeType,
		MediaType:        MediaTypeFor(req.MimeType),
		AltText:          req.AltText,
		Caption:          req.Caption,
		IsPublic:         req.IsPublic,
		RelatedEventID:   req.EventID,
		RelatedContentID: req.ContentID,
	}))
	if !res.OK {
		// Roll back the stored object; a failed rollback is logged, not
		// layered on top of the original failure.
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.Error(ctx, "rollback of stored object failed", "key", key, "error", err)
		}
		return api.Fail[models.Media](common.ErrStorageConsistency, res.StatusCode, res.ErrorMessage)
	}
	return res
}

// UploadMany uploads each file independently; one failure never aborts the
// rest of the batch.
func (s *mediaService) UploadMany(ctx context.Context, reqs []UploadRequest) (BulkResult, []UploadOutcome) {
	outcomes := make([]UploadOutcome, 0, len(reqs))
	bulk := BulkResult{Total: len(reqs)}

	for _, req := range reqs {
		res := s.Upload(ctx, req)
		if res.OK {
			bulk.Successful++
		} else {
			bulk.Failed++
		}
		outcomes = append(outcomes, UploadOutcome{Filename: req.Filename, Result: res})
	}
	return bulk, outcomes
}

func (s *mediaService) List(ctx context.Context, f models.MediaFilter) api.Result[[]models.Media] {
	q := url.Values{}
	if f.MediaType != "" {
		q.Set("media_type", f.MediaType)
	}
	if f.EventID != "" {
		q.Set("event_id", f.EventID)
	}
	if f.ContentID != "" {
		q.Set("content_id", f.ContentID)
	}
	if f.UploadedBy != "" {
		q.Set("uploaded_by", f.UploadedBy)
	}

	endpoint := "/api/media"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	return api.Decode[[]models.Media](s.client.Get(ctx, endpoint))
}

func (s *mediaService) Get(ctx context.Context, id string) api.Result[models.Media] {
	if id == "" {
		return api.Invalid[models.Media]("media id is required")
	}
	return api.DecodeOne[models.Media](s.client.Get(ctx, "/api/media/"+id))
}

// Update patches the editable metadata of a media record. Replacing the
// content itself is a delete plus a fresh upload.
func (s *mediaService) Update(ctx context.Context, id string, patch models.MediaUpdate) api.Result[models.Media] {
	if id == "" {
		return api.Invalid[models.Media]("media id is required")
	}
	return api.DecodeOne[models.Media](s.client.Put(ctx, "/api/media/"+id, patch))
}

// Delete removes the stored object first, then the metadata record. A
// storage miss is only a warning: the record is the source of truth and a
// dangling object is cheaper than a dangling record.
func (s *mediaService) Delete(ctx context.Context, id string) api.Result[struct{}] {
	got := s.Get(ctx, id)
	if !got.OK {
		return api.Result[struct{}]{
			StatusCode:   got.StatusCode,
			ErrorMessage: got.ErrorMessage,
			Err:          got.Err,
		}
	}

	if got.Data.StorageKey != "" {
		if err := s.store.Delete(ctx, got.Data.StorageKey); err != nil {
			s.log.Warn(ctx, "storage delete failed", "key", got.Data.StorageKey, "error", err)
		}
	}
	return api.Decode[struct{}](s.client.Delete(ctx, "/api/media/"+id))
}

func (s *mediaService) LinkToEvent(ctx context.Context, link models.EventMediaLink) api.Result[models.EventMediaLink] {
	if link.EventID == "" || link.MediaID == "" {
		return api.Invalid[models.EventMediaLink]("event id and media id are required")
	}
	return api.DecodeOne[models.EventMediaLink](s.client.Post(ctx, "/api/event-media", link))
}

func (s *mediaService) UnlinkFromEvent(ctx context.Context, eventID, mediaID string) api.Result[struct{}] {
	if eventID == "" || mediaID == "" {
		return api.Invalid[struct{}]("event id and media id are required")
	}
	return api.Decode[struct{}](s.client.Delete(ctx, "/api/event-media/"+eventID+"/"+mediaID))
}

func (s *mediaService) EventMedia(ctx context.Context, eventID string) api.Result[[]models.Media] {
	if eventID == "" {
		return api.Invalid[[]models.Media]("event id is required")
	}
	return api.Decode[[]models.Media](s.client.Get(ctx, "/api/events/"+eventID+"/media"))
}

func (s *mediaService) Usage(ctx context.Context) api.Result[models.StorageUsage] {
	return api.Decode[models.StorageUsage](s.client.Get(ctx, "/api/media/usage"))
}

// MediaTypeFor maps a MIME type onto the media families the gallery knows.
func MediaTypeFor(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		return models.MediaVideo
	case mimeType == "application/pdf":
		return models.MediaDocument
	}
	return models.MediaOther
}

// FormatFileSize renders a byte count for humans.
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMG"[exp])
}
