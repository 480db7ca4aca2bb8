// Package cli is the interactive presentation layer of the club client. It
// consumes service results and subscription callbacks only; all state lives
// in the services and the session store.
package cli

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/blobstore"
	"github.com/bosphorusfellas/clubclient/internal/client/config"
	"github.com/bosphorusfellas/clubclient/internal/client/localstore"
	"github.com/bosphorusfellas/clubclient/internal/client/repositories/notifications"
	"github.com/bosphorusfellas/clubclient/internal/client/services"
	"github.com/bosphorusfellas/clubclient/internal/client/session"
	"github.com/bosphorusfellas/clubclient/internal/filex"
	"github.com/bosphorusfellas/clubclient/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Store

	auth     services.AuthService
	events   services.EventService
	apps     services.ApplicationService
	members  services.MemberService
	content  services.ContentService
	media    services.MediaService
	notifs   services.NotificationService
	settings services.SettingsService
	stats    services.StatisticsService

	reader *bufio.Reader
	out    io.Writer

	stopPolling func()
}

// NewApp wires the full client: durable store, session, transport, and one
// service per resource family.
func NewApp(cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	stateDir, err := filex.EnsureDir(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	local, err := localstore.NewFileStore(stateDir)
	if err != nil {
		return nil, err
	}

	sess := session.New(local, log)
	client := api.NewHTTPClient(cfg.APIBaseURL, sess, cfg.RequestTimeout, log)
	store := blobstore.NewS3Store(blobstore.Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})

	return &App{
		config:   cfg,
		session:  sess,
		auth:     services.NewAuthService(client, sess, log),
		events:   services.NewEventService(client, cfg.ContentCacheTTL),
		apps:     services.NewApplicationService(client),
		members:  services.NewMemberService(client),
		content:  services.NewContentService(client),
		media:    services.NewMediaService(client, store, cfg.UploadAllowedTypes, cfg.UploadMaxSize, log),
		notifs:   services.NewNotificationService(client, notifications.NewCache(), log),
		settings: services.NewSettingsService(client, local, cfg.ContentCacheTTL),
		stats:    services.NewStatisticsService(client),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Token()
	return ok
}
