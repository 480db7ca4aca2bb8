package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/client/session"
	"github.com/bosphorusfellas/clubclient/internal/common"
	"github.com/bosphorusfellas/clubclient/internal/logging"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login: authenticate and persist the returned token.
//   - Logout: drop the token and the cached identity; never fails on the network.
//   - CurrentUser: lazily fetch the profile once per cache miss; a failed
//     fetch clears the stored token.
//   - ChangePassword: full local validation before any network call.
//   - UpdateProfile: patch the caller-editable profile fields.
type AuthService interface {
	Login(ctx context.Context, email, password string) api.Result[models.User]
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) api.Result[models.User]
	IsAuthenticated(ctx context.Context) bool
	ChangePassword(ctx context.Context, current, newPassword, confirmation string) api.Result[struct{}]
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) api.Result[models.User]
}

type authService struct {
	client  api.Client
	session *session.Store
	group   singleflight.Group
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given transport and
// session store.
func NewAuthService(client api.Client, sess *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

// Login exchanges credentials for a token. The token is stored before the
// result is returned so a subsequent call is already authenticated.
func (a *authService) Login(ctx context.Context, email, password string) api.Result[models.User] {
	if email == "" || password == "" {
		return api.Invalid[models.User]("email and password are required")
	}

	res := api.Decode[models.LoginResponse](a.client.Post(ctx, "/api/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}))
	if !res.OK {
		return api.Result[models.User]{
			StatusCode:   res.StatusCode,
			ErrorMessage: res.ErrorMessage,
			Err:          res.Err,
		}
	}
	if res.Data.Token == "" {
		return api.Fail[models.User](common.ErrTransport, res.StatusCode, "login response carried no token")
	}

	if err := a.session.SetToken(res.Data.Token); err != nil {
		return api.Fail[models.User](common.ErrTransport, 0, fmt.Sprintf("persisting token: %v", err))
	}
	a.session.CacheUser(res.Data.User)
	a.log.Info(ctx, "logged in", "email", email)

	return api.OKResult(res.StatusCode, res.Data.User)
}

// Logout clears local session state. The backend holds no server-side
// session, so no network call is made.
func (a *authService) Logout(ctx context.Context) error {
	a.log.Info(ctx, "logged out")
	return a.session.Clear()
}

// CurrentUser returns the cached profile or fetches it. Concurrent cache
// misses collapse into a single network call. Without a stored token no
// network is touched; on a failed fetch the token is cleared so the next
// call reports unauthenticated immediately.
func (a *authService) CurrentUser(ctx context.Context) api.Result[models.User] {
	if _, ok := a.session.Token(); !ok {
		return api.Fail[models.User](common.ErrNotAuthenticated, 0, "not logged in")
	}
	if u, ok := a.session.CachedUser(); ok {
		return api.OKResult(200, u)
	}

	v, _, _ := a.group.Do("profile", func() (any, error) {
		res := api.DecodeOne[models.User](a.client.Get(ctx, "/api/profile"))
		if !res.OK {
			a.log.Warn(ctx, "profile fetch failed, clearing session", "error", res.ErrorMessage)
			if err := a.session.Clear(); err != nil {
				a.log.Error(ctx, "clearing session", "error", err)
			}
			return res, nil
		}
		a.session.CacheUser(res.Data)
		return res, nil
	})
	return v.(api.Result[models.User])
}

// IsAuthenticated reports whether a profile is currently obtainable.
func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.CurrentUser(ctx).OK
}

// ChangePassword validates locally, then submits. Validation order matches
// the site's change-password form: presence, confirmation match, minimum
// length, difference from the current password.
func (a *authService) ChangePassword(ctx context.Context, current, newPassword, confirmation string) api.Result[struct{}] {
	switch {
	case current == "" || newPassword == "" || confirmation == "":
		return api.Invalid[struct{}]("all fields are required")
	case newPassword != confirmation:
		return api.Invalid[struct{}]("new passwords do not match")
	case len(newPassword) < 6:
		return api.Invalid[struct{}]("new password must be at least 6 characters")
	case newPassword == current:
		return api.Invalid[struct{}]("new password must differ from the current password")
	}

	return api.Decode[struct{}](a.client.Put(ctx, "/api/profile/password", models.PasswordChange{
		Current:      current,
		New:          newPassword,
		Confirmation: confirmation,
	}))
}

// UpdateProfile patches the profile and refreshes the cached identity with
// the server's response.
func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) api.Result[models.User] {
	res := api.DecodeOne[models.User](a.client.Put(ctx, "/api/profile", upd))
	if res.OK {
		a.session.CacheUser(res.Data)
	}
	return res
}
