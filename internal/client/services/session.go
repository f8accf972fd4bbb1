// Package services contains the application services of the AgroConnect
// client: the auth/session lifecycle, the notification cache, and the thin
// buyer/farmer orchestration over the REST client.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	repo "github.com/agroconnect/agroconnect-cli/internal/client/repositories/session"

	"github.com/agroconnect/agroconnect-cli/internal/client/api"
	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/client/notify"
	"github.com/agroconnect/agroconnect-cli/internal/client/routes"
	"github.com/agroconnect/agroconnect-cli/internal/common"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

// User-facing notices of the auth flows.
const (
	noticeRegistered    = "Inscription réussie !"
	noticeProfileSaved  = "Profil mis à jour avec succès"
	noticeLoggedOut     = "Vous avez été déconnecté avec succès"
	noticeLoginFailed   = "Erreur de connexion"
	noticeBadRole       = "Type de compte invalide"
	noticeSignupFailed  = "Erreur d'inscription"
	noticeProfileFailed = "Erreur de mise à jour du profil"
)

// AuthWatcher is notified when the session's authentication state changes.
// The notification cache uses it to start and stop its unread poller.
type AuthWatcher interface {
	AuthChanged(authenticated bool)
}

// Session is the single source of truth for "who is logged in". It owns the
// persisted token, propagates the credential to the shared API client, and
// navigates to the role-determined landing route after login/register.
//
// A token being present implies the profile is (eventually) fetched; a token
// being absent implies no current user. Only Session mutates this state.
type Session struct {
	api      api.Client
	store    repo.Store
	nav      routes.Navigator
	notifier notify.Notifier
	log      logging.Logger
	watchers []AuthWatcher

	user    *models.User
	loading bool
}

func NewSession(client api.Client, store repo.Store, nav routes.Navigator, notifier notify.Notifier, log logging.Logger) *Session {
	// Loading starts true so role-gated rendering blocks until Bootstrap
	// has decided, instead of flashing an unauthenticated view.
	return &Session{
		api:      client,
		store:    store,
		nav:      nav,
		notifier: notifier,
		log:      log,
		loading:  true,
	}
}

// Watch registers w for authentication transitions. Must be called before
// Bootstrap.
func (s *Session) Watch(w AuthWatcher) {
	s.watchers = append(s.watchers, w)
}

// CurrentUser returns the logged-in user, or nil.
func (s *Session) CurrentUser() *models.User { return s.user }

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool { return s.user != nil }

// IsLoading reports whether an auth round trip is in flight. Gated rendering
// must block while true.
func (s *Session) IsLoading() bool { return s.loading }

// Role returns the current user's role, or "" when logged out.
func (s *Session) Role() models.Role {
	if s.user == nil {
		return ""
	}
	return s.user.TypeUtilisateur
}

// State snapshots the session for the role gate.
func (s *Session) State() routes.SessionState {
	return routes.SessionState{
		IsLoading:       s.loading,
		IsAuthenticated: s.IsAuthenticated(),
		Role:            s.Role(),
	}
}

// Bootstrap restores the session from the persisted token. Without a token it
// finishes unauthenticated. With one, it attaches the credential and fetches
// the profile; an authorization failure forces a full logout so the UI never
// shows a stale authenticated state, while any other failure leaves the user
// absent without retrying.
func (s *Session) Bootstrap(ctx context.Context) {
	defer s.setLoading(false)

	token, err := s.store.Get(ctx, repo.KeyToken)
	if err != nil {
		s.log.Error(ctx, "failed to read persisted token", "error", err)
		return
	}
	if len(token) == 0 {
		return
	}

	s.api.SetAuthToken(string(token))

	u, err := s.api.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.log.Info(ctx, "persisted token rejected, logging out")
			s.Logout(ctx)
			return
		}
		s.log.Error(ctx, "profile fetch failed during bootstrap", "error", err)
		return
	}

	s.setUser(u)
}

// Login authenticates with phone and password. The response must carry a
// token; a missing token is a contract violation reported before any session
// state changes. On success the token is persisted, attached to the API
// client, and the user lands on their role's dashboard.
func (s *Session) Login(ctx context.Context, telephone, motDePasse string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Login(ctx, telephone, motDePasse)
	if err != nil {
		s.notifier.Error(api.ServerMessage(err, noticeLoginFailed))
		return err
	}

	return s.establish(ctx, resp, fmt.Sprintf("Bienvenue, %s !", resp.Prenom), noticeLoginFailed)
}

// Register creates an account and logs in with the same contract as Login.
// Only farmer and buyer accounts can be created here.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) error {
	if req.TypeUtilisateur != models.RoleAgriculteur && req.TypeUtilisateur != models.RoleAcheteur {
		s.notifier.Error(noticeBadRole)
		return fmt.Errorf("registration restricted to agriculteur/acheteur, got %q", req.TypeUtilisateur)
	}

	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.notifier.Error(api.ServerMessage(err, noticeSignupFailed))
		return err
	}

	return s.establish(ctx, resp, noticeRegistered, noticeSignupFailed)
}

// establish applies a successful auth response: persist token, attach header,
// set user, notify, navigate to the role landing route.
func (s *Session) establish(ctx context.Context, resp *models.AuthResponse, successMsg, failureMsg string) error {
	if resp.Token == "" {
		s.notifier.Error(failureMsg)
		return common.ErrMissingToken
	}

	if err := s.store.Set(ctx, repo.KeyToken, []byte(resp.Token)); err != nil {
		s.log.Error(ctx, "failed to persist token", "error", err)
	}
	s.api.SetAuthToken(resp.Token)

	u := resp.User
	s.setUser(&u)

	s.notifier.Success(successMsg)
	s.nav.Navigate(routes.Landing(u.TypeUtilisateur))
	return nil
}

// UpdateProfile sends changed fields and replaces the stored user wholesale
// with the server's returned representation. On failure the prior user is
// kept intact.
func (s *Session) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	s.setLoading(true)
	defer s.setLoading(false)

	u, err := s.api.UpdateProfile(ctx, upd)
	if err != nil {
		s.notifier.Error(api.ServerMessage(err, noticeProfileFailed))
		return err
	}

	s.setUser(u)
	s.notifier.Success(noticeProfileSaved)
	return nil
}

// Logout clears the persisted token, the API client's authorization header,
// and the current user, then navigates to the login view. Idempotent.
func (s *Session) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, repo.KeyToken); err != nil {
		s.log.Error(ctx, "failed to delete persisted token", "error", err)
	}
	s.api.ClearAuthToken()
	s.setUser(nil)

	s.nav.Navigate(routes.RouteLogin)
	s.notifier.Success(noticeLoggedOut)
}

// TokenExpiry peeks at the persisted token's exp claim without verifying the
// signature. The token stays opaque otherwise; this only feeds the whoami
// display. Returns false when no token or no exp claim is present.
func (s *Session) TokenExpiry(ctx context.Context) (exp int64, ok bool) {
	raw, err := s.store.Get(ctx, repo.KeyToken)
	if err != nil || len(raw) == 0 {
		return 0, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(string(raw), &claims); err != nil {
		return 0, false
	}
	if claims.ExpiresAt == nil {
		return 0, false
	}
	return claims.ExpiresAt.Unix(), true
}

func (s *Session) setLoading(v bool) { s.loading = v }

func (s *Session) setUser(u *models.User) {
	was := s.user != nil
	s.user = u
	now := s.user != nil
	if was != now {
		for _, w := range s.watchers {
			w.AuthChanged(now)
		}
	}
}
