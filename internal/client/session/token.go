package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/client/storage"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

// TokenStore holds a bearer token plus user profile obtained from the auth
// backend. It persists both so a restart keeps the session, and it is the
// party the API client notifies when a request comes back 401.
type TokenStore struct {
	store     storage.Store
	log       logging.Logger
	auth      Authenticator
	onExpired func()

	mu    sync.RWMutex
	token string
	user  *models.User

	// expired guards the 401 teardown so concurrent in-flight rejections
	// clear the session and fire the redirect hook exactly once per epoch.
	expired atomic.Bool
}

// NewTokenStore builds the token store and restores persisted token/user
// state. onExpired, if non-nil, is invoked once when a 401 tears the session
// down (the navigation-to-login hook).
func NewTokenStore(store storage.Store, log logging.Logger, onExpired func()) *TokenStore {
	s := &TokenStore{store: store, log: log, onExpired: onExpired}

	if store != nil {
		var token string
		if store.Load(common.TokenStorageKey, &token) {
			s.token = token
		}
		var user models.User
		if store.Load(common.UserStorageKey, &user) && user.Email != "" {
			s.user = &user
		}
	}

	return s
}

// Bind attaches the authenticator after construction. The API client needs
// the store as its token source, so the two are wired in that order.
func (s *TokenStore) Bind(auth Authenticator) {
	s.auth = auth
}

func (s *TokenStore) Login(ctx context.Context, email, password string) models.LoginResult {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return models.LoginResult{Success: false, Message: err.Error()}
	}
	return s.establish(ctx, resp)
}

func (s *TokenStore) Register(ctx context.Context, email, password, fullName string) models.LoginResult {
	resp, err := s.auth.Register(ctx, email, password, fullName)
	if err != nil {
		return models.LoginResult{Success: false, Message: err.Error()}
	}
	return s.establish(ctx, resp)
}

func (s *TokenStore) establish(ctx context.Context, resp *models.AuthResponse) models.LoginResult {
	if resp == nil || resp.AccessToken == "" {
		return models.LoginResult{Success: false, Message: "Respuesta de autenticación inválida."}
	}

	user := resp.User
	if user == nil {
		user = userFromToken(resp.AccessToken)
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.user = user
	s.mu.Unlock()
	s.expired.Store(false)

	if s.store != nil {
		if err := s.store.Save(common.TokenStorageKey, resp.AccessToken); err != nil && s.log != nil {
			s.log.Warn(ctx, "error persisting token", "error", err)
		}
		if user != nil {
			if err := s.store.Save(common.UserStorageKey, user); err != nil && s.log != nil {
				s.log.Warn(ctx, "error persisting user", "error", err)
			}
		}
	}

	return models.LoginResult{Success: true}
}

// Logout clears token and user locally. There is no server round-trip.
func (s *TokenStore) Logout(ctx context.Context) {
	s.clear(ctx)
}

func (s *TokenStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *TokenStore) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == "admin"
}

func (s *TokenStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current bearer token, or an empty string when logged out.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HandleUnauthorized is the 401 hook. The first rejection of a session epoch
// clears the persisted state and fires the redirect callback; later ones
// from concurrent in-flight requests are no-ops.
func (s *TokenStore) HandleUnauthorized() {
	if !s.expired.CompareAndSwap(false, true) {
		return
	}

	s.clear(context.Background())

	if s.onExpired != nil {
		s.onExpired()
	}
}

func (s *TokenStore) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Remove(common.TokenStorageKey); err != nil && s.log != nil {
			s.log.Warn(ctx, "error clearing token", "error", err)
		}
		if err := s.store.Remove(common.UserStorageKey); err != nil && s.log != nil {
			s.log.Warn(ctx, "error clearing user", "error", err)
		}
	}
}

// userFromToken recovers a minimal profile from the access token claims when
// the auth response carries no user object. The token is not verified here;
// only the backend can do that, and the profile is display-only.
func userFromToken(token string) *models.User {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	u := &models.User{}
	if v, ok := claims["email"].(string); ok {
		u.Email = v
	}
	if v, ok := claims["sub"].(string); ok && u.Email == "" {
		u.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		u.Role = v
	}
	if u.Email == "" && u.Role == "" {
		return nil
	}
	return u
}
