package session

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/client/storage"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

const invalidCredentialsMessage = "Credenciales inválidas. Intenta de nuevo."

// LocalStore checks credentials against a single fixed admin pair, without
// any remote lookup. The password half of the pair is hashed once at
// construction; login only ever compares hashes.
type LocalStore struct {
	store        storage.Store
	log          logging.Logger
	adminEmail   string
	passwordHash []byte

	mu      sync.RWMutex
	session *models.LocalSession
}

// NewLocalStore builds the credential-check store and restores a previously
// persisted session, if any.
func NewLocalStore(store storage.Store, log logging.Logger) *LocalStore {
	hash, err := bcrypt.GenerateFromPassword([]byte(common.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an over-long password; the fixed pair is short.
		panic(err)
	}

	s := &LocalStore{
		store:        store,
		log:          log,
		adminEmail:   common.AdminEmail,
		passwordHash: hash,
	}

	var persisted models.LocalSession
	if store != nil && store.Load(common.SessionStorageKey, &persisted) && persisted.Email != "" {
		s.session = &persisted
	}

	return s
}

func (s *LocalStore) Login(ctx context.Context, email, password string) models.LoginResult {
	if email != s.adminEmail {
		return models.LoginResult{Success: false, Message: invalidCredentialsMessage}
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return models.LoginResult{Success: false, Message: invalidCredentialsMessage}
	}

	sess := &models.LocalSession{
		Email:    email,
		LoggedAt: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(common.SessionStorageKey, sess); err != nil && s.log != nil {
			s.log.Warn(ctx, "error persisting session", "error", err)
		}
	}

	return models.LoginResult{Success: true}
}

// Register is not available in the local variant; accounts exist only on the
// auth backend.
func (s *LocalStore) Register(ctx context.Context, email, password, fullName string) models.LoginResult {
	return models.LoginResult{Success: false, Message: "Registro no disponible en modo local."}
}

func (s *LocalStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Remove(common.SessionStorageKey); err != nil && s.log != nil {
			s.log.Warn(ctx, "error clearing session", "error", err)
		}
	}
}

func (s *LocalStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// IsAdmin is equivalent to IsAuthenticated here: the only account the local
// variant knows is the admin.
func (s *LocalStore) IsAdmin() bool {
	return s.IsAuthenticated()
}

func (s *LocalStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	return &models.User{Email: s.session.Email, Role: "admin"}
}
