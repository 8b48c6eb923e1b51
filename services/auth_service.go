package services

import (
	"context"
	"sync"

	"restaurant-backend/database"
	"restaurant-backend/models"
	"restaurant-backend/repository"

	"go.uber.org/zap"
)

// SessionState is the auth lifecycle: unknown until the persisted session
// has been read, then anonymous or authenticated.
type SessionState int

const (
	SessionUnknown SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

// AuthService tracks the current logged-in identity. A session stays valid
// until explicit logout; there is no expiry.
type AuthService interface {
	// Load restores any persisted session. Called once at startup.
	Load(ctx context.Context)
	Current() (SessionState, *models.User)
	Login(ctx context.Context, username, password string) (*models.User, *ServiceError)
	Register(ctx context.Context, username, password string) (*models.User, *ServiceError)
	Logout(ctx context.Context)
}

type authServiceImpl struct {
	api    repository.API
	store  *database.Store
	logger *zap.Logger

	mu    sync.RWMutex
	state SessionState
	user  *models.User
}

// NewAuthService creates a new AuthService in the unknown state.
func NewAuthService(api repository.API, store *database.Store, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
		state:  SessionUnknown,
	}
}

func (s *authServiceImpl) Load(ctx context.Context) {
	var user *models.User
	s.store.Read(ctx, repository.KeySession, &user)

	s.mu.Lock()
	defer s.mu.Unlock()
	if user != nil {
		s.state = SessionAuthenticated
		s.user = user
		s.logger.Info("session restored", zap.String("username", user.Username))
	} else {
		s.state = SessionAnonymous
	}
}

func (s *authServiceImpl) Current() (SessionState, *models.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.user
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, *ServiceError) {
	user, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.logger.Error("login failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Login failed"}
	}
	if user == nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid username or password"}
	}

	s.establish(ctx, user)
	return user, nil
}

func (s *authServiceImpl) Register(ctx context.Context, username, password string) (*models.User, *ServiceError) {
	user, err := s.api.Register(ctx, username, password)
	if err != nil {
		s.logger.Error("registration failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Registration failed"}
	}
	if user == nil {
		return nil, &ServiceError{StatusCode: 409, Message: "Username already taken"}
	}

	s.establish(ctx, user)
	return user, nil
}

func (s *authServiceImpl) Logout(ctx context.Context) {
	s.store.Write(ctx, repository.KeySession, nil)

	s.mu.Lock()
	s.state = SessionAnonymous
	s.user = nil
	s.mu.Unlock()
}

// establish persists the session and flips the state to authenticated.
func (s *authServiceImpl) establish(ctx context.Context, user *models.User) {
	s.store.Write(ctx, repository.KeySession, user)

	s.mu.Lock()
	s.state = SessionAuthenticated
	s.user = user
	s.mu.Unlock()

	s.logger.Info("session established", zap.Int("user_id", user.ID), zap.String("role", string(user.Role)))
}
