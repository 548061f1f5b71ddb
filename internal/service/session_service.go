package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/repository"
)

// SessionService resuelve "quien es el usuario actual" para endpoints que no
// reciben identidad. El puntero con mayor id es el actual: un proxy por
// recencia de creacion, no una sesion real. Una sesion por token seria el
// reemplazo correcto a largo plazo.
type SessionService struct {
	active repository.ActiveRepository
	users  repository.UserRepository
}

func NewSessionService(active repository.ActiveRepository, users repository.UserRepository) *SessionService {
	return &SessionService{active: active, users: users}
}

// CurrentSession devuelve el puntero activo mas reciente.
func (s *SessionService) CurrentSession(ctx context.Context) (domain.ActiveSession, error) {
	session, err := s.active.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ActiveSession{}, domain.ErrActiveNotFound
		}
		return domain.ActiveSession{}, err
	}
	return session, nil
}

// CurrentEmail devuelve la identidad del usuario actual.
func (s *SessionService) CurrentEmail(ctx context.Context) (string, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	return session.Email, nil
}

// CurrentProfile resuelve la identidad actual y la une contra userdetails.
func (s *SessionService) CurrentProfile(ctx context.Context) (domain.UserDetails, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return domain.UserDetails{}, err
	}
	user, err := s.users.GetByEmail(ctx, session.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserDetails{}, domain.ErrUserNotFound
		}
		return domain.UserDetails{}, err
	}
	return user, nil
}
