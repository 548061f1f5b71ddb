package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/repository"
)

// UserService coordina reglas de negocio para perfiles de usuario.
type UserService struct {
	logger   *zap.Logger
	users    repository.UserRepository
	sessions *SessionService
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, sessions *SessionService) *UserService {
	return &UserService{
		logger:   logger,
		users:    users,
		sessions: sessions,
	}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Mobile   string
	Language string
	Location string
	Crops    string
	LandSize string
}

func (s *UserService) CreateProfile(ctx context.Context, input CreateUserInput) (int64, error) {
	emailAddr := normalizeEmail(input.Email)
	if emailAddr == "" {
		return 0, domain.ErrInvalidEmail
	}

	return s.users.Create(ctx, domain.UserDetails{
		Name:     input.Name,
		Email:    emailAddr,
		Mobile:   input.Mobile,
		Language: input.Language,
		Location: input.Location,
		Crops:    input.Crops,
		LandSize: input.LandSize,
	})
}

// UpdateProfileInput trae los campos a cambiar; los vacios se ignoran.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Mobile   string
	Language string
	Location string
	Crops    string
	LandSize string
}

// UpdateCurrentProfile actualiza el perfil del usuario activo campo por
// campo. Si cambia el email, el puntero activo se reescribe en la misma
// transaccion para que las resoluciones futuras sigan siendo consistentes.
func (s *UserService) UpdateCurrentProfile(ctx context.Context, input UpdateProfileInput) (domain.UserDetails, error) {
	session, err := s.sessions.CurrentSession(ctx)
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

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Mobile != "" {
		user.Mobile = input.Mobile
	}
	if input.Language != "" {
		user.Language = input.Language
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.Crops != "" {
		user.Crops = input.Crops
	}
	if input.LandSize != "" {
		user.LandSize = input.LandSize
	}

	emailChanged := false
	if newEmail := normalizeEmail(input.Email); newEmail != "" && newEmail != user.Email {
		user.Email = newEmail
		emailChanged = true
	}

	if emailChanged {
		err = s.users.UpdateWithActiveEmail(ctx, user, session.ID)
	} else {
		err = s.users.Update(ctx, user)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("update profile failed", zap.Error(err), zap.Int64("user_id", user.ID))
		}
		return domain.UserDetails{}, err
	}
	return user, nil
}
