package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"greenai-backend/internal/domain"
	"greenai-backend/internal/repository"
)

// ReminderService maneja los recordatorios de cuidado de cultivo.
type ReminderService struct {
	repo repository.ReminderRepository
}

func NewReminderService(repo repository.ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

type CreateReminderInput struct {
	UserID       int64
	ReminderType string
	CropType     string
	Date         string
	Time         string
	IntervalType string
}

// defaultReminderUserID se usa cuando el cliente no manda user_id.
const defaultReminderUserID = 1

func (s *ReminderService) Create(ctx context.Context, input CreateReminderInput) (domain.Reminder, error) {
	date, err := time.Parse(domain.ReminderDateLayout, input.Date)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("parsing date: %w", err)
	}
	clock, err := time.Parse(domain.ReminderTimeLayout, input.Time)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("parsing time: %w", err)
	}

	userID := input.UserID
	if userID == 0 {
		userID = defaultReminderUserID
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, domain.Reminder{
		UserID:       userID,
		ReminderType: input.ReminderType,
		CropType:     input.CropType,
		Date:         date,
		Time:         clock,
		IntervalType: input.IntervalType,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *ReminderService) ListActive(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	if userID == 0 {
		userID = defaultReminderUserID
	}
	return s.repo.ListActiveByUser(ctx, userID)
}

type UpdateReminderInput struct {
	ReminderType string
	CropType     string
	Date         string
	Time         string
	IntervalType string
}

func (s *ReminderService) Update(ctx context.Context, id int64, input UpdateReminderInput) (domain.Reminder, error) {
	reminder, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reminder{}, domain.ErrReminderNotFound
		}
		return domain.Reminder{}, err
	}

	if input.ReminderType != "" {
		reminder.ReminderType = input.ReminderType
	}
	if input.CropType != "" {
		reminder.CropType = input.CropType
	}
	if input.Date != "" {
		date, err := time.Parse(domain.ReminderDateLayout, input.Date)
		if err != nil {
			return domain.Reminder{}, fmt.Errorf("parsing date: %w", err)
		}
		reminder.Date = date
	}
	if input.Time != "" {
		clock, err := time.Parse(domain.ReminderTimeLayout, input.Time)
		if err != nil {
			return domain.Reminder{}, fmt.Errorf("parsing time: %w", err)
		}
		reminder.Time = clock
	}
	if input.IntervalType != "" {
		reminder.IntervalType = input.IntervalType
	}
	reminder.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, reminder); err != nil {
		return domain.Reminder{}, err
	}
	return reminder, nil
}

// Delete es un borrado logico: el registro queda con is_active = false.
func (s *ReminderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReminderNotFound
		}
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
