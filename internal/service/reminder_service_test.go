package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"greenai-backend/internal/domain"
)

type mockReminderRepo struct {
	byID   map[int64]domain.Reminder
	nextID int64
}

func newMockReminderRepo() *mockReminderRepo {
	return &mockReminderRepo{byID: make(map[int64]domain.Reminder)}
}

func (m *mockReminderRepo) Create(_ context.Context, reminder domain.Reminder) (domain.Reminder, error) {
	m.nextID++
	reminder.ID = m.nextID
	m.byID[reminder.ID] = reminder
	return reminder, nil
}

func (m *mockReminderRepo) GetByID(_ context.Context, id int64) (domain.Reminder, error) {
	reminder, ok := m.byID[id]
	if !ok {
		return domain.Reminder{}, pgx.ErrNoRows
	}
	return reminder, nil
}

func (m *mockReminderRepo) ListActiveByUser(_ context.Context, userID int64) ([]domain.Reminder, error) {
	var out []domain.Reminder
	for _, r := range m.byID {
		if r.UserID == userID && r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReminderRepo) Update(_ context.Context, reminder domain.Reminder) error {
	if _, ok := m.byID[reminder.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.byID[reminder.ID] = reminder
	return nil
}

func (m *mockReminderRepo) Deactivate(_ context.Context, id int64) error {
	reminder, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	reminder.IsActive = false
	m.byID[id] = reminder
	return nil
}

func TestReminderServiceCreate(t *testing.T) {
	repo := newMockReminderRepo()
	svc := NewReminderService(repo)

	reminder, err := svc.Create(context.Background(), CreateReminderInput{
		ReminderType: "watering",
		CropType:     "rice",
		Date:         "15/09/2026",
		Time:         "06:30",
		IntervalType: "daily",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if reminder.UserID != 1 {
		t.Fatalf("expected default user id 1, got %d", reminder.UserID)
	}
	if !reminder.IsActive {
		t.Fatalf("new reminder must be active")
	}
	if got := reminder.Date.Format(domain.ReminderDateLayout); got != "15/09/2026" {
		t.Fatalf("date parsed wrong: %s", got)
	}
	if got := reminder.Time.Format(domain.ReminderTimeLayout); got != "06:30" {
		t.Fatalf("time parsed wrong: %s", got)
	}
}

func TestReminderServiceCreate_BadDate(t *testing.T) {
	svc := NewReminderService(newMockReminderRepo())

	_, err := svc.Create(context.Background(), CreateReminderInput{
		ReminderType: "watering",
		CropType:     "rice",
		Date:         "2026-09-15",
		Time:         "06:30",
		IntervalType: "daily",
	})
	if err == nil {
		t.Fatalf("expected parse error for ISO date")
	}
}

func TestReminderServiceUpdate_NotFound(t *testing.T) {
	svc := NewReminderService(newMockReminderRepo())

	_, err := svc.Update(context.Background(), 99, UpdateReminderInput{CropType: "cotton"})
	if !errors.Is(err, domain.ErrReminderNotFound) {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}
}

func TestReminderServiceDelete_SoftDeletes(t *testing.T) {
	repo := newMockReminderRepo()
	svc := NewReminderService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateReminderInput{
		ReminderType: "fertilizer",
		CropType:     "cotton",
		Date:         "01/10/2026",
		Time:         "07:00",
		IntervalType: "weekly",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("row must survive soft delete: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("soft delete did not clear is_active")
	}

	list, err := svc.ListActive(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("deleted reminder still listed")
	}
}
