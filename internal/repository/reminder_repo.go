package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"greenai-backend/internal/domain"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder domain.Reminder) (domain.Reminder, error)
	GetByID(ctx context.Context, id int64) (domain.Reminder, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]domain.Reminder, error)
	Update(ctx context.Context, reminder domain.Reminder) error
	// Deactivate es un borrado logico: marca is_active = false.
	Deactivate(ctx context.Context, id int64) error
}

type PgReminderRepository struct {
	pool *pgxpool.Pool
}

func NewPgReminderRepository(pool *pgxpool.Pool) *PgReminderRepository {
	return &PgReminderRepository{pool: pool}
}

func (r *PgReminderRepository) Create(ctx context.Context, reminder domain.Reminder) (domain.Reminder, error) {
	const query = `
		INSERT INTO reminders (user_id, reminder_type, crop_type, date, time, interval_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		reminder.UserID,
		reminder.ReminderType,
		reminder.CropType,
		reminder.Date,
		reminder.Time,
		reminder.IntervalType,
		reminder.IsActive,
		reminder.CreatedAt,
		reminder.UpdatedAt,
	).Scan(&reminder.ID)
	return reminder, err
}

func (r *PgReminderRepository) GetByID(ctx context.Context, id int64) (domain.Reminder, error) {
	const query = `
		SELECT id, user_id, reminder_type, crop_type, date, time, interval_type, is_active, created_at, updated_at
		FROM reminders
		WHERE id = $1
	`
	var rem domain.Reminder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rem.ID,
		&rem.UserID,
		&rem.ReminderType,
		&rem.CropType,
		&rem.Date,
		&rem.Time,
		&rem.IntervalType,
		&rem.IsActive,
		&rem.CreatedAt,
		&rem.UpdatedAt,
	)
	return rem, err
}

func (r *PgReminderRepository) ListActiveByUser(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	const query = `
		SELECT id, user_id, reminder_type, crop_type, date, time, interval_type, is_active, created_at, updated_at
		FROM reminders
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY date ASC, time ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		err = rows.Scan(
			&rem.ID,
			&rem.UserID,
			&rem.ReminderType,
			&rem.CropType,
			&rem.Date,
			&rem.Time,
			&rem.IntervalType,
			&rem.IsActive,
			&rem.CreatedAt,
			&rem.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *PgReminderRepository) Update(ctx context.Context, reminder domain.Reminder) error {
	const query = `
		UPDATE reminders
		SET reminder_type = $2, crop_type = $3, date = $4, time = $5, interval_type = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		reminder.ID,
		reminder.ReminderType,
		reminder.CropType,
		reminder.Date,
		reminder.Time,
		reminder.IntervalType,
		reminder.UpdatedAt,
	)
	return err
}

func (r *PgReminderRepository) Deactivate(ctx context.Context, id int64) error {
	const query = `
		UPDATE reminders
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
