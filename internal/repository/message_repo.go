package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"greenai-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error)
	ListAll(ctx context.Context) ([]domain.ChatMessage, error)
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	const query = `
		INSERT INTO chat_messages (name, message, timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		message.Name,
		message.Message,
		message.Timestamp,
	).Scan(&message.ID)
	return message, err
}

func (r *PgMessageRepository) ListAll(ctx context.Context) ([]domain.ChatMessage, error) {
	const query = `
		SELECT id, name, message, timestamp
		FROM chat_messages
		ORDER BY timestamp ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		err = rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Message,
			&msg.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
