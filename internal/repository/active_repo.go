package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"greenai-backend/internal/domain"
)

// ActiveRepository define el contrato de persistencia para punteros activos.
type ActiveRepository interface {
	Create(ctx context.Context, email string) (domain.ActiveSession, error)
	GetByEmail(ctx context.Context, email string) (domain.ActiveSession, error)
	// GetLatest devuelve el puntero con mayor id; pgx.ErrNoRows si la tabla
	// esta vacia.
	GetLatest(ctx context.Context) (domain.ActiveSession, error)
}

// PgActiveRepository implementa ActiveRepository usando pgxpool.
type PgActiveRepository struct {
	pool *pgxpool.Pool
}

func NewPgActiveRepository(pool *pgxpool.Pool) *PgActiveRepository {
	return &PgActiveRepository{pool: pool}
}

func (r *PgActiveRepository) Create(ctx context.Context, email string) (domain.ActiveSession, error) {
	const query = `
		INSERT INTO active (email)
		VALUES ($1)
		RETURNING id
	`
	session := domain.ActiveSession{Email: email}
	err := r.pool.QueryRow(ctx, query, email).Scan(&session.ID)
	return session, err
}

func (r *PgActiveRepository) GetByEmail(ctx context.Context, email string) (domain.ActiveSession, error) {
	const query = `
		SELECT id, email
		FROM active
		WHERE email = $1
		LIMIT 1
	`
	var session domain.ActiveSession
	err := r.pool.QueryRow(ctx, query, email).Scan(&session.ID, &session.Email)
	return session, err
}

func (r *PgActiveRepository) GetLatest(ctx context.Context) (domain.ActiveSession, error) {
	const query = `
		SELECT id, email
		FROM active
		ORDER BY id DESC
		LIMIT 1
	`
	var session domain.ActiveSession
	err := r.pool.QueryRow(ctx, query).Scan(&session.ID, &session.Email)
	return session, err
}
