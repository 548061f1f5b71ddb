package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"greenai-backend/internal/domain"
)

// UserRepository define el contrato de persistencia para perfiles.
type UserRepository interface {
	Create(ctx context.Context, user domain.UserDetails) (int64, error)
	GetByEmail(ctx context.Context, email string) (domain.UserDetails, error)
	Update(ctx context.Context, user domain.UserDetails) error
	// UpdateWithActiveEmail actualiza el perfil y el puntero activo en la
	// misma transaccion, para que un cambio de email no los desalinee.
	UpdateWithActiveEmail(ctx context.Context, user domain.UserDetails, activeID int64) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.UserDetails) (int64, error) {
	const query = `
		INSERT INTO userdetails (name, email, mobile, language, location, crops, land_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Mobile,
		user.Language,
		user.Location,
		user.Crops,
		user.LandSize,
	).Scan(&id)
	return id, err
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.UserDetails, error) {
	const query = `
		SELECT id, name, email, mobile, language, location, crops, land_size
		FROM userdetails
		WHERE email = $1
		LIMIT 1
	`
	var u domain.UserDetails
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Mobile,
		&u.Language,
		&u.Location,
		&u.Crops,
		&u.LandSize,
	)
	return u, err
}

const updateUserQuery = `
	UPDATE userdetails
	SET name = $2, email = $3, mobile = $4, language = $5, location = $6, crops = $7, land_size = $8
	WHERE id = $1
`

func (r *PgUserRepository) Update(ctx context.Context, user domain.UserDetails) error {
	_, err := r.pool.Exec(ctx, updateUserQuery,
		user.ID,
		user.Name,
		user.Email,
		user.Mobile,
		user.Language,
		user.Location,
		user.Crops,
		user.LandSize,
	)
	return err
}

func (r *PgUserRepository) UpdateWithActiveEmail(ctx context.Context, user domain.UserDetails, activeID int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, updateUserQuery,
			user.ID,
			user.Name,
			user.Email,
			user.Mobile,
			user.Language,
			user.Location,
			user.Crops,
			user.LandSize,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `UPDATE active SET email = $2 WHERE id = $1`, activeID, user.Email)
		return err
	})
}
