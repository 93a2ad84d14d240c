package repo

import (
	"context"

	dom "Backoffice/internal/domain"
)

// AccountRepo provides account persistence.
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (dom.Account, error)
	Create(ctx context.Context, email, passwordHash string) (dom.Account, error)
}

// PGAccountRepo implements AccountRepo with Postgres.
type PGAccountRepo struct {
	db Queryer
}

// NewPGAccountRepo returns a new PGAccountRepo.
func NewPGAccountRepo(db Queryer) *PGAccountRepo {
	return &PGAccountRepo{db: db}
}

// GetByEmail returns the account by email. pgx.ErrNoRows if absent.
func (r *PGAccountRepo) GetByEmail(ctx context.Context, email string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM accounts WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// Create inserts a new account and returns it.
func (r *PGAccountRepo) Create(ctx context.Context, email, passwordHash string) (dom.Account, error) {
	query := `
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at`
	var a dom.Account
	err := r.db.QueryRow(ctx, query, email, passwordHash).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt,
	)
	return a, err
}
