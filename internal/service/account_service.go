package service

import (
	"context"
	"errors"
	"strings"

	dom "Backoffice/internal/domain"
	"Backoffice/internal/repo"
	"Backoffice/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("email does not exist")
	ErrInvalidCredentials = errors.New("invalid password")
)

const bcryptCost = 10

// AccountService handles signup and credential validation.
type AccountService struct {
	repo repo.AccountRepo
}

// NewAccountService returns a new AccountService.
func NewAccountService(repo repo.AccountRepo) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates a new account with a hashed password. The pre-check keeps
// the common case cheap; the unique constraint on accounts.email catches the
// concurrent-signup race, surfaced as ErrEmailTaken either way.
func (s *AccountService) Register(ctx context.Context, email, password string) (dom.Account, error) {
	email = strings.TrimSpace(email)
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return dom.Account{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return dom.Account{}, err
	}
	a, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Account{}, ErrEmailTaken
		}
		return dom.Account{}, err
	}
	return a, nil
}

// ValidateCredentials checks email and password; returns the account if valid.
func (s *AccountService) ValidateCredentials(ctx context.Context, email, password string) (dom.Account, error) {
	email = strings.TrimSpace(email)
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Account{}, ErrAccountNotFound
		}
		return dom.Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return dom.Account{}, ErrInvalidCredentials
	}
	return a, nil
}
