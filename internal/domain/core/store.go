package core

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) CreateOrganization(ctx context.Context, name, email, passwordHash, industry string) (Organization, error) {
	var org Organization
	err := s.DB.QueryRow(ctx, `
    INSERT INTO organizations (name, email, password_hash, industry)
    VALUES ($1,$2,$3,$4)
    RETURNING id, name, email, COALESCE(industry, ''), created_at
  `, name, email, passwordHash, nullIfEmpty(industry)).Scan(&org.ID, &org.Name, &org.Email, &org.Industry, &org.CreatedAt)
	return org, err
}

func (s *Store) OrganizationEmailTaken(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM organizations WHERE email = $1", email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// OrganizationByEmail returns the organization and its credential hash for
// admin login.
func (s *Store) OrganizationByEmail(ctx context.Context, email string) (Organization, string, error) {
	var org Organization
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, COALESCE(industry, ''), password_hash, created_at
    FROM organizations
    WHERE email = $1
  `, email).Scan(&org.ID, &org.Name, &org.Email, &org.Industry, &hash, &org.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Organization{}, "", ErrNotFound
	}
	if err != nil {
		return Organization{}, "", err
	}
	return org, hash, nil
}

func (s *Store) GetOrganization(ctx context.Context, orgID string) (Organization, error) {
	var org Organization
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, email, COALESCE(industry, ''), created_at
    FROM organizations
    WHERE id = $1
  `, orgID).Scan(&org.ID, &org.Name, &org.Email, &org.Industry, &org.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Organization{}, ErrNotFound
	}
	return org, err
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
