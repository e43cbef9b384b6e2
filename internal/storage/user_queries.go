package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"oidcsync/internal/models"
)

// FindUserByIssuerSubject returns the record linked to (iss, sub), or nil
// when no record exists for that pair.
func (p *DatabaseProvider) FindUserByIssuerSubject(ctx context.Context, iss, sub string) (*models.UserRecord, error) {
	query := `
		SELECT id, username, iss, sub, email, first_name, last_name, address, phone, creator, created_at, updated_at
		FROM users
		WHERE iss = $1 AND sub = $2
	`

	var user models.UserRecord
	err := p.pool.QueryRow(ctx, query, iss, sub).Scan(
		&user.ID,
		&user.Username,
		&user.Iss,
		&user.Sub,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Address,
		&user.Phone,
		&user.Creator,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by issuer and subject: %w", err)
	}

	return &user, nil
}

// UsernameExists reports whether the candidate identifier is already taken.
func (p *DatabaseProvider) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to probe username %q: %w", username, err)
	}

	return exists, nil
}

// SaveUser persists the record, creating or updating on the (iss, sub) key.
// The change comment is stored alongside the row for auditability.
func (p *DatabaseProvider) SaveUser(ctx context.Context, record *models.UserRecord, comment string) error {
	query := `
		INSERT INTO users (id, username, iss, sub, email, first_name, last_name, address, phone, creator, change_comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (iss, sub)
		DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			change_comment = EXCLUDED.change_comment,
			updated_at = CURRENT_TIMESTAMP
	`

	result, err := p.pool.Exec(ctx, query,
		record.ID,
		record.Username,
		record.Iss,
		record.Sub,
		record.Email,
		record.FirstName,
		record.LastName,
		record.Address,
		record.Phone,
		record.Creator,
		comment,
	)
	if err != nil {
		return fmt.Errorf("failed to save user %q: %w", record.Username, err)
	}

	if result.RowsAffected() != 1 {
		return fmt.Errorf("failed to save user %q: expected 1 row affected, got %d", record.Username, result.RowsAffected())
	}

	return nil
}

// AddUserToDefaultGroup enrolls the record in the configured default group.
func (p *DatabaseProvider) AddUserToDefaultGroup(ctx context.Context, record *models.UserRecord) error {
	query := `
		INSERT INTO user_groups (owner_iss, owner_sub, group_name)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`

	if _, err := p.pool.Exec(ctx, query, record.Iss, record.Sub, p.defaultGroup); err != nil {
		return fmt.Errorf("failed to enroll user %q in group %q: %w", record.Username, p.defaultGroup, err)
	}

	return nil
}
