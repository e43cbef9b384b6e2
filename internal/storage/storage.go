package storage

import (
	"context"

	"oidcsync/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// UserStore is the persistence boundary of the reconciliation engine. A
// single-record save is atomic; the engine never performs multi-record
// transactions through this interface.
type UserStore interface {
	// FindUserByIssuerSubject returns the record linked to (iss, sub), or
	// nil when no such record exists.
	FindUserByIssuerSubject(ctx context.Context, iss, sub string) (*models.UserRecord, error)

	// UsernameExists probes whether a candidate identifier is already taken.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// SaveUser persists the record with a descriptive change comment,
	// creating or updating as needed.
	SaveUser(ctx context.Context, record *models.UserRecord, comment string) error

	// AddUserToDefaultGroup enrolls the record in the default group for
	// authenticated users.
	AddUserToDefaultGroup(ctx context.Context, record *models.UserRecord) error
}
