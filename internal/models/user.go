package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemCreator is the elevated identity assigned as creation provenance for
// records created by the reconciliation engine. Creating a record must never
// grant privilege derived from the invoking session.
const SystemCreator = "system"

// UserRecord is the persistent local user entity. At most one record exists
// per (Iss, Sub) pair, and Username is stable once assigned.
type UserRecord struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Iss       string    `json:"iss"`
	Sub       string    `json:"sub"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a working copy suitable for staging changes before the
// diff/persist decision.
func (u *UserRecord) Clone() *UserRecord {
	clone := *u
	return &clone
}

// Apply copies the projectable fields of other onto u and reports whether
// anything actually changed. Identity, username, and creation provenance are
// never touched, so applying a working copy cannot rewrite authorship.
func (u *UserRecord) Apply(other *UserRecord) bool {
	changed := false

	set := func(dst *string, v string) {
		if *dst != v {
			*dst = v
			changed = true
		}
	}

	set(&u.Iss, other.Iss)
	set(&u.Sub, other.Sub)
	set(&u.Email, other.Email)
	set(&u.FirstName, other.FirstName)
	set(&u.LastName, other.LastName)
	set(&u.Address, other.Address)
	set(&u.Phone, other.Phone)

	return changed
}
