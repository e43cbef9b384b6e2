package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUserRecordApply(t *testing.T) {
	base := &UserRecord{
		ID:        uuid.New(),
		Username:  "steve",
		Iss:       "https://auth.example.com",
		Sub:       "subject-1",
		Email:     "steve@example.com",
		Creator:   SystemCreator,
		CreatedAt: time.Now().Add(-time.Hour),
	}

	t.Run("unchanged copy reports no diff", func(t *testing.T) {
		if base.Clone().Apply(base) {
			t.Error("identical records must not report a change")
		}
	})

	t.Run("field edits are applied and reported", func(t *testing.T) {
		record := base.Clone()
		working := base.Clone()
		working.Email = "new@example.com"
		working.Phone = "+1 555 0100"

		if !record.Apply(working) {
			t.Fatal("expected a reported change")
		}
		if record.Email != "new@example.com" || record.Phone != "+1 555 0100" {
			t.Errorf("fields not applied: %+v", record)
		}
	})

	t.Run("identity and provenance are never copied", func(t *testing.T) {
		record := base.Clone()
		working := base.Clone()
		working.ID = uuid.New()
		working.Username = "other"
		working.Creator = "attacker"
		working.CreatedAt = time.Now()

		if record.Apply(working) {
			t.Error("provenance-only edits must not count as a change")
		}
		if record.ID != base.ID || record.Username != "steve" || record.Creator != SystemCreator {
			t.Errorf("apply touched protected fields: %+v", record)
		}
		if !record.CreatedAt.Equal(base.CreatedAt) {
			t.Error("apply touched creation time")
		}
	})
}

func TestUserRecordClone(t *testing.T) {
	record := &UserRecord{Username: "steve", Email: "steve@example.com"}

	clone := record.Clone()
	clone.Email = "edited@example.com"

	if record.Email != "steve@example.com" {
		t.Error("clone must not alias the original")
	}
}
