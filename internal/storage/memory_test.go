package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"oidcsync/internal/models"
)

func testRecord() *models.UserRecord {
	return &models.UserRecord{
		ID:       uuid.New(),
		Username: "steve",
		Iss:      "https://auth.example.com",
		Sub:      "subject-1",
		Email:    "steve@example.com",
		Creator:  models.SystemCreator,
	}
}

func TestMemoryProviderFindReturnsNilWhenAbsent(t *testing.T) {
	p := NewMemoryProvider("users")

	record, err := p.FindUserByIssuerSubject(context.Background(), "iss", "sub")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record != nil {
		t.Errorf("expected nil record, got %+v", record)
	}
}

func TestMemoryProviderSaveAndFind(t *testing.T) {
	p := NewMemoryProvider("users")
	ctx := context.Background()
	record := testRecord()

	if err := p.SaveUser(ctx, record, "Create user from OpenID Connect"); err != nil {
		t.Fatal(err)
	}

	found, err := p.FindUserByIssuerSubject(ctx, record.Iss, record.Sub)
	if err != nil {
		t.Fatal(err)
	}
	if found == nil || found.Username != "steve" {
		t.Fatalf("expected saved record, got %+v", found)
	}
	if found.UpdatedAt.IsZero() || found.CreatedAt.IsZero() {
		t.Error("expected timestamps to be set on save")
	}
}

func TestMemoryProviderReturnsClones(t *testing.T) {
	p := NewMemoryProvider("users")
	ctx := context.Background()

	if err := p.SaveUser(ctx, testRecord(), "Create user from OpenID Connect"); err != nil {
		t.Fatal(err)
	}

	first, _ := p.FindUserByIssuerSubject(ctx, "https://auth.example.com", "subject-1")
	first.Email = "tampered@example.com"

	second, _ := p.FindUserByIssuerSubject(ctx, "https://auth.example.com", "subject-1")
	if second.Email != "steve@example.com" {
		t.Error("mutating a returned record must not affect the store")
	}
}

func TestMemoryProviderUsernameExists(t *testing.T) {
	p := NewMemoryProvider("users")
	ctx := context.Background()

	taken, err := p.UsernameExists(ctx, "steve")
	if err != nil {
		t.Fatal(err)
	}
	if taken {
		t.Error("expected username to be free")
	}

	if err := p.SaveUser(ctx, testRecord(), "Create user from OpenID Connect"); err != nil {
		t.Fatal(err)
	}

	taken, err = p.UsernameExists(ctx, "steve")
	if err != nil {
		t.Fatal(err)
	}
	if !taken {
		t.Error("expected username to be taken after save")
	}
}

func TestMemoryProviderDefaultGroupEnrollmentIsIdempotent(t *testing.T) {
	p := NewMemoryProvider("users")
	ctx := context.Background()
	record := testRecord()

	if err := p.AddUserToDefaultGroup(ctx, record); err != nil {
		t.Fatal(err)
	}
	if err := p.AddUserToDefaultGroup(ctx, record); err != nil {
		t.Fatal(err)
	}

	groups := p.Groups(record.Iss, record.Sub)
	if len(groups) != 1 || groups[0] != "users" {
		t.Errorf("expected single enrollment, got %v", groups)
	}
}
