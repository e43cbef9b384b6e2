package reconcile_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"oidcsync/internal/mocks"
	"oidcsync/internal/models"
	"oidcsync/internal/reconcile"
	"oidcsync/internal/storage"
	"oidcsync/internal/testutil"
)

const (
	testIssuer  = "https://auth.example.com"
	testSubject = "subject-1"
)

func slogFrom(h slog.Handler) *slog.Logger {
	return slog.New(h)
}

func newTestEngine(t *testing.T, observers ...reconcile.Observer) (*reconcile.Engine, *storage.MemoryProvider) {
	t.Helper()

	logger := testutil.NewTestLogHandler()
	store := storage.NewMemoryProvider("users")
	formatter := reconcile.NewFormatter("${oidc.user.subject.clean}", "", slogFrom(logger))

	return reconcile.NewEngine(store, formatter, slogFrom(logger), observers...), store
}

func testClaims() (*models.IDTokenClaims, *models.UserInfo) {
	idToken := &models.IDTokenClaims{
		Issuer:  testIssuer,
		Subject: testSubject,
	}
	info := &models.UserInfo{
		Subject:     testSubject,
		Email:       "steve@example.com",
		GivenName:   "Steve",
		FamilyName:  "Crowley",
		PhoneNumber: "+1 555 0100",
		Address:     &models.Address{Formatted: "1 Main St"},
	}
	return idToken, info
}

func TestEngineCreatesUserOnFirstSight(t *testing.T) {
	engine, store := newTestEngine(t)
	idToken, info := testClaims()

	identity, err := engine.Reconcile(context.Background(), idToken, info)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if identity.Name != testSubject {
		t.Errorf("expected username %q, got %q", testSubject, identity.Name)
	}

	record, err := store.FindUserByIssuerSubject(context.Background(), testIssuer, testSubject)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil {
		t.Fatal("expected record to be persisted")
	}

	if record.Creator != models.SystemCreator {
		t.Errorf("expected creator %q, got %q", models.SystemCreator, record.Creator)
	}
	if record.Email != "steve@example.com" || record.FirstName != "Steve" || record.LastName != "Crowley" {
		t.Errorf("profile fields not projected: %+v", record)
	}
	if record.Address != "1 Main St" {
		t.Errorf("expected formatted address, got %q", record.Address)
	}
	if record.Iss != testIssuer || record.Sub != testSubject {
		t.Errorf("linkage not set: iss=%q sub=%q", record.Iss, record.Sub)
	}

	groups := store.Groups(testIssuer, testSubject)
	if len(groups) != 1 || groups[0] != "users" {
		t.Errorf("expected default group enrollment, got %v", groups)
	}
}

func TestEngineIsIdempotent(t *testing.T) {
	engine, store := newTestEngine(t)
	idToken, info := testClaims()

	ctx := context.Background()
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}

	first, _ := store.FindUserByIssuerSubject(ctx, testIssuer, testSubject)

	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}

	second, _ := store.FindUserByIssuerSubject(ctx, testIssuer, testSubject)
	if !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Error("unchanged claims must not persist a new revision")
	}
}

func TestEngineUpdatesChangedFields(t *testing.T) {
	engine, store := newTestEngine(t)
	idToken, info := testClaims()

	ctx := context.Background()
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}

	info.Email = "new@example.com"
	identity, err := engine.Reconcile(ctx, idToken, info)
	if err != nil {
		t.Fatal(err)
	}

	if identity.Name != testSubject {
		t.Errorf("username must stay stable across updates, got %q", identity.Name)
	}

	record, _ := store.FindUserByIssuerSubject(ctx, testIssuer, testSubject)
	if record.Email != "new@example.com" {
		t.Errorf("expected updated email, got %q", record.Email)
	}
}

func TestEngineAbsentClaimsPreserveStoredValues(t *testing.T) {
	engine, store := newTestEngine(t)
	idToken, info := testClaims()

	ctx := context.Background()
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}

	// The provider stops asserting the optional claims; the stored values
	// must survive.
	sparse := &models.UserInfo{Subject: testSubject}
	if _, err := engine.Reconcile(ctx, idToken, sparse); err != nil {
		t.Fatal(err)
	}

	record, _ := store.FindUserByIssuerSubject(ctx, testIssuer, testSubject)
	if record.Email != "steve@example.com" || record.Address != "1 Main St" || record.Phone != "+1 555 0100" {
		t.Errorf("absent claims must not clear stored fields: %+v", record)
	}
}

func TestEngineUsernameCollisionSuffixes(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	for i, sub := range []string{"steve", "steve ", "steve,"} {
		idToken := &models.IDTokenClaims{Issuer: testIssuer, Subject: sub}
		info := &models.UserInfo{Subject: sub}

		identity, err := engine.Reconcile(ctx, idToken, info)
		if err != nil {
			t.Fatal(err)
		}

		want := "steve"
		if i > 0 {
			// Cleaned candidates collide, so suffixes count up from zero.
			want = map[int]string{1: "steve-0", 2: "steve-1"}[i]
		}
		if identity.Name != want {
			t.Errorf("reconcile %d: expected username %q, got %q", i, want, identity.Name)
		}
	}

	if taken, _ := store.UsernameExists(ctx, "steve-1"); !taken {
		t.Error("expected steve-1 to be reserved")
	}
}

func TestEngineObserverCanMutateWorkingCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	observer := mocks.NewMockObserver(ctrl)

	observer.EXPECT().UserUpdating(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, record *models.UserRecord, data reconcile.EventData) {
			record.Email = "rewritten@example.com"

			if data.UserInfo.Subject != testSubject {
				t.Errorf("snapshot subject = %q", data.UserInfo.Subject)
			}
		})
	observer.EXPECT().UserUpdated(gomock.Any(), gomock.Any(), gomock.Any())

	engine, store := newTestEngine(t, observer)
	idToken, info := testClaims()

	if _, err := engine.Reconcile(context.Background(), idToken, info); err != nil {
		t.Fatal(err)
	}

	record, _ := store.FindUserByIssuerSubject(context.Background(), testIssuer, testSubject)
	if record.Email != "rewritten@example.com" {
		t.Errorf("observer mutation must persist, got %q", record.Email)
	}
}

func TestEngineObserverSnapshotIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	idToken, info := testClaims()

	observer := mocks.NewMockObserver(ctrl)
	observer.EXPECT().UserUpdating(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, record *models.UserRecord, data reconcile.EventData) {
			// Mutating the snapshot must not reach the engine's claims.
			data.UserInfo.Address.Formatted = "tampered"
		})
	observer.EXPECT().UserUpdated(gomock.Any(), gomock.Any(), gomock.Any())

	engine, store := newTestEngine(t, observer)

	if _, err := engine.Reconcile(context.Background(), idToken, info); err != nil {
		t.Fatal(err)
	}

	if info.Address.Formatted != "1 Main St" {
		t.Errorf("snapshot aliased the input claims: %q", info.Address.Formatted)
	}

	record, _ := store.FindUserByIssuerSubject(context.Background(), testIssuer, testSubject)
	if record.Address != "1 Main St" {
		t.Errorf("expected original address persisted, got %q", record.Address)
	}
}

func TestEngineNoNotificationsWhenUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	observer := mocks.NewMockObserver(ctrl)

	// Both cycles raise the pre-update event, only the creating cycle ends in
	// a save and the post-update event.
	observer.EXPECT().UserUpdating(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	observer.EXPECT().UserUpdated(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	engine, _ := newTestEngine(t, observer)
	idToken, info := testClaims()

	ctx := context.Background()
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}
}

func TestEnginePreservesAuthorshipOnUpdate(t *testing.T) {
	engine, store := newTestEngine(t)
	idToken, info := testClaims()

	ctx := context.Background()
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}

	before, _ := store.FindUserByIssuerSubject(ctx, testIssuer, testSubject)

	info.Email = "changed@example.com"
	if _, err := engine.Reconcile(ctx, idToken, info); err != nil {
		t.Fatal(err)
	}

	after, _ := store.FindUserByIssuerSubject(ctx, testIssuer, testSubject)
	if after.Creator != before.Creator || after.ID != before.ID || after.Username != before.Username {
		t.Errorf("update rewrote identity or authorship: before=%+v after=%+v", before, after)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("update must not touch creation time")
	}
}

func TestEngineWrapsStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockUserStore(ctrl)
	boom := errors.New("boom")
	store.EXPECT().FindUserByIssuerSubject(gomock.Any(), testIssuer, testSubject).Return(nil, boom)

	logger := slogFrom(testutil.NewTestLogHandler())
	engine := reconcile.NewEngine(store, reconcile.NewFormatter("${oidc.user.subject}", "", logger), logger)

	idToken, info := testClaims()
	_, err := engine.Reconcile(context.Background(), idToken, info)

	var storeErr *reconcile.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeErr.Op != "lookup" || !errors.Is(err, boom) {
		t.Errorf("unexpected wrapped error: %v", err)
	}
}
