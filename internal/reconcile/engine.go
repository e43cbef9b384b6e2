package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"oidcsync/internal/metrics"
	"oidcsync/internal/models"
	"oidcsync/internal/storage"
	"oidcsync/internal/utils"
)

const (
	createComment = "Create user from OpenID Connect"
	updateComment = "Update user from OpenID Connect"
)

// Engine reconciles verified identity claims with the local user record
// store: find-or-create, field projection, diff check, persist, notify.
type Engine struct {
	store     storage.UserStore
	formatter *Formatter
	observers []Observer
	logger    *slog.Logger
}

func NewEngine(store storage.UserStore, formatter *Formatter, logger *slog.Logger, observers ...Observer) *Engine {
	return &Engine{
		store:     store,
		formatter: formatter,
		observers: observers,
		logger:    logger,
	}
}

// Reconcile merges the fetched claims into the local record linked to the
// claims' (issuer, subject) pair, creating the record on first sight. The
// call is idempotent: reconciling unchanged claims against an existing
// record performs no save and raises no notifications.
func (e *Engine) Reconcile(ctx context.Context, idToken *models.IDTokenClaims, info *models.UserInfo) (*models.Identity, error) {
	record, err := e.store.FindUserByIssuerSubject(ctx, idToken.Issuer, info.Subject)
	if err != nil {
		metrics.ReconcileErrors.WithLabelValues("lookup").Inc()
		return nil, &StoreError{Op: "lookup", Err: err}
	}

	var working *models.UserRecord
	newUser := record == nil

	if newUser {
		username, err := e.newUsername(ctx, idToken, info)
		if err != nil {
			metrics.ReconcileErrors.WithLabelValues("reserve").Inc()
			return nil, err
		}

		record = &models.UserRecord{
			ID:        uuid.New(),
			Username:  username,
			Creator:   models.SystemCreator,
			CreatedAt: time.Now(),
		}
		working = record
	} else {
		// Work on a clone so field edits cannot touch the stored record's
		// provenance metadata.
		working = record.Clone()
	}

	projectFields(working, info)

	working.Iss = idToken.Issuer
	working.Sub = info.Subject

	data := NewEventData(idToken, info)

	for _, observer := range e.observers {
		observer.UserUpdating(ctx, working, data)
	}

	if newUser || record.Apply(working) {
		comment := updateComment
		if newUser {
			comment = createComment
		}

		if err := e.store.SaveUser(ctx, record, comment); err != nil {
			metrics.ReconcileErrors.WithLabelValues("save").Inc()
			return nil, &StoreError{Op: "save", Err: err}
		}

		if newUser {
			if err := e.store.AddUserToDefaultGroup(ctx, record); err != nil {
				metrics.ReconcileErrors.WithLabelValues("enroll").Inc()
				return nil, &StoreError{Op: "enroll", Err: err}
			}

			metrics.ReconcileTotal.WithLabelValues(metrics.ReconcileResultCreated).Inc()
			e.logger.Info("created user from claims", "username", record.Username, "iss", record.Iss, "sub", record.Sub, "email", utils.RedactEmail(record.Email))
		} else {
			metrics.ReconcileTotal.WithLabelValues(metrics.ReconcileResultUpdated).Inc()
			e.logger.Info("updated user from claims", "username", record.Username)
		}

		for _, observer := range e.observers {
			observer.UserUpdated(ctx, record, data)
		}
	} else {
		metrics.ReconcileTotal.WithLabelValues(metrics.ReconcileResultUnchanged).Inc()
		e.logger.Debug("claims unchanged, skipping save", "username", record.Username)
	}

	return &models.Identity{Name: record.Username}, nil
}

// projectFields copies the profile attributes present in the claims onto the
// working copy. Absent claims leave the stored values untouched. Zoneinfo and
// picture are fetched but not projected: the record has no slot for either
// yet.
func projectFields(working *models.UserRecord, info *models.UserInfo) {
	if info.Address != nil {
		working.Address = info.Address.Formatted
	}

	if info.Email != "" {
		working.Email = info.Email
	}

	if info.FamilyName != "" {
		working.LastName = info.FamilyName
	}

	if info.GivenName != "" {
		working.FirstName = info.GivenName
	}

	if info.PhoneNumber != "" {
		working.Phone = info.PhoneNumber
	}
}

// newUsername formats the base candidate and probes the store until an
// unused identifier is found, appending ascending integer suffixes on
// collision. No gaps are reused.
func (e *Engine) newUsername(ctx context.Context, idToken *models.IDTokenClaims, info *models.UserInfo) (string, error) {
	base := e.formatter.Format(idToken, info)

	username := base
	for index := 0; ; index++ {
		taken, err := e.store.UsernameExists(ctx, username)
		if err != nil {
			return "", &StoreError{Op: "reserve", Err: err}
		}

		if !taken {
			return username, nil
		}

		username = fmt.Sprintf("%s-%d", base, index)
	}
}
