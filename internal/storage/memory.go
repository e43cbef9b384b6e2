package storage

import (
	"context"
	"sync"
	"time"

	"oidcsync/internal/models"
)

// MemoryProvider is an in-memory UserStore for tests and single-node runs.
type MemoryProvider struct {
	mu           sync.RWMutex
	byIdentity   map[identityKey]*models.UserRecord
	byUsername   map[string]*models.UserRecord
	groups       map[identityKey][]string
	defaultGroup string
}

type identityKey struct {
	iss string
	sub string
}

func NewMemoryProvider(defaultGroup string) *MemoryProvider {
	return &MemoryProvider{
		byIdentity:   make(map[identityKey]*models.UserRecord),
		byUsername:   make(map[string]*models.UserRecord),
		groups:       make(map[identityKey][]string),
		defaultGroup: defaultGroup,
	}
}

func (p *MemoryProvider) FindUserByIssuerSubject(ctx context.Context, iss, sub string) (*models.UserRecord, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	record, ok := p.byIdentity[identityKey{iss: iss, sub: sub}]
	if !ok {
		return nil, nil
	}

	return record.Clone(), nil
}

func (p *MemoryProvider) UsernameExists(ctx context.Context, username string) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.byUsername[username]
	return ok, nil
}

func (p *MemoryProvider) SaveUser(ctx context.Context, record *models.UserRecord, comment string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := record.Clone()
	stored.UpdatedAt = time.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = stored.UpdatedAt
	}

	p.byIdentity[identityKey{iss: stored.Iss, sub: stored.Sub}] = stored
	p.byUsername[stored.Username] = stored

	return nil
}

func (p *MemoryProvider) AddUserToDefaultGroup(ctx context.Context, record *models.UserRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := identityKey{iss: record.Iss, sub: record.Sub}
	for _, group := range p.groups[key] {
		if group == p.defaultGroup {
			return nil
		}
	}
	p.groups[key] = append(p.groups[key], p.defaultGroup)

	return nil
}

// Groups returns the group memberships for a record. Test helper.
func (p *MemoryProvider) Groups(iss, sub string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]string(nil), p.groups[identityKey{iss: iss, sub: sub}]...)
}
