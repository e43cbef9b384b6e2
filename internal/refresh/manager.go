package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"oidcsync/internal/metrics"
	"oidcsync/internal/models"
)

//go:generate mockgen -source=manager.go -destination=../mocks/refresh.go -package=mocks

// Slots is the session-owned slot surface the scheduler consumes: the
// captured handshake outputs plus the single expiration-timer slot. Taking
// the timer is destructive; a caller that decides not to consume the value
// must restore it with SetUserInfoExpiration.
type Slots interface {
	GetUserInfoEndpoint(ctx context.Context) (string, bool)
	GetIDTokenClaims(ctx context.Context) (*models.IDTokenClaims, bool)
	GetAccessToken(ctx context.Context) (*oauth2.Token, bool)
	TakeUserInfoExpiration(ctx context.Context) (time.Time, bool)
	SetUserInfoExpiration(ctx context.Context, expiration time.Time)
}

// ClaimSource fetches userinfo claims with a bearer token.
type ClaimSource interface {
	Fetch(ctx context.Context, endpoint string, token *oauth2.Token) (*models.UserInfo, error)
}

// Reconciler merges fetched claims into the local record store.
type Reconciler interface {
	Reconcile(ctx context.Context, idToken *models.IDTokenClaims, info *models.UserInfo) (*models.Identity, error)
}

type task struct {
	endpoint string
	idToken  *models.IDTokenClaims
	token    *oauth2.Token
}

// Manager runs synchronous and asynchronous userinfo refreshes. Background
// tasks go through a sequential single-worker queue, so async refreshes
// never run concurrently with each other. A queued task always runs; there
// is no cancellation once enqueued.
type Manager struct {
	source   ClaimSource
	engine   Reconciler
	interval time.Duration
	logger   *slog.Logger

	tasks chan task
	wg    sync.WaitGroup
	once  sync.Once
}

func NewManager(source ClaimSource, engine Reconciler, interval time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		source:   source,
		engine:   engine,
		interval: interval,
		logger:   logger,
		tasks:    make(chan task, 16),
	}
}

// Start launches the background worker. The worker drains already-queued
// tasks before exiting on Stop.
func (m *Manager) Start() {
	m.wg.Add(1)
	go m.run()
}

// Stop closes the queue and waits for queued tasks to finish.
func (m *Manager) Stop() {
	m.once.Do(func() {
		close(m.tasks)
	})
	m.wg.Wait()
}

func (m *Manager) run() {
	defer m.wg.Done()

	for t := range m.tasks {
		metrics.RefreshQueueDepth.Set(float64(len(m.tasks)))

		// Background refreshes outlive the request that queued them.
		if _, err := m.refresh(context.Background(), t.endpoint, t.idToken, t.token); err != nil {
			m.logger.Error("failed to update user info", "error", err)
		}
	}
}

// UpdateUserInfo fetches userinfo and reconciles it inline. On success the
// expiration timer is reset to a fresh future value.
func (m *Manager) UpdateUserInfo(ctx context.Context, slots Slots, token *oauth2.Token) (*models.Identity, error) {
	endpoint, ok := slots.GetUserInfoEndpoint(ctx)
	if !ok {
		return nil, fmt.Errorf("no userinfo endpoint in session")
	}

	idToken, ok := slots.GetIDTokenClaims(ctx)
	if !ok {
		return nil, fmt.Errorf("no id token claims in session")
	}

	metrics.RefreshTasksTotal.WithLabelValues(metrics.RefreshTriggerSync).Inc()

	identity, err := m.refresh(ctx, endpoint, idToken, token)
	if err != nil {
		return nil, err
	}

	slots.SetUserInfoExpiration(ctx, time.Now().Add(m.interval))

	return identity, nil
}

// UpdateUserInfoAsync captures the endpoint, claims, and token immediately
// and queues a background refresh. Failures inside the task are logged and
// dropped, never surfaced.
func (m *Manager) UpdateUserInfoAsync(ctx context.Context, slots Slots) error {
	endpoint, ok := slots.GetUserInfoEndpoint(ctx)
	if !ok {
		return fmt.Errorf("no userinfo endpoint in session")
	}

	idToken, ok := slots.GetIDTokenClaims(ctx)
	if !ok {
		return fmt.Errorf("no id token claims in session")
	}

	token, ok := slots.GetAccessToken(ctx)
	if !ok {
		return fmt.Errorf("no access token in session")
	}

	metrics.RefreshTasksTotal.WithLabelValues(metrics.RefreshTriggerAsync).Inc()

	m.tasks <- task{endpoint: endpoint, idToken: idToken, token: token}
	metrics.RefreshQueueDepth.Set(float64(len(m.tasks)))

	return nil
}

// CheckUpdateUserInfo implements the single-slot timer protocol: take the
// expiration timestamp; if absent do nothing; if elapsed trigger a
// best-effort async refresh and install a fresh future expiration; otherwise
// restore the timestamp unchanged.
//
// The take/restore sequence is deliberately unguarded: concurrent calls can
// both observe an elapsed timer and both enqueue a refresh. The sequential
// queue and the engine's idempotence make the duplicate harmless.
func (m *Manager) CheckUpdateUserInfo(ctx context.Context, slots Slots) {
	expiration, ok := slots.TakeUserInfoExpiration(ctx)
	if !ok {
		return
	}

	if expiration.Before(time.Now()) {
		if err := m.UpdateUserInfoAsync(ctx, slots); err != nil {
			m.logger.Error("failed to queue user info refresh", "error", err)
		}

		// The counter restarts at trigger time, not on task completion.
		slots.SetUserInfoExpiration(ctx, time.Now().Add(m.interval))
	} else {
		slots.SetUserInfoExpiration(ctx, expiration)
	}
}

func (m *Manager) refresh(ctx context.Context, endpoint string, idToken *models.IDTokenClaims, token *oauth2.Token) (*models.Identity, error) {
	info, err := m.source.Fetch(ctx, endpoint, token)
	if err != nil {
		return nil, err
	}

	return m.engine.Reconcile(ctx, idToken, info)
}
