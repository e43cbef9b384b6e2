package auth

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"

	"oidcsync/internal/config"
	"oidcsync/internal/models"
)

type SessionManager struct {
	*scs.SessionManager

	redisClient *redis.Client
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	gob.Register(&models.IDTokenClaims{})
	gob.Register(&models.Identity{})
	gob.Register(&oauth2.Token{})

	sessionManager := scs.New()

	var redisClient *redis.Client

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		sessionManager.Store = goredisstore.New(client)
		redisClient = client
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.FixedTimeout

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{SessionManager: sessionManager, redisClient: redisClient}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

// RedisClient returns the backing redis client, or nil when sessions live in
// memory. Used for registering connection metrics.
func (s *SessionManager) RedisClient() *redis.Client {
	return s.redisClient
}

func (s *SessionManager) SetIdentity(ctx context.Context, identity *models.Identity) {
	s.Put(ctx, string(SessionKeyIdentity), identity)
}

func (s *SessionManager) GetIdentity(ctx context.Context) (*models.Identity, bool) {
	data := s.Get(ctx, string(SessionKeyIdentity))
	if data == nil {
		return nil, false
	}

	if identity, ok := data.(*models.Identity); ok {
		return identity, true
	}

	return nil, false
}

func (s *SessionManager) SetAuthenticated(ctx context.Context, authenticated bool) {
	s.Put(ctx, string(SessionKeyAuthenticated), authenticated)
}

func (s *SessionManager) IsAuthenticated(ctx context.Context) bool {
	return s.GetBool(ctx, string(SessionKeyAuthenticated))
}

func (s *SessionManager) SetAccessToken(ctx context.Context, token *oauth2.Token) {
	s.Put(ctx, string(SessionKeyAccessToken), token)
}

func (s *SessionManager) GetAccessToken(ctx context.Context) (*oauth2.Token, bool) {
	data := s.Get(ctx, string(SessionKeyAccessToken))
	if data == nil {
		return nil, false
	}

	if token, ok := data.(*oauth2.Token); ok {
		return token, true
	}

	return nil, false
}

func (s *SessionManager) SetIDTokenClaims(ctx context.Context, claims *models.IDTokenClaims) {
	s.Put(ctx, string(SessionKeyIDTokenClaims), claims)
}

func (s *SessionManager) GetIDTokenClaims(ctx context.Context) (*models.IDTokenClaims, bool) {
	data := s.Get(ctx, string(SessionKeyIDTokenClaims))
	if data == nil {
		return nil, false
	}

	if claims, ok := data.(*models.IDTokenClaims); ok {
		return claims, true
	}

	return nil, false
}

func (s *SessionManager) SetUserInfoEndpoint(ctx context.Context, endpoint string) {
	s.Put(ctx, string(SessionKeyUserInfoEndpoint), endpoint)
}

func (s *SessionManager) GetUserInfoEndpoint(ctx context.Context) (string, bool) {
	endpoint := s.GetString(ctx, string(SessionKeyUserInfoEndpoint))
	return endpoint, endpoint != ""
}

// SetUserInfoExpiration installs the expiration timestamp gating the next
// background userinfo refresh.
func (s *SessionManager) SetUserInfoExpiration(ctx context.Context, expiration time.Time) {
	s.Put(ctx, string(SessionKeyUserInfoExpiration), expiration.Unix())
}

// TakeUserInfoExpiration removes and returns the expiration timestamp. The
// read is destructive: a caller that does not consume the value must put it
// back with SetUserInfoExpiration.
func (s *SessionManager) TakeUserInfoExpiration(ctx context.Context) (time.Time, bool) {
	data := s.Pop(ctx, string(SessionKeyUserInfoExpiration))
	if data == nil {
		return time.Time{}, false
	}

	timestamp, ok := data.(int64)
	if !ok || timestamp == 0 {
		return time.Time{}, false
	}

	return time.Unix(timestamp, 0), true
}

func (s *SessionManager) SetRedirectAfterLogin(ctx context.Context, redirectAfterLogin string) {
	s.Put(ctx, string(SessionKeyRedirectAfterLogin), redirectAfterLogin)
}

func (s *SessionManager) GetRedirectAfterLogin(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyRedirectAfterLogin))
}

func (s *SessionManager) SetOauthState(ctx context.Context, state string) {
	s.Put(ctx, string(SessionKeyOauthState), state)
}

func (s *SessionManager) GetOauthState(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) ClearOauthState(ctx context.Context) {
	s.Remove(ctx, string(SessionKeyOauthState))
}

func (s *SessionManager) SetOauthNonce(ctx context.Context, nonce string) {
	s.Put(ctx, string(SessionKeyOauthNonce), nonce)
}

func (s *SessionManager) GetOauthNonce(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) ClearOauthNonce(ctx context.Context) {
	s.Remove(ctx, string(SessionKeyOauthNonce))
}

func (s *SessionManager) SetOauthCodeVerifier(ctx context.Context, verifier string) {
	s.Put(ctx, string(SessionKeyOauthCodeVerifier), verifier)
}

func (s *SessionManager) GetOauthCodeVerifier(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyOauthCodeVerifier))
}

func (s *SessionManager) ClearOauthCodeVerifier(ctx context.Context) {
	s.Remove(ctx, string(SessionKeyOauthCodeVerifier))
}

// Logout clears every OIDC session slot so nothing related to the previous
// authenticated user stays reachable, then rotates the session token. The
// slots are always cleared together: a partial clear can leave a stale
// identity behind.
func (s *SessionManager) Logout(ctx context.Context) error {
	for _, key := range oidcSessionKeys {
		s.Remove(ctx, string(key))
	}

	return s.RenewToken(ctx)
}
