package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidateUsersConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name: "empty config applies defaults",
			config: &Config{
				Users: UsersConfig{},
			},
			wantError: false,
		},
		{
			name: "custom template and interval",
			config: &Config{
				Users: UsersConfig{
					UsernameTemplate: "${oidc.user.mail.clean}",
					RefreshInterval:  5 * time.Minute,
				},
			},
			wantError: false,
		},
		{
			name: "refresh interval too short",
			config: &Config{
				Users: UsersConfig{
					RefreshInterval: 5 * time.Second,
				},
			},
			wantError: true,
			errMsg:    "cannot be less than 30 seconds",
		},
		{
			name: "malformed provider url",
			config: &Config{
				Users: UsersConfig{
					ProviderURL: "://not-a-url",
				},
			},
			wantError: true,
			errMsg:    "users.provider_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateUsersConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateUsersConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateUsersConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateUsersConfig() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestValidateUsersConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if err := cfg.validateUsersConfig(); err != nil {
		t.Fatalf("validateUsersConfig() unexpected error = %v", err)
	}

	if cfg.Users.UsernameTemplate != DefaultUsersConfig.UsernameTemplate {
		t.Errorf("expected default template %q, got %q", DefaultUsersConfig.UsernameTemplate, cfg.Users.UsernameTemplate)
	}
	if cfg.Users.RefreshInterval != DefaultUsersConfig.RefreshInterval {
		t.Errorf("expected default refresh interval %v, got %v", DefaultUsersConfig.RefreshInterval, cfg.Users.RefreshInterval)
	}
	if cfg.Users.DefaultGroup != DefaultUsersConfig.DefaultGroup {
		t.Errorf("expected default group %q, got %q", DefaultUsersConfig.DefaultGroup, cfg.Users.DefaultGroup)
	}
}

func TestValidateLogConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name:      "empty applies defaults",
			config:    &Config{},
			wantError: false,
		},
		{
			name: "valid json format",
			config: &Config{
				Log: LogConfig{Level: "debug", Format: "json"},
			},
			wantError: false,
		},
		{
			name: "invalid format",
			config: &Config{
				Log: LogConfig{Format: "xml"},
			},
			wantError: true,
			errMsg:    "invalid log format",
		},
		{
			name: "invalid level",
			config: &Config{
				Log: LogConfig{Level: "trace"},
			},
			wantError: true,
			errMsg:    "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateLogConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateLogConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateLogConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("validateLogConfig() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateStorageConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name:      "empty defaults to memory",
			config:    &Config{},
			wantError: false,
		},
		{
			name: "invalid driver",
			config: &Config{
				Storage: StorageConfig{Driver: "sqlite"},
			},
			wantError: true,
			errMsg:    "invalid storage driver",
		},
		{
			name: "postgres requires host",
			config: &Config{
				Storage: StorageConfig{Driver: "postgres", Username: "app", Database: "app"},
			},
			wantError: true,
			errMsg:    "storage.host is required",
		},
		{
			name: "complete postgres config",
			config: &Config{
				Storage: StorageConfig{
					Driver:   "postgres",
					Host:     "localhost",
					Username: "app",
					Database: "app",
				},
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateStorageConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateStorageConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateStorageConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("validateStorageConfig() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateSessionConfig(t *testing.T) {
	cfg := &Config{Sessions: SessionConfig{Store: "etcd"}}
	if err := cfg.validateSessionConfig(); err == nil {
		t.Error("expected error for unsupported session store")
	}

	cfg = &Config{}
	if err := cfg.validateSessionConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sessions.Store != "memory" {
		t.Errorf("expected default store memory, got %q", cfg.Sessions.Store)
	}
}

func TestValidateRedisConfig(t *testing.T) {
	cfg := &Config{}
	if err := cfg.validateRedisConfig(); err == nil {
		t.Error("expected error for missing redis config")
	}

	cfg = &Config{Redis: &RedisConfig{}}
	if err := cfg.validateRedisConfig(); err == nil {
		t.Error("expected error for missing redis address")
	}

	cfg = &Config{Redis: &RedisConfig{Sentinel: &RedisSentinelConfig{MasterName: "main"}}}
	if err := cfg.validateRedisConfig(); err == nil {
		t.Error("expected error for missing sentinel addresses")
	}

	cfg = &Config{Redis: &RedisConfig{Address: "localhost:6379"}}
	if err := cfg.validateRedisConfig(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
server:
  port: 9000
oidc:
  client_id: test_client
  client_secret: test_secret
  issuer_url: https://auth.example.com
  redirect_url: https://app.example.com/api/auth/callback
users:
  username_template: "${oidc.user.subject.clean}"
  refresh_interval: 1m
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Users.RefreshInterval != time.Minute {
		t.Errorf("expected refresh interval 1m, got %v", cfg.Users.RefreshInterval)
	}
	if cfg.Sessions.Store != "memory" {
		t.Errorf("expected default session store, got %q", cfg.Sessions.Store)
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	content := `
oidc:
  client_id: from_file
  client_secret: from_file
  issuer_url: https://auth.example.com
  redirect_url: https://app.example.com/api/auth/callback
`
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvOIDCClientSecret, "from_env")
	t.Setenv(EnvUsernameTemplate, "${oidc.user.mail}")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.OIDC.ClientSecret != "from_env" {
		t.Errorf("expected env override for client secret, got %q", cfg.OIDC.ClientSecret)
	}
	if cfg.Users.UsernameTemplate != "${oidc.user.mail}" {
		t.Errorf("expected env override for username template, got %q", cfg.Users.UsernameTemplate)
	}
}

func TestLoadConfigMissingPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for empty config path")
	}
}
