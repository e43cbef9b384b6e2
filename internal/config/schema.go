package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	OIDC     OIDCConfig     `yaml:"oidc"`
	Users    UsersConfig    `yaml:"users"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Sessions SessionConfig  `yaml:"sessions"`
	Storage  StorageConfig  `yaml:"storage"`
	Redis    *RedisConfig   `yaml:"redis"`
}

type ServerConfig struct {
	Port  int          `yaml:"port"`
	Debug *DebugConfig `yaml:"debug"`
}

// DebugConfig controls the separate listener exposing Prometheus metrics and
// pprof profiles.
type DebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

var DefaultDebugConfig = DebugConfig{
	Host: "localhost",
	Port: 9090,
}

type OIDCConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email", "phone", "address"},
}

// UsersConfig controls how fetched claims are reconciled into local records.
type UsersConfig struct {
	// UsernameTemplate builds the candidate local identifier from claim
	// variables, e.g. "${oidc.user.subject.clean}".
	UsernameTemplate string `yaml:"username_template"`
	// ProviderURL optionally exposes oidc.provider.* template variables.
	ProviderURL string `yaml:"provider_url"`
	// RefreshInterval is how long fetched userinfo stays fresh before the
	// background refresh may fire.
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	DefaultGroup    string        `yaml:"default_group"`
}

var DefaultUsersConfig = UsersConfig{
	UsernameTemplate: "${oidc.user.subject.clean}",
	RefreshInterval:  10 * time.Minute,
	DefaultGroup:     "users",
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	Secure:       true,
}

type StorageConfig struct {
	Driver   string `yaml:"driver"` // "memory" or "postgres"
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

var DefaultStorageConfig = StorageConfig{
	Driver:  "memory",
	Port:    5432,
	SSLMode: "disable",
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}
