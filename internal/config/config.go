package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"oidcsync/internal/utils"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvOIDCClientID      = "OIDCSYNC_OIDC_CLIENT_ID"
	EnvOIDCClientSecret  = "OIDCSYNC_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL     = "OIDCSYNC_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL   = "OIDCSYNC_OIDC_REDIRECT_URL"
	EnvRedisPassword     = "OIDCSYNC_REDIS_PASSWORD"
	EnvRedisUsername     = "OIDCSYNC_REDIS_USERNAME"
	EnvStorageHost       = "OIDCSYNC_STORAGE_HOST"
	EnvStoragePort       = "OIDCSYNC_STORAGE_PORT"
	EnvStorageUsername   = "OIDCSYNC_STORAGE_USERNAME"
	EnvStoragePassword   = "OIDCSYNC_STORAGE_PASSWORD"
	EnvStorageDatabase   = "OIDCSYNC_STORAGE_DATABASE"
	EnvUsernameTemplate  = "OIDCSYNC_USERS_USERNAME_TEMPLATE"
	EnvUsersProviderURL  = "OIDCSYNC_USERS_PROVIDER_URL"
)

func applyEnvironmentOverrides(config *Config) {
	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		config.OIDC.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		config.OIDC.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		config.OIDC.RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if host := os.Getenv(EnvStorageHost); host != "" {
		config.Storage.Host = host
	}

	if portStr := os.Getenv(EnvStoragePort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Storage.Port = port
		}
	}

	if username := os.Getenv(EnvStorageUsername); username != "" {
		config.Storage.Username = username
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		config.Storage.Password = password
	}

	if database := os.Getenv(EnvStorageDatabase); database != "" {
		config.Storage.Database = database
	}

	if template := os.Getenv(EnvUsernameTemplate); template != "" {
		config.Users.UsernameTemplate = template
	}

	if providerURL := os.Getenv(EnvUsersProviderURL); providerURL != "" {
		config.Users.ProviderURL = providerURL
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateOIDCConfig()
	if err != nil {
		return err
	}

	err = config.validateUsersConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	if config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port == 0 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
		if c.Server.Debug.Port == c.Server.Port {
			return fmt.Errorf("server.debug.port must differ from server.port")
		}
	}

	return nil
}

func (c *Config) validateOIDCConfig() error {
	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc client id is required")
	}

	if c.OIDC.ClientSecret == "" {
		return fmt.Errorf("oidc client secret is required")
	}

	if err := validateURL(c.OIDC.IssuerURL, "issuer_url"); err != nil {
		return err
	}

	if err := validateURL(c.OIDC.RedirectURI, "redirect_url"); err != nil {
		return err
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateUsersConfig() error {
	if c.Users.UsernameTemplate == "" {
		c.Users.UsernameTemplate = DefaultUsersConfig.UsernameTemplate
	}

	if c.Users.DefaultGroup == "" {
		c.Users.DefaultGroup = DefaultUsersConfig.DefaultGroup
	}

	if c.Users.RefreshInterval == 0 {
		c.Users.RefreshInterval = DefaultUsersConfig.RefreshInterval
	}

	if c.Users.RefreshInterval < 30*time.Second {
		return fmt.Errorf("users.refresh_interval cannot be less than 30 seconds")
	}

	// A malformed provider URL is tolerated at runtime by omitting the
	// derived template variables, but reject it here where the operator can
	// still fix it.
	if c.Users.ProviderURL != "" {
		if err := validateURL(c.Users.ProviderURL, "users.provider_url"); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else if !utils.IsStringInSlice(c.Log.Format, []string{"text", "json"}) {
		return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else if !utils.IsStringInSlice(c.Log.Level, []string{"debug", "info", "warn", "error"}) {
		return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else if !utils.IsStringInSlice(c.Sessions.Store, []string{"memory", "redis"}) {
		return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DefaultStorageConfig.Driver
	} else if !utils.IsStringInSlice(c.Storage.Driver, []string{"memory", "postgres"}) {
		return fmt.Errorf("invalid storage driver: %s, options are 'memory' or 'postgres'", c.Storage.Driver)
	}

	if c.Storage.Driver == "postgres" {
		if c.Storage.Host == "" {
			return fmt.Errorf("storage.host is required for the postgres driver")
		}
		if c.Storage.Port == 0 {
			c.Storage.Port = DefaultStorageConfig.Port
		}
		if c.Storage.Username == "" {
			return fmt.Errorf("storage.username is required for the postgres driver")
		}
		if c.Storage.Database == "" {
			return fmt.Errorf("storage.database is required for the postgres driver")
		}
		if c.Storage.SSLMode == "" {
			c.Storage.SSLMode = DefaultStorageConfig.SSLMode
		}
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is required when sessions.store is 'redis'")
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("redis.sentinel.master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("redis.sentinel.addresses is required")
		}
	} else if c.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}

	return nil
}
