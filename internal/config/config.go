package config

import (
	"fmt"
	"time"
)

// Config is the application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Quotes    QuotesConfig    `mapstructure:"quotes"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress returns the listen address.
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig points at the sqlite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig holds the signing key and lifetime for session cookies.
type SessionConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// GetExpireDuration returns the session lifetime.
func (s *SessionConfig) GetExpireDuration() time.Duration {
	return time.Duration(s.ExpireMinutes) * time.Minute
}

// AdminConfig holds the administrator credentials. The password is kept as
// a bcrypt hash, never plaintext.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
}

// QuotesConfig points at the motivational quote collection.
type QuotesConfig struct {
	Path string `mapstructure:"path"`
}

// TemplatesConfig points at the HTML template files.
type TemplatesConfig struct {
	Glob string `mapstructure:"glob"`
}
