// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultBaseURL is TheMealDB public API root; endpoint paths are appended to it.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"
	// DefaultHTTPAddr is where the HTTP transport listens when none is configured.
	DefaultHTTPAddr = "127.0.0.1:8080"
	// DefaultServerName is the implementation name announced to MCP hosts.
	DefaultServerName = "mealdb-server"
	// DefaultServerVersion is the implementation version announced to MCP hosts.
	DefaultServerVersion = "1.0.0"
)

// Transport modes accepted by the serve command.
const (
	TransportStdio  = "stdio"
	TransportFramed = "framed"
	TransportHTTP   = "http"
)

// Config represents the top-level application configuration.
type Config struct {
	BaseURL        string `json:"baseURL,omitempty" mapstructure:"baseURL"`
	TimeoutSeconds int    `json:"timeout,omitempty" mapstructure:"timeout"`
	Transport      string `json:"transport,omitempty" mapstructure:"transport"`
	HTTPAddr       string `json:"httpAddr,omitempty" mapstructure:"httpAddr"`
	LogFile        string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug          bool   `json:"debug" mapstructure:"debug"`
	ServerName     string `json:"serverName,omitempty" mapstructure:"serverName"`
	ServerVersion  string `json:"serverVersion,omitempty" mapstructure:"serverVersion"`
	ConfigPath     string `json:"-" mapstructure:"-"`
}

// BaseURLOrDefault returns the MealDB API root without a trailing slash.
func (c Config) BaseURLOrDefault() string {
	if u := strings.TrimSpace(c.BaseURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return DefaultBaseURL
}

// RequestTimeout returns the HTTP client timeout. Zero means the client
// imposes no deadline of its own.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TransportMode returns the normalized transport name, defaulting to stdio.
func (c Config) TransportMode() string {
	mode := strings.ToLower(strings.TrimSpace(c.Transport))
	if mode == "" {
		return TransportStdio
	}
	return mode
}

// HTTPAddrOrDefault returns the listen address for the HTTP transport.
func (c Config) HTTPAddrOrDefault() string {
	if addr := strings.TrimSpace(c.HTTPAddr); addr != "" {
		return addr
	}
	return DefaultHTTPAddr
}

// LogFilePath returns the log file path. Empty means console only.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Implementation returns the server name and version announced on initialize.
func (c Config) Implementation() (string, string) {
	name := strings.TrimSpace(c.ServerName)
	if name == "" {
		name = DefaultServerName
	}
	version := strings.TrimSpace(c.ServerVersion)
	if version == "" {
		version = DefaultServerVersion
	}
	return name, version
}

// Validate reports configuration values that cannot be served.
func (c Config) Validate() error {
	switch c.TransportMode() {
	case TransportStdio, TransportFramed, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q: must be one of %s, %s, %s", c.Transport, TransportStdio, TransportFramed, TransportHTTP)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid timeout %d: must not be negative", c.TimeoutSeconds)
	}
	return nil
}
