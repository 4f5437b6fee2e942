package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

const (
	defaultTokenLifetime = 168 * time.Hour
	defaultPort          = 8080
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BLOG_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BLOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/blog-api"
	}
	return dbFolderPath
}

func GetDBPath() string {
	if dbPath := os.Getenv("BLOG_DB_PATH"); dbPath != "" {
		return dbPath
	}
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BLOG_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("BLOG_LISTEN")
}

func GetPort() int {
	portStr := os.Getenv("BLOG_PORT")
	if portStr == "" {
		return defaultPort
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return defaultPort
	}
	return port
}

// GetJWTSecret returns the symmetric signing key for session tokens.
// The key is read once per call from the environment; it is loaded into the
// token service at startup and never mutated afterwards.
func GetJWTSecret() []byte {
	secret := os.Getenv("BLOG_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// GetTokenLifetime returns how long issued session tokens stay valid.
// Accepts any Go duration string, e.g. "72h".
func GetTokenLifetime() time.Duration {
	lifetime := os.Getenv("BLOG_TOKEN_LIFETIME")
	if lifetime == "" {
		return defaultTokenLifetime
	}
	d, err := time.ParseDuration(lifetime)
	if err != nil || d <= 0 {
		return defaultTokenLifetime
	}
	return d
}

// GetAdminPassword returns the password for the seeded admin account,
// or empty when one should be generated.
func GetAdminPassword() string {
	return os.Getenv("BLOG_ADMIN_PASSWORD")
}
