package cmd

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the process settings read from the environment in cmd/app.
type Config struct {
	HTTPPort           string
	AppEnv             string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	JWTSecret          string
	JWTExpiresIn       time.Duration
	LogLevel           string
	LoginRatePerSecond float64
	LoginRateBurst     int
	TrustProxyHeaders  bool
	StatsCron          string
}

// IsDevelopment reports whether APP_ENV selects development mode.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// DSN is the libpq key/value connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

