// Package config loads the application configuration from the
// environment, optionally seeded from a .env file.
package config

import "time"

// App is the root application configuration.
type App struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Server    Server
	DB        DB
	Jwt       Jwt
	Log       Log
	RateLimit RateLimit
}

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"SERVER_PORT" default:"3000"`
}

// DB holds the Postgres connection settings.
type DB struct {
	Url          string `envconfig:"DATABASE_URL"`
	MaxOpenConns int    `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"25"`
}

// Jwt holds the token signing settings.
type Jwt struct {
	Secret string        `envconfig:"JWT_SECRET"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

// Log holds the logger settings.
type Log struct {
	Level      int    `envconfig:"LOG_LEVEL" default:"0"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"`
	Prefix     string `envconfig:"LOG_PREFIX" default:"hauskasse"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"15:04:05"`
}

// RateLimit holds the per-IP request limiter settings.
type RateLimit struct {
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"20"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1s"`
}
