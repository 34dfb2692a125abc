package config

import (
	"time"
)

type Config struct {
	ServerListenAddr       string `env:"RUN_ADDRESS" envDefault:"localhost:8000"`
	ServerShutdownTimeout  time.Duration
	ServerReadTimeout      time.Duration
	ServerWriteTimeout     time.Duration
	DatabaseDSN            string `env:"DATABASE_URI" envDefault:"postgres://onlinebank@localhost:5432/onlinebank?sslmode=disable"` // nolint: lll
	DatabaseConnectTimeout time.Duration
	LoginAttemptLimit      int           `env:"LOGIN_ATTEMPT_LIMIT" envDefault:"5"`
	LoginAttemptWindow     time.Duration `env:"LOGIN_ATTEMPT_WINDOW" envDefault:"60s"`
	LoginEvictionInterval  time.Duration
	LogLevel               string
	LogOutput              string
	Production             bool
}
