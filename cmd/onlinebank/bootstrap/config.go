package bootstrap

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/akbarw/onlinebank/cmd/onlinebank/config"
)

func Config() (config.Config, error) {
	cfg := config.Config{}

	if err := env.Parse(&cfg); err != nil {
		return config.Config{}, err
	}

	flag.StringVar(&cfg.ServerListenAddr, "a", cfg.ServerListenAddr, "Address to listen on")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Database DSN (only postgresql is accepted)")
	flag.DurationVar(
		&cfg.ServerShutdownTimeout, "server.shutdown-timeout", time.Second*10,
		"The maximum duration the server should wait for connections to finish before exiting",
	)
	flag.DurationVar(
		&cfg.ServerReadTimeout, "http.read-timeout", time.Second*5,
		"Limits the time it takes from accepting a new connection till reading of the request body",
	)
	flag.DurationVar(
		&cfg.ServerWriteTimeout, "http.write-timeout", time.Second*5,
		"Limits the time it takes from reading the body of a request till the end of the response",
	)
	flag.DurationVar(
		&cfg.DatabaseConnectTimeout, "database.connect-timeout", time.Second*5,
		"Database connection timeout",
	)
	flag.IntVar(
		&cfg.LoginAttemptLimit, "login.attempt-limit", cfg.LoginAttemptLimit,
		"Number of login attempts allowed per client within the attempt window",
	)
	flag.DurationVar(
		&cfg.LoginAttemptWindow, "login.attempt-window", cfg.LoginAttemptWindow,
		"Length of the sliding window login attempts are counted within",
	)
	flag.DurationVar(
		&cfg.LoginEvictionInterval, "login.eviction-interval", time.Minute*5,
		"How often stale login attempt windows are evicted from memory",
	)
	flag.StringVar(
		&cfg.LogLevel, "log.level", "info",
		"Only log messages with the given severity or above.\n"+
			"For example: debug, info, warn, error and other levels supported by zerolog",
	)
	flag.StringVar(
		&cfg.LogOutput, "log.output", "console",
		"Output format of log messages. Available options: console, stdout, json",
	)
	flag.BoolVar(
		&cfg.Production, "production", false,
		"Run service in production mode",
	)

	flag.Parse()

	return cfg, nil
}
