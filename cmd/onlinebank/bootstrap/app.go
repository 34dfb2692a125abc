package bootstrap

import (
	"github.com/akbarw/onlinebank/cmd/onlinebank/config"
	"github.com/akbarw/onlinebank/internal/application"
	accountsPG "github.com/akbarw/onlinebank/internal/core/accounts/postgres"
	"github.com/akbarw/onlinebank/internal/persistence/postgres"
	"github.com/akbarw/onlinebank/internal/services/account"
	"github.com/akbarw/onlinebank/internal/services/bank"
	"github.com/akbarw/onlinebank/internal/services/throttle"
	"github.com/akbarw/onlinebank/pkg/security/hasher"
)

func App(cfg config.Config, pg *postgres.Database) (*application.App, error) {
	accounts := accountsPG.New(pg)

	app := application.NewApp(
		cfg,
		account.New(accounts, hasher.NewBcryptPasswordHasher()),
		bank.New(accounts, pg),
		throttle.New(
			throttle.WithLimit(cfg.LoginAttemptLimit),
			throttle.WithWindow(cfg.LoginAttemptWindow),
		),
	)
	return app, nil
}
