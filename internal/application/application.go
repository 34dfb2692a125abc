package application

import (
	"github.com/akbarw/onlinebank/cmd/onlinebank/config"
	"github.com/akbarw/onlinebank/internal/services/account"
	"github.com/akbarw/onlinebank/internal/services/bank"
	"github.com/akbarw/onlinebank/internal/services/throttle"
)

type App struct {
	AccountService account.Service
	BankService    bank.Service
	LoginLimiter   *throttle.Limiter
	Cfg            config.Config
}

func NewApp(
	cfg config.Config,
	accountService account.Service,
	bankService bank.Service,
	loginLimiter *throttle.Limiter,
) *App {
	return &App{
		Cfg:            cfg,
		AccountService: accountService,
		BankService:    bankService,
		LoginLimiter:   loginLimiter,
	}
}
