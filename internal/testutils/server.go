package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/akbarw/onlinebank/cmd/onlinebank/config"
	"github.com/akbarw/onlinebank/internal/adapters/rest"
	"github.com/akbarw/onlinebank/internal/application"
	"github.com/akbarw/onlinebank/internal/core/accounts/memory"
	"github.com/akbarw/onlinebank/internal/services/account"
	"github.com/akbarw/onlinebank/internal/services/bank"
	"github.com/akbarw/onlinebank/internal/services/throttle"
	"github.com/akbarw/onlinebank/pkg/security/hasher"
)

type TestServerOpt func(*testServerSetup)

type testServerSetup struct {
	cfg         config.Config
	limiterOpts []throttle.Option
}

func WithConfig(override func(*config.Config)) TestServerOpt {
	return func(s *testServerSetup) {
		override(&s.cfg)
	}
}

func WithLimiterOptions(opts ...throttle.Option) TestServerOpt {
	return func(s *testServerSetup) {
		s.limiterOpts = append(s.limiterOpts, opts...)
	}
}

// PrepareTestServer spins up an httptest server backed by the in-memory
// account store, so that REST handler tests need no real database
func PrepareTestServer(opts ...TestServerOpt) (*httptest.Server, *application.App, *memory.Repository, func()) {
	setup := testServerSetup{
		cfg: config.Config{
			LoginAttemptLimit:  throttle.DefaultLimit,
			LoginAttemptWindow: throttle.DefaultWindow,
		},
	}
	for _, opt := range opts {
		opt(&setup)
	}

	repo := memory.New()
	limiterOpts := append(
		[]throttle.Option{
			throttle.WithLimit(setup.cfg.LoginAttemptLimit),
			throttle.WithWindow(setup.cfg.LoginAttemptWindow),
		},
		setup.limiterOpts...,
	)
	app := application.NewApp(
		setup.cfg,
		account.New(repo, hasher.NewBcryptPasswordHasher()),
		bank.New(repo, repo),
		throttle.New(limiterOpts...),
	)

	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares
	router, err := rest.New(app)
	if err != nil {
		panic(err)
	}
	ts := httptest.NewServer(router)
	return ts, app, repo, func() {
		ts.Close()
	}
}
