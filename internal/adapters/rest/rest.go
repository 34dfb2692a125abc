package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rs/zerolog/log"

	"github.com/akbarw/onlinebank/internal/adapters/rest/handlers"
	"github.com/akbarw/onlinebank/internal/adapters/rest/middleware/ratelimit"
	"github.com/akbarw/onlinebank/internal/application"
)

func New(app *application.App) (*gin.Engine, error) {
	router := newRouter(app)
	if err := registerMiddlewares(router); err != nil {
		return nil, err
	}
	if err := registerValidators(); err != nil {
		return nil, err
	}
	return router, nil
}

func newRouter(app *application.App) *gin.Engine {
	handler := handlers.New(app)
	router := gin.Default()
	router.POST("/api/bank/accounts", handler.RegisterAccount)
	router.DELETE("/api/bank/accounts/:id", handler.DeleteAccount)
	// every login attempt passes through the limiter,
	// no matter whether the credentials turn out to be correct
	router.POST("/api/bank/login", ratelimit.LoginAttempts(app.LoginLimiter), handler.LoginAccount)
	router.POST("/api/bank/transfer", handler.TransferFunds)
	router.POST("/api/bank/deposit", handler.DepositFunds)
	router.POST("/api/bank/withdraw", handler.WithdrawFunds)
	return router
}

func registerMiddlewares(router *gin.Engine) error {
	router.Use(gin.LoggerWithWriter(log.Logger))
	return nil
}

func registerValidators() error {
	var customValidators = [...]struct {
		name      string
		validator validator.Func
	}{
		{
			"notblank",
			validators.NotBlank,
		},
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		for _, val := range customValidators {
			if err := v.RegisterValidation(val.name, val.validator); err != nil {
				return err
			}
		}
	}
	return nil
}
