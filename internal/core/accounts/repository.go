package accounts

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/models"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountEmailIsTaken = errors.New("email is taken by another account")

// Repository is the narrow storage contract the transactional services
// operate against. GetByIDForUpdate must hold an exclusive lock on the
// returned account until the surrounding transaction finishes,
// so that load-compute-save sequences cannot lose updates
type Repository interface {
	Create(context.Context, models.Account) (models.Account, error)
	GetByID(context.Context, int) (models.Account, error)
	GetByIDForUpdate(context.Context, int) (models.Account, error)
	GetByEmail(context.Context, string) (models.Account, error)
	UpdateBalance(context.Context, int, decimal.Decimal) error
	Delete(context.Context, int) error
}
