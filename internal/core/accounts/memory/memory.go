package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/core/accounts"
	"github.com/akbarw/onlinebank/internal/models"
)

type contextKey int

const txKey contextKey = iota

// Repository is an in-process account store guarded by a single mutex.
// It doubles as a transactor: WithTransaction holds the store lock for the
// whole callback, so multi-account operations observe and mutate
// a consistent snapshot
type Repository struct {
	mu     sync.Mutex
	seq    int
	items  map[int]models.Account
	emails map[string]int
}

func New() *Repository {
	return &Repository{
		items:  make(map[int]models.Account),
		emails: make(map[string]int),
	}
}

// WithTransaction serializes the callback against every other operation on
// the store. Nested calls join the outer critical section
func (r *Repository) WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error {
	if inTx(ctx) {
		return txFunc(ctx)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return txFunc(context.WithValue(ctx, txKey, true))
}

func (r *Repository) Create(ctx context.Context, a models.Account) (models.Account, error) {
	defer r.lock(ctx)()
	if _, taken := r.emails[a.Email]; taken {
		return models.Account{}, accounts.ErrAccountEmailIsTaken
	}
	r.seq++
	created := models.NewAccountFromRepo(r.seq, a.Name, a.Email, a.Password, a.Balance, a.Card)
	r.items[created.ID] = created
	r.emails[created.Email] = created.ID
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (models.Account, error) {
	defer r.lock(ctx)()
	account, ok := r.items[id]
	if !ok {
		return models.Account{}, accounts.ErrAccountNotFound
	}
	return account, nil
}

// GetByIDForUpdate behaves exactly like GetByID: exclusivity is provided by
// the store-wide lock held across WithTransaction rather than per row
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (models.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	defer r.lock(ctx)()
	id, ok := r.emails[email]
	if !ok {
		return models.Account{}, accounts.ErrAccountNotFound
	}
	return r.items[id], nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	defer r.lock(ctx)()
	account, ok := r.items[id]
	if !ok {
		return accounts.ErrAccountNotFound
	}
	account.Balance = balance
	r.items[id] = account
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	defer r.lock(ctx)()
	account, ok := r.items[id]
	if !ok {
		return accounts.ErrAccountNotFound
	}
	delete(r.emails, account.Email)
	delete(r.items, id)
	return nil
}

// lock acquires the store mutex unless the context indicates the caller
// already holds it through WithTransaction
func (r *Repository) lock(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func inTx(ctx context.Context) bool {
	held, ok := ctx.Value(txKey).(bool)
	return ok && held
}
