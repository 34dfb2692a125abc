package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/core/accounts"
	"github.com/akbarw/onlinebank/internal/models"
	"github.com/akbarw/onlinebank/internal/persistence/postgres"
)

type Repository struct {
	db *postgres.Database
}

func New(db *postgres.Database) Repository {
	return Repository{db}
}

// Create attempts to insert a new account into the accounts table.
// Emails are unique across all accounts, compared exactly as stored.
// An attempt to register a duplicate email ends with
// an accounts.ErrAccountEmailIsTaken error
// which must be handled by the calling code
func (r Repository) Create(ctx context.Context, a models.Account) (models.Account, error) {
	conn := r.db.ExecContext(ctx)

	var exists bool
	err := conn.
		QueryRow(ctx, "SELECT EXISTS(SELECT id FROM accounts WHERE email = $1)", a.Email).
		Scan(&exists)
	if err != nil {
		return models.Account{}, err
	} else if exists {
		log.Debug().Str("email", a.Email).Msg("Account with same email already exists")
		return models.Account{}, accounts.ErrAccountEmailIsTaken
	}

	var newAccountID int
	err = conn.
		QueryRow(
			ctx,
			"INSERT INTO accounts (name, email, password, balance, card) "+
				"VALUES ($1, $2, $3, $4, $5) RETURNING id",
			a.Name, a.Email, a.Password, a.Balance, string(a.Card),
		).
		Scan(&newAccountID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create new account")
		return models.Account{}, err
	}

	log.Debug().Str("email", a.Email).Int("ID", newAccountID).Msg("Created new account")
	return models.NewAccountFromRepo(newAccountID, a.Name, a.Email, a.Password, a.Balance, a.Card), nil
}

// GetByID attempts to retrieve an account by its ID
func (r Repository) GetByID(ctx context.Context, id int) (models.Account, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate retrieves an account by its ID while taking an exclusive
// row lock. Must be called inside a transaction; the lock is held until the
// transaction ends, keeping the load-compute-save sequence free of lost updates
func (r Repository) GetByIDForUpdate(ctx context.Context, id int) (models.Account, error) {
	return r.getByID(ctx, id, true)
}

func (r Repository) getByID(ctx context.Context, id int, forUpdate bool) (models.Account, error) {
	query := "SELECT id, name, email, password, balance, card FROM accounts WHERE id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}

	account, err := r.scanAccount(r.db.ExecContext(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug().Int("ID", id).Msg("Account not found")
			return models.Account{}, accounts.ErrAccountNotFound
		}
		log.Error().Err(err).Int("ID", id).Msg("Failed to query account by ID")
		return models.Account{}, err
	}

	return account, nil
}

// GetByEmail attempts to retrieve an account by its unique email.
// Just like its neighbour GetByID returns a models.Account instance
// for the found account
func (r Repository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	row := r.db.ExecContext(ctx).QueryRow(
		ctx,
		"SELECT id, name, email, password, balance, card FROM accounts WHERE email = $1",
		email,
	)
	account, err := r.scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug().Str("email", email).Msg("Account not found")
			return models.Account{}, accounts.ErrAccountNotFound
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to query account by email")
		return models.Account{}, err
	}

	return account, nil
}

// UpdateBalance overwrites the stored balance for the account.
// Callers are expected to have loaded the account with GetByIDForUpdate
// in the same transaction before computing the new balance
func (r Repository) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	tag, err := r.db.ExecContext(ctx).Exec(
		ctx, "UPDATE accounts SET balance = $1 WHERE id = $2", balance, id,
	)
	if err != nil {
		log.Error().Err(err).Int("ID", id).Msg("Failed to update account balance")
		return err
	}
	if tag.RowsAffected() == 0 {
		log.Debug().Int("ID", id).Msg("No account to update balance for")
		return accounts.ErrAccountNotFound
	}
	log.Info().Int("ID", id).Stringer("balance", balance).Msg("Account balance updated")
	return nil
}

// Delete removes the account with the given ID
func (r Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.ExecContext(ctx).Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Int("ID", id).Msg("Failed to delete account")
		return err
	}
	if tag.RowsAffected() == 0 {
		log.Debug().Int("ID", id).Msg("No account to delete")
		return accounts.ErrAccountNotFound
	}
	log.Info().Int("ID", id).Msg("Account deleted")
	return nil
}

func (r Repository) scanAccount(row pgx.Row) (models.Account, error) {
	var account models.Account
	var card string
	if err := row.Scan(
		&account.ID, &account.Name, &account.Email, &account.Password,
		&account.Balance, &card,
	); err != nil {
		return models.Account{}, err
	}
	account.Card = models.CardType(card)
	return account, nil
}
