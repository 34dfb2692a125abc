package account

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/core/accounts"
	"github.com/akbarw/onlinebank/internal/core/cards"
	"github.com/akbarw/onlinebank/internal/models"
	"github.com/akbarw/onlinebank/pkg/security/hasher"
)

var ErrRegisterEmptyPassword = errors.New("cannot register an account with an empty password")

var ErrAuthenticateEmptyPassword = errors.New("cannot login with an empty password")
var ErrAuthenticateInvalidCredentials = errors.New("unable to authenticate account with this email/password")

type Service struct {
	accounts accounts.Repository
	hasher   hasher.PasswordHasher
}

func New(repo accounts.Repository, hasher hasher.PasswordHasher) Service {
	return Service{
		accounts: repo,
		hasher:   hasher,
	}
}

// Register attempts to open a new account with the given opening balance.
// The requested card type must be allowed for the opening balance;
// the raw password is hashed with the service configured hasher before
// the account is saved
func (s Service) Register(
	ctx context.Context,
	name, email, password string,
	opening decimal.Decimal,
	card models.CardType,
) (models.Account, error) {
	// must not register with an empty password
	if password == "" {
		return models.BlankAccount, ErrRegisterEmptyPassword
	}
	// premium cards require a large enough opening balance, and vice versa
	if err := cards.ValidateOpening(card, opening); err != nil {
		log.Debug().
			Err(err).Str("email", email).Str("card", string(card)).
			Msg("Opening balance is not allowed for card type")
		return models.BlankAccount, err
	}
	// store a password hash instead of the plain password
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("Unable to hash password")
		return models.BlankAccount, err
	}

	newAccount := models.NewAccount(name, email, hashedPassword, opening, card)
	a, err := s.accounts.Create(ctx, newAccount)
	if err != nil {
		return models.BlankAccount, err
	}
	return a, nil
}

// Authenticate attempts to log an account in using the provided credentials
func (s Service) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	// prevent logging in with an empty password
	if password == "" {
		return models.BlankAccount, ErrAuthenticateEmptyPassword
	}
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			return models.BlankAccount, ErrAuthenticateInvalidCredentials
		}
		return models.BlankAccount, err
	}

	passwordsMatch, err := s.hasher.Check(password, account.Password)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Unable to check password")
	} else if !passwordsMatch {
		log.Debug().Str("email", email).Msg("Password does not match")
		return models.BlankAccount, ErrAuthenticateInvalidCredentials
	}

	return account, nil
}

// Delete closes the account with the given ID
func (s Service) Delete(ctx context.Context, id int) error {
	return s.accounts.Delete(ctx, id)
}
