package bank

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/core/accounts"
	"github.com/akbarw/onlinebank/internal/core/cards"
	"github.com/akbarw/onlinebank/internal/models"
	"github.com/akbarw/onlinebank/internal/ports/transactor"
)

var ErrTransferInvalidSum = errors.New("can transfer a positive sum only")
var ErrDepositInvalidSum = errors.New("can deposit a positive sum only")
var ErrWithdrawInvalidSum = errors.New("can withdraw a positive sum only")

var ErrInsufficientFunds = errors.New("account balance is insufficient")
var ErrEmailMismatch = errors.New("email does not match the account it was supplied for")

// the sender is charged a flat 5% admin fee on every transfer,
// regardless of card type
var transferFeeRate = decimal.NewFromFloat(0.05) // nolint: gochecknoglobals

type Service struct {
	accounts   accounts.Repository
	transactor transactor.Transactor
}

func New(accounts accounts.Repository, transactor transactor.Transactor) Service {
	return Service{
		accounts:   accounts,
		transactor: transactor,
	}
}

// Transfer moves sum from the sender's account to the account registered
// under recipientEmail. The recipient is credited the full sum; the sender
// is debited the sum plus the admin fee. Sufficiency is checked against the
// pre-fee sum, so the fee itself may overdraw the sender.
// Both balance updates run in a single transaction: a failure of either
// save rolls the whole transfer back
func (s Service) Transfer(
	ctx context.Context,
	senderID int,
	recipientEmail string,
	sum decimal.Decimal,
) (models.Transfer, error) {
	if sum.LessThanOrEqual(decimal.Zero) {
		return models.Transfer{}, ErrTransferInvalidSum
	}

	var receipt models.Transfer
	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		sender, err := s.accounts.GetByID(txCtx, senderID)
		if err != nil {
			return err
		}
		recipient, err := s.accounts.GetByEmail(txCtx, recipientEmail)
		if err != nil {
			return err
		}

		// reacquire both rows with exclusive locks, lower id first,
		// so that two opposite-direction transfers cannot deadlock
		sender, recipient, err = s.lockPair(txCtx, sender.ID, recipient.ID)
		if err != nil {
			return err
		}

		if sender.Balance.LessThan(sum) {
			return ErrInsufficientFunds
		}

		fee := sum.Mul(transferFeeRate)
		sender.Balance = sender.Balance.Sub(sum.Add(fee))
		if recipient.ID == sender.ID {
			// transferring to yourself nets out to paying the fee
			recipient.Balance = sender.Balance
		}
		recipient.Balance = recipient.Balance.Add(sum)

		if err := s.accounts.UpdateBalance(txCtx, sender.ID, sender.Balance); err != nil {
			return err
		}
		if err := s.accounts.UpdateBalance(txCtx, recipient.ID, recipient.Balance); err != nil {
			return err
		}

		receipt = models.NewTransfer(sender, recipient, sum, fee)
		return nil
	})
	if err != nil {
		log.Warn().
			Err(err).Int("senderID", senderID).Str("recipient", recipientEmail).Stringer("sum", sum).
			Msg("Unable to transfer sum between accounts")
		return models.Transfer{}, err
	}

	log.Info().
		Int("senderID", receipt.Sender.ID).Int("recipientID", receipt.Recipient.ID).
		Stringer("sum", sum).Stringer("fee", receipt.Fee).
		Msg("Transferred sum between accounts")
	return receipt, nil
}

// Deposit credits sum to the account, provided the supplied email matches
// the one the account is registered with
func (s Service) Deposit(
	ctx context.Context,
	accountID int,
	email string,
	sum decimal.Decimal,
) (models.Account, error) {
	if sum.LessThanOrEqual(decimal.Zero) {
		return models.BlankAccount, ErrDepositInvalidSum
	}

	var updated models.Account
	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		account, err := s.accounts.GetByIDForUpdate(txCtx, accountID)
		if err != nil {
			return err
		}
		if account.Email != email {
			return ErrEmailMismatch
		}
		account.Balance = account.Balance.Add(sum)
		if err := s.accounts.UpdateBalance(txCtx, account.ID, account.Balance); err != nil {
			return err
		}
		updated = account
		return nil
	})
	if err != nil {
		log.Warn().
			Err(err).Int("accountID", accountID).Stringer("sum", sum).
			Msg("Unable to deposit sum to account")
		return models.BlankAccount, err
	}

	log.Info().
		Int("accountID", updated.ID).Stringer("sum", sum).Stringer("balance", updated.Balance).
		Msg("Deposited sum to account")
	return updated, nil
}

// Withdraw deducts sum plus the card-type fee from the account.
// The balance must cover both the sum and the fee before anything
// is deducted; an insufficient balance leaves the account untouched
func (s Service) Withdraw(
	ctx context.Context,
	accountID int,
	email string,
	card models.CardType,
	sum decimal.Decimal,
) (models.Withdrawal, error) {
	if sum.LessThanOrEqual(decimal.Zero) {
		return models.Withdrawal{}, ErrWithdrawInvalidSum
	}

	var receipt models.Withdrawal
	err := s.transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		account, err := s.accounts.GetByIDForUpdate(txCtx, accountID)
		if err != nil {
			return err
		}
		if account.Email != email {
			return ErrEmailMismatch
		}
		if err := cards.ValidateMatch(account.Card, card); err != nil {
			return err
		}

		fee := cards.WithdrawalFee(account.Card, sum)
		total := sum.Add(fee)
		if account.Balance.LessThan(total) {
			return ErrInsufficientFunds
		}

		account.Balance = account.Balance.Sub(total)
		if err := s.accounts.UpdateBalance(txCtx, account.ID, account.Balance); err != nil {
			return err
		}
		receipt = models.NewWithdrawal(account, sum, fee)
		return nil
	})
	if err != nil {
		log.Warn().
			Err(err).Int("accountID", accountID).Stringer("sum", sum).
			Msg("Unable to withdraw sum from account")
		return models.Withdrawal{}, err
	}

	log.Info().
		Int("accountID", receipt.Account.ID).
		Stringer("sum", sum).Stringer("fee", receipt.Fee).Stringer("balance", receipt.Account.Balance).
		Msg("Withdrew sum from account")
	return receipt, nil
}

// lockPair loads both accounts with exclusive row locks
// in ascending id order
func (s Service) lockPair(ctx context.Context, senderID, recipientID int) (models.Account, models.Account, error) {
	if senderID == recipientID {
		account, err := s.accounts.GetByIDForUpdate(ctx, senderID)
		return account, account, err
	}

	first, second := senderID, recipientID
	if second < first {
		first, second = second, first
	}
	firstAccount, err := s.accounts.GetByIDForUpdate(ctx, first)
	if err != nil {
		return models.Account{}, models.Account{}, err
	}
	secondAccount, err := s.accounts.GetByIDForUpdate(ctx, second)
	if err != nil {
		return models.Account{}, models.Account{}, err
	}

	if first == senderID {
		return firstAccount, secondAccount, nil
	}
	return secondAccount, firstAccount, nil
}
