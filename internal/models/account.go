package models

import "github.com/shopspring/decimal"

type CardType string

const (
	CardTypePremium    CardType = "premium"
	CardTypeNonPremium CardType = "non-premium"
)

type Account struct {
	ID       int
	Name     string
	Email    string
	Password string
	Balance  decimal.Decimal
	Card     CardType
}

var BlankAccount Account // nolint: gochecknoglobals

func NewAccount(name, email, password string, balance decimal.Decimal, card CardType) Account {
	return Account{
		Name:     name,
		Email:    email,
		Password: password,
		Balance:  balance,
		Card:     card,
	}
}

func NewAccountFromRepo(
	id int,
	name, email, password string,
	balance decimal.Decimal,
	card CardType,
) Account {
	return Account{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: password,
		Balance:  balance,
		Card:     card,
	}
}
