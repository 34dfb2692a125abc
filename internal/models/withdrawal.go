package models

import "github.com/shopspring/decimal"

// Withdrawal reports the outcome of a completed cash withdrawal.
// Account carries the balance as of right after the sum and the fee
// have been deducted
type Withdrawal struct {
	Account Account
	Sum     decimal.Decimal
	Fee     decimal.Decimal
}

func NewWithdrawal(account Account, sum, fee decimal.Decimal) Withdrawal {
	return Withdrawal{
		Account: account,
		Sum:     sum,
		Fee:     fee,
	}
}
