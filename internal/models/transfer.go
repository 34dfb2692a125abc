package models

import "github.com/shopspring/decimal"

// Transfer reports the outcome of a completed funds transfer.
// Sender and Recipient carry the balances as of right after the transfer
type Transfer struct {
	Sender    Account
	Recipient Account
	Sum       decimal.Decimal
	Fee       decimal.Decimal
}

func NewTransfer(sender, recipient Account, sum, fee decimal.Decimal) Transfer {
	return Transfer{
		Sender:    sender,
		Recipient: recipient,
		Sum:       sum,
		Fee:       fee,
	}
}
