package cards

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/models"
)

var ErrUnknownCardType = errors.New("card must be of premium or non-premium type")
var ErrPremiumOpeningTooLow = errors.New("premium card requires an opening balance above 50000")
var ErrNonPremiumOpeningTooHigh = errors.New("non-premium card allows an opening balance of 50000 at most")
var ErrCardTypeMismatch = errors.New("card type does not match the card the account was opened with")

// premium cards require an opening balance strictly above this amount,
// non-premium cards must stay at or below it
var premiumOpeningThreshold = decimal.NewFromInt(50000) // nolint: gochecknoglobals

var nonPremiumFeeRate = decimal.NewFromFloat(0.05) // nolint: gochecknoglobals

// ValidateOpening checks that the requested card type
// is allowed for the given opening balance
func ValidateOpening(card models.CardType, balance decimal.Decimal) error {
	switch card {
	case models.CardTypePremium:
		if balance.LessThanOrEqual(premiumOpeningThreshold) {
			return ErrPremiumOpeningTooLow
		}
	case models.CardTypeNonPremium:
		if balance.GreaterThan(premiumOpeningThreshold) {
			return ErrNonPremiumOpeningTooHigh
		}
	default:
		return ErrUnknownCardType
	}
	return nil
}

// WithdrawalFee returns the admin fee charged on top of a cash withdrawal:
// 5% of the withdrawn sum for non-premium cards, nothing for premium ones
func WithdrawalFee(card models.CardType, sum decimal.Decimal) decimal.Decimal {
	if card == models.CardTypeNonPremium {
		return sum.Mul(nonPremiumFeeRate)
	}
	return decimal.Zero
}

// ValidateMatch ensures the card type supplied with a withdrawal request
// is the one the account was opened with. There is no upgrade path:
// a mismatch is always a hard error
func ValidateMatch(opened, supplied models.CardType) error {
	if opened != supplied {
		return ErrCardTypeMismatch
	}
	return nil
}
