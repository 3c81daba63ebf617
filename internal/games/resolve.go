package games

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// numberPayoutMultiplier is the straight bet payout: 35 units of profit per
// unit staked. The stake itself is not part of the profit.
var numberPayoutMultiplier = decimal.NewFromInt(35)

// Resolve computes the profit (positive) or loss (negative) of a bet
// against a spin outcome. Pure: no I/O, no mutation, deterministic.
func Resolve(bet Bet, outcome SpinOutcome) (decimal.Decimal, error) {
	switch bet.Kind {
	case BetNumber:
		if outcome.Value == bet.Number {
			return bet.Amount.Mul(numberPayoutMultiplier), nil
		}
		return bet.Amount.Neg(), nil

	case BetColor:
		// Green matches neither red nor black, so zero loses every color bet.
		if outcome.Color == bet.Color {
			return bet.Amount, nil
		}
		return bet.Amount.Neg(), nil

	case BetParity:
		// Zero has no parity for betting purposes and loses unconditionally.
		if parity, ok := outcome.Value.Parity(); ok && parity == bet.Parity {
			return bet.Amount, nil
		}
		return bet.Amount.Neg(), nil
	}

	return decimal.Zero, fmt.Errorf("resolve %q: %w", bet.Kind, ErrUnknownBetKind)
}
