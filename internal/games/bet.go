package games

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BetKind tags the bet union.
type BetKind string

const (
	BetNumber BetKind = "number"
	BetColor  BetKind = "color"
	BetParity BetKind = "parity"
)

// ErrUnknownBetKind signals a bet whose kind is not part of the union.
// Unreachable through validated input; a defensive contract only.
var ErrUnknownBetKind = errors.New("unknown bet kind")

// Bet is a single wager. Exactly one of Number/Color/Parity is meaningful,
// selected by Kind. Construct bets through the New*Bet constructors so the
// resolver only ever sees validated values.
type Bet struct {
	Kind   BetKind
	Number Pocket
	Color  Color
	Parity Parity
	Amount decimal.Decimal
}

// NewNumberBet wagers on a single pocket, paying 35:1.
func NewNumberBet(n Pocket, amount decimal.Decimal) (Bet, error) {
	if !n.Valid() {
		return Bet{}, fmt.Errorf("number bet: pocket %d out of range 0-%d", n, Pockets-1)
	}
	if err := validAmount(amount); err != nil {
		return Bet{}, err
	}
	return Bet{Kind: BetNumber, Number: n, Amount: amount}, nil
}

// NewColorBet wagers on red or black, paying even money.
func NewColorBet(c Color, amount decimal.Decimal) (Bet, error) {
	if c != ColorRed && c != ColorBlack {
		return Bet{}, fmt.Errorf("color bet: %q is not red or black", c)
	}
	if err := validAmount(amount); err != nil {
		return Bet{}, err
	}
	return Bet{Kind: BetColor, Color: c, Amount: amount}, nil
}

// NewParityBet wagers on even or odd, paying even money. Zero loses.
func NewParityBet(p Parity, amount decimal.Decimal) (Bet, error) {
	if p != ParityEven && p != ParityOdd {
		return Bet{}, fmt.Errorf("parity bet: %q is not even or odd", p)
	}
	if err := validAmount(amount); err != nil {
		return Bet{}, err
	}
	return Bet{Kind: BetParity, Parity: p, Amount: amount}, nil
}

func validAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("bet amount must be positive, got %s", amount)
	}
	return nil
}

// ParseBetKind parses a bet kind case-insensitively.
func ParseBetKind(s string) (BetKind, error) {
	switch BetKind(strings.ToLower(strings.TrimSpace(s))) {
	case BetNumber:
		return BetNumber, nil
	case BetColor:
		return BetColor, nil
	case BetParity:
		return BetParity, nil
	}
	return "", fmt.Errorf("unknown bet kind %q", s)
}

// ParseBetColor parses a bettable color case-insensitively. Green is not a
// bettable color.
func ParseBetColor(s string) (Color, error) {
	switch Color(strings.ToLower(strings.TrimSpace(s))) {
	case ColorRed:
		return ColorRed, nil
	case ColorBlack:
		return ColorBlack, nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

// ParseParity parses a parity token case-insensitively.
func ParseParity(s string) (Parity, error) {
	switch Parity(strings.ToLower(strings.TrimSpace(s))) {
	case ParityEven:
		return ParityEven, nil
	case ParityOdd:
		return ParityOdd, nil
	}
	return "", fmt.Errorf("unknown parity %q", s)
}
