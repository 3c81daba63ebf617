package games

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func mustNumberBet(t *testing.T, n Pocket, amount int64) Bet {
	t.Helper()
	bet, err := NewNumberBet(n, decimal.NewFromInt(amount))
	if err != nil {
		t.Fatalf("NewNumberBet(%d, %d): %v", n, amount, err)
	}
	return bet
}

func mustColorBet(t *testing.T, c Color, amount int64) Bet {
	t.Helper()
	bet, err := NewColorBet(c, decimal.NewFromInt(amount))
	if err != nil {
		t.Fatalf("NewColorBet(%q, %d): %v", c, amount, err)
	}
	return bet
}

func mustParityBet(t *testing.T, p Parity, amount int64) Bet {
	t.Helper()
	bet, err := NewParityBet(p, decimal.NewFromInt(amount))
	if err != nil {
		t.Fatalf("NewParityBet(%q, %d): %v", p, amount, err)
	}
	return bet
}

func outcomeFor(p Pocket) SpinOutcome {
	return SpinOutcome{Value: p, Color: p.Color()}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		bet     Bet
		outcome SpinOutcome
		want    int64
	}{
		{
			name:    "number hit pays 35 to 1",
			bet:     mustNumberBet(t, 17, 10),
			outcome: outcomeFor(17),
			want:    350,
		},
		{
			name:    "number miss loses the stake only",
			bet:     mustNumberBet(t, 5, 10),
			outcome: outcomeFor(17),
			want:    -10,
		},
		{
			name:    "number zero can be hit",
			bet:     mustNumberBet(t, 0, 2),
			outcome: outcomeFor(0),
			want:    70,
		},
		{
			name:    "color match pays even money",
			bet:     mustColorBet(t, ColorRed, 20),
			outcome: outcomeFor(19),
			want:    20,
		},
		{
			name:    "color mismatch loses",
			bet:     mustColorBet(t, ColorRed, 20),
			outcome: outcomeFor(17),
			want:    -20,
		},
		{
			name:    "green loses a red bet",
			bet:     mustColorBet(t, ColorRed, 20),
			outcome: outcomeFor(0),
			want:    -20,
		},
		{
			name:    "green loses a black bet",
			bet:     mustColorBet(t, ColorBlack, 20),
			outcome: outcomeFor(0),
			want:    -20,
		},
		{
			name:    "parity match pays even money",
			bet:     mustParityBet(t, ParityOdd, 15),
			outcome: outcomeFor(17),
			want:    15,
		},
		{
			name:    "parity mismatch loses",
			bet:     mustParityBet(t, ParityOdd, 15),
			outcome: outcomeFor(2),
			want:    -15,
		},
		{
			name:    "zero loses an even bet despite being numerically even",
			bet:     mustParityBet(t, ParityEven, 15),
			outcome: outcomeFor(0),
			want:    -15,
		},
		{
			name:    "zero loses an odd bet",
			bet:     mustParityBet(t, ParityOdd, 15),
			outcome: outcomeFor(0),
			want:    -15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profit, err := Resolve(tt.bet, tt.outcome)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			want := decimal.NewFromInt(tt.want)
			if !profit.Equal(want) {
				t.Errorf("expected profit %s, got %s", want, profit)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	bet := mustColorBet(t, ColorBlack, 7)
	outcome := outcomeFor(22)

	first, err := Resolve(bet, outcome)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	second, err := Resolve(bet, outcome)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("identical inputs produced %s then %s", first, second)
	}
}

func TestResolveProfitDomain(t *testing.T) {
	// For any bet of amount a, profit must be one of +a, +35a, or -a.
	amount := decimal.NewFromInt(10)
	gain := amount
	jackpot := amount.Mul(decimal.NewFromInt(35))
	loss := amount.Neg()

	bets := []Bet{
		mustNumberBet(t, 13, 10),
		mustColorBet(t, ColorRed, 10),
		mustParityBet(t, ParityEven, 10),
	}

	for _, bet := range bets {
		for p := Pocket(0); p < Pockets; p++ {
			profit, err := Resolve(bet, outcomeFor(p))
			if err != nil {
				t.Fatalf("Resolve(%q, pocket %d): %v", bet.Kind, p, err)
			}
			if !profit.Equal(gain) && !profit.Equal(jackpot) && !profit.Equal(loss) {
				t.Errorf("bet %q on pocket %d: profit %s outside {+a, +35a, -a}",
					bet.Kind, p, profit)
			}
		}
	}
}

func TestResolveUnknownKind(t *testing.T) {
	bet := Bet{Kind: BetKind("street"), Amount: decimal.NewFromInt(5)}

	_, err := Resolve(bet, outcomeFor(12))
	if err == nil {
		t.Fatal("expected an error for an unknown bet kind")
	}
	if !errors.Is(err, ErrUnknownBetKind) {
		t.Errorf("expected ErrUnknownBetKind, got %v", err)
	}
}
