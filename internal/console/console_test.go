package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"roulette/internal/games"
)

func promptFromInput(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestNextBetNumberFlow(t *testing.T) {
	// Bad amount, negative amount, over-balance amount, then a valid bet.
	p, out := promptFromInput("abc\n-5\n150\n25\nNumber\n40\n17\n")
	balance := decimal.NewFromInt(100)

	bet, ok, err := p.NextBet(context.Background(), balance)
	if err != nil {
		t.Fatalf("NextBet() error: %v", err)
	}
	if !ok {
		t.Fatal("expected a bet, got cash-out")
	}

	if bet.Kind != games.BetNumber {
		t.Errorf("expected number bet, got %q", bet.Kind)
	}
	if bet.Number != 17 {
		t.Errorf("expected pocket 17, got %d", bet.Number)
	}
	if !bet.Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected amount 25, got %s", bet.Amount)
	}

	for _, msg := range []string{
		"Please enter a number.",
		"Enter a value between 0 and 100.00.",
		"Number must be between 0 and 36.",
	} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("output missing %q:\n%s", msg, out.String())
		}
	}
}

func TestNextBetColorFlow(t *testing.T) {
	p, out := promptFromInput("10\nroulette\ncolor\nblue\nRED\n")

	bet, ok, err := p.NextBet(context.Background(), decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NextBet() error: %v", err)
	}
	if !ok {
		t.Fatal("expected a bet, got cash-out")
	}

	if bet.Kind != games.BetColor {
		t.Errorf("expected color bet, got %q", bet.Kind)
	}
	if bet.Color != games.ColorRed {
		t.Errorf("expected red, got %q", bet.Color)
	}
	if !strings.Contains(out.String(), "Invalid choice. Pick from: number, color, parity.") {
		t.Errorf("output missing kind re-prompt:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Invalid choice. Pick from: red, black.") {
		t.Errorf("output missing color re-prompt:\n%s", out.String())
	}
}

func TestNextBetParityFlow(t *testing.T) {
	p, _ := promptFromInput("7.505\nparity\neven\n")

	bet, ok, err := p.NextBet(context.Background(), decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("NextBet() error: %v", err)
	}
	if !ok {
		t.Fatal("expected a bet, got cash-out")
	}

	if bet.Kind != games.BetParity {
		t.Errorf("expected parity bet, got %q", bet.Kind)
	}
	if bet.Parity != games.ParityEven {
		t.Errorf("expected even, got %q", bet.Parity)
	}
	// Amounts are normalized to cents.
	if !bet.Amount.Equal(decimal.RequireFromString("7.51")) {
		t.Errorf("expected amount 7.51, got %s", bet.Amount)
	}
}

func TestNextBetZeroCashesOut(t *testing.T) {
	p, _ := promptFromInput("0\n")

	_, ok, err := p.NextBet(context.Background(), decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NextBet() error: %v", err)
	}
	if ok {
		t.Error("a zero amount must cash out")
	}
}

func TestNextBetEOFCashesOut(t *testing.T) {
	p, _ := promptFromInput("")

	_, ok, err := p.NextBet(context.Background(), decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NextBet() error: %v", err)
	}
	if ok {
		t.Error("EOF must cash out")
	}
}

func TestNextBetEOFMidBet(t *testing.T) {
	// Input ends after the amount; still a graceful cash-out.
	p, _ := promptFromInput("10\n")

	_, ok, err := p.NextBet(context.Background(), decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("NextBet() error: %v", err)
	}
	if ok {
		t.Error("EOF mid-bet must cash out")
	}
}

func TestNextBetCancelledContext(t *testing.T) {
	p, _ := promptFromInput("10\ncolor\nred\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := p.NextBet(ctx, decimal.NewFromInt(100))
	if err == nil {
		t.Error("expected a context error")
	}
}
