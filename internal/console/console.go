package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"roulette/internal/games"
)

// Prompter reads bets interactively, re-prompting until every field is
// valid. Malformed input never escapes this type.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// NextBet collects amount, kind, and value for one bet. A zero amount or
// EOF on input is a cash-out request (ok=false).
func (p *Prompter) NextBet(ctx context.Context, balance decimal.Decimal) (games.Bet, bool, error) {
	amount, err := p.promptAmount(ctx, balance)
	if err != nil {
		return games.Bet{}, false, cashOutOnEOF(err)
	}
	if amount.IsZero() {
		return games.Bet{}, false, nil
	}

	kind, err := p.promptKind(ctx)
	if err != nil {
		return games.Bet{}, false, cashOutOnEOF(err)
	}

	var bet games.Bet
	switch kind {
	case games.BetNumber:
		n, perr := p.promptNumber(ctx)
		if perr != nil {
			return games.Bet{}, false, cashOutOnEOF(perr)
		}
		bet, err = games.NewNumberBet(n, amount)
	case games.BetColor:
		c, perr := p.promptColor(ctx)
		if perr != nil {
			return games.Bet{}, false, cashOutOnEOF(perr)
		}
		bet, err = games.NewColorBet(c, amount)
	case games.BetParity:
		par, perr := p.promptParity(ctx)
		if perr != nil {
			return games.Bet{}, false, cashOutOnEOF(perr)
		}
		bet, err = games.NewParityBet(par, amount)
	}
	if err != nil {
		// Constructors only reject what the prompts already filtered out.
		return games.Bet{}, false, err
	}
	return bet, true, nil
}

func (p *Prompter) promptAmount(ctx context.Context, balance decimal.Decimal) (decimal.Decimal, error) {
	for {
		line, err := p.readLine(ctx, "Enter bet amount (or 0 to cash out): ")
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if amount.Sign() < 0 || amount.GreaterThan(balance) {
			fmt.Fprintf(p.out, "Enter a value between 0 and %s.\n", balance.StringFixed(2))
			continue
		}
		return amount.Round(2), nil
	}
}

func (p *Prompter) promptKind(ctx context.Context) (games.BetKind, error) {
	for {
		line, err := p.readLine(ctx, "Choose bet type (number/color/parity): ")
		if err != nil {
			return "", err
		}
		kind, err := games.ParseBetKind(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid choice. Pick from: number, color, parity.")
			continue
		}
		return kind, nil
	}
}

func (p *Prompter) promptNumber(ctx context.Context) (games.Pocket, error) {
	for {
		line, err := p.readLine(ctx, "Pick a number between 0 and 36: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter an integer.")
			continue
		}
		if !games.Pocket(n).Valid() {
			fmt.Fprintln(p.out, "Number must be between 0 and 36.")
			continue
		}
		return games.Pocket(n), nil
	}
}

func (p *Prompter) promptColor(ctx context.Context) (games.Color, error) {
	for {
		line, err := p.readLine(ctx, "Pick a color (red/black): ")
		if err != nil {
			return "", err
		}
		c, err := games.ParseBetColor(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid choice. Pick from: red, black.")
			continue
		}
		return c, nil
	}
}

func (p *Prompter) promptParity(ctx context.Context) (games.Parity, error) {
	for {
		line, err := p.readLine(ctx, "Pick parity (even/odd): ")
		if err != nil {
			return "", err
		}
		par, err := games.ParseParity(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid choice. Pick from: even, odd.")
			continue
		}
		return par, nil
	}
}

func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// cashOutOnEOF turns end-of-input into a cash-out request so a closed
// stdin leaves the table gracefully.
func cashOutOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
