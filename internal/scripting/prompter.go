package scripting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dop251/goja"
	"github.com/shopspring/decimal"

	"roulette/internal/games"
)

// Prompter drives a session from a strategy script instead of the console.
// It satisfies session.Prompter and session.ResultObserver.
//
// Script contract: the source defines dobet(), called once per round with
// the globals balance, win, profit, currentprofit, bets, wins, losses,
// currentstreak, previousbet, lastpocket, lastcolor set. dobet() assigns
// nextbet (amount), betkind ("number"/"color"/"parity"), and betvalue.
// nextbet <= 0 or stop() cashes out.
type Prompter struct {
	vm  *VM
	log *slog.Logger

	// Script-visible mirrors of the session, fed by ObserveResult.
	bets          int
	wins          int
	losses        int
	streak        int
	win           bool
	profit        decimal.Decimal
	currentProfit decimal.Decimal
	previousBet   decimal.Decimal
	lastOutcome   *games.SpinOutcome
}

// NewPrompter creates a script prompter over the given VM.
func NewPrompter(vm *VM, log *slog.Logger) *Prompter {
	return &Prompter{vm: vm, log: log}
}

// Load compiles and runs the strategy source.
func (p *Prompter) Load(source string) error {
	return p.vm.Execute(source)
}

// NextBet invokes dobet() and reads the bet it left behind. ok=false when
// the script cashed out via stop() or a non-positive nextbet.
func (p *Prompter) NextBet(ctx context.Context, balance decimal.Decimal) (games.Bet, bool, error) {
	if err := ctx.Err(); err != nil {
		return games.Bet{}, false, err
	}
	if p.vm.StopRequested() {
		return games.Bet{}, false, nil
	}

	p.syncToVM(balance)

	if err := p.vm.CallDobet(); err != nil {
		return games.Bet{}, false, err
	}
	if p.vm.StopRequested() {
		return games.Bet{}, false, nil
	}

	return p.readBet(balance)
}

func (p *Prompter) syncToVM(balance decimal.Decimal) {
	p.vm.Set("balance", balance.InexactFloat64())
	p.vm.Set("win", p.win)
	p.vm.Set("profit", p.profit.InexactFloat64())
	p.vm.Set("currentprofit", p.currentProfit.InexactFloat64())
	p.vm.Set("bets", p.bets)
	p.vm.Set("wins", p.wins)
	p.vm.Set("losses", p.losses)
	p.vm.Set("currentstreak", p.streak)
	p.vm.Set("previousbet", p.previousBet.InexactFloat64())

	if p.lastOutcome != nil {
		p.vm.Set("lastpocket", int(p.lastOutcome.Value))
		p.vm.Set("lastcolor", string(p.lastOutcome.Color))
	} else {
		p.vm.Set("lastpocket", -1)
		p.vm.Set("lastcolor", "")
	}
}

func (p *Prompter) readBet(balance decimal.Decimal) (games.Bet, bool, error) {
	amountVal := p.vm.Get("nextbet")
	if amountVal == nil || goja.IsUndefined(amountVal) || goja.IsNull(amountVal) {
		return games.Bet{}, false, fmt.Errorf("script did not set nextbet")
	}

	amount := decimal.NewFromFloat(amountVal.ToFloat()).Round(2)
	if amount.Sign() <= 0 {
		return games.Bet{}, false, nil
	}
	// Strategy scripts commonly martingale past the bankroll; clamp.
	if amount.GreaterThan(balance) {
		amount = balance
	}

	kindVal := p.vm.Get("betkind")
	if kindVal == nil || goja.IsUndefined(kindVal) || goja.IsNull(kindVal) {
		return games.Bet{}, false, fmt.Errorf("script did not set betkind")
	}
	kind, err := games.ParseBetKind(kindVal.String())
	if err != nil {
		return games.Bet{}, false, fmt.Errorf("script betkind: %w", err)
	}

	valueVal := p.vm.Get("betvalue")
	if valueVal == nil || goja.IsUndefined(valueVal) || goja.IsNull(valueVal) {
		return games.Bet{}, false, fmt.Errorf("script did not set betvalue")
	}

	var bet games.Bet
	switch kind {
	case games.BetNumber:
		bet, err = games.NewNumberBet(games.Pocket(valueVal.ToInteger()), amount)
	case games.BetColor:
		var c games.Color
		c, err = games.ParseBetColor(valueVal.String())
		if err == nil {
			bet, err = games.NewColorBet(c, amount)
		}
	case games.BetParity:
		var par games.Parity
		par, err = games.ParseParity(valueVal.String())
		if err == nil {
			bet, err = games.NewParityBet(par, amount)
		}
	}
	if err != nil {
		return games.Bet{}, false, fmt.Errorf("script bet: %w", err)
	}
	return bet, true, nil
}

// ObserveResult updates the script-visible mirrors after a resolved round.
func (p *Prompter) ObserveResult(outcome games.SpinOutcome, bet games.Bet, profit decimal.Decimal) {
	p.bets++
	p.win = profit.Sign() > 0

	if p.win {
		p.wins++
		if p.streak < 0 {
			p.streak = 0
		}
		p.streak++
	} else {
		p.losses++
		if p.streak > 0 {
			p.streak = 0
		}
		p.streak--
	}

	p.profit = p.profit.Add(profit)
	p.currentProfit = profit
	p.previousBet = bet.Amount

	o := outcome
	p.lastOutcome = &o
}
