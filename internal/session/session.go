package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"roulette/internal/games"
	"roulette/internal/lib/logger/sl"
)

// State of the session loop.
type State string

const (
	StateAwaitingBet State = "awaiting_bet"
	StateResolving   State = "resolving"
	StateTerminated  State = "terminated"
)

// Prompter supplies the next validated bet. Implementations own any
// re-prompting: a bet returned here is always well formed and within the
// given balance. ok=false is a cash-out request.
type Prompter interface {
	NextBet(ctx context.Context, balance decimal.Decimal) (bet games.Bet, ok bool, err error)
}

// ResultObserver is an optional Prompter extension notified after each
// resolved round. Strategy scripts use it to shape the next bet.
type ResultObserver interface {
	ObserveResult(outcome games.SpinOutcome, bet games.Bet, profit decimal.Decimal)
}

// Session drives repeated betting rounds against a wheel. All user-facing
// reporting happens here; the wheel and the resolver stay silent.
type Session struct {
	id       uuid.UUID
	wheel    *games.Wheel
	prompter Prompter
	out      io.Writer
	log      *slog.Logger

	balance decimal.Decimal
	state   State
	stats   *Statistics

	// maxRounds caps autoplay runs; 0 means unlimited.
	maxRounds int
}

// Config assembles a session.
type Config struct {
	Wheel           *games.Wheel
	Prompter        Prompter
	Out             io.Writer
	Log             *slog.Logger
	StartingBalance decimal.Decimal
	MaxRounds       int
}

// New creates a session in the AwaitingBet state with the starting stake.
func New(cfg Config) *Session {
	return &Session{
		id:        uuid.New(),
		wheel:     cfg.Wheel,
		prompter:  cfg.Prompter,
		out:       cfg.Out,
		log:       cfg.Log,
		balance:   cfg.StartingBalance,
		state:     StateAwaitingBet,
		stats:     NewStatistics(cfg.StartingBalance.InexactFloat64()),
		maxRounds: cfg.MaxRounds,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Balance returns the current balance.
func (s *Session) Balance() decimal.Decimal { return s.balance }

// State returns the current loop state.
func (s *Session) State() State { return s.state }

// Stats returns the accumulated session statistics.
func (s *Session) Stats() *Statistics { return s.stats }

// Run plays rounds until cash-out, bust, the round cap, or cancellation.
// Every player-reachable exit is graceful and returns nil; cancellation
// returns ctx.Err() so the caller can print its own farewell.
func (s *Session) Run(ctx context.Context) error {
	const op = "session.Run"

	s.log.Info("session started",
		slog.String("session_id", s.id.String()),
		slog.String("balance", s.balance.StringFixed(2)))

	fmt.Fprintln(s.out, "=== Welcome to CLI Roulette ===")

	rounds := 0
	for {
		if ctx.Err() != nil {
			s.state = StateTerminated
			return ctx.Err()
		}
		if s.balance.IsZero() {
			fmt.Fprintln(s.out, "\nYou're out of chips.")
			break
		}
		if s.maxRounds > 0 && rounds >= s.maxRounds {
			s.log.Info("round cap reached", slog.Int("rounds", rounds))
			break
		}

		fmt.Fprintf(s.out, "\nCurrent balance: $%s\n", s.balance.StringFixed(2))

		bet, ok, err := s.prompter.NextBet(ctx, s.balance)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.state = StateTerminated
				return err
			}
			// Script errors and broken input end the session gracefully.
			s.log.Error("prompt failed", sl.Err(err))
			break
		}
		if !ok {
			break // cash out
		}

		s.state = StateResolving
		if err := s.playRound(bet); err != nil {
			s.state = StateTerminated
			return fmt.Errorf("%s: %w", op, err)
		}
		s.state = StateAwaitingBet
		rounds++
	}

	s.state = StateTerminated
	fmt.Fprintf(s.out, "\nYou leave the table with $%s. Thanks for playing!\n", s.balance.StringFixed(2))

	s.log.Info("session finished",
		slog.String("session_id", s.id.String()),
		slog.Int("rounds", s.stats.Bets),
		slog.String("balance", s.balance.StringFixed(2)),
		slog.Float64("profit", s.stats.Profit))
	return nil
}

func (s *Session) playRound(bet games.Bet) error {
	fmt.Fprintln(s.out, "Spinning the wheel...")

	outcome := s.wheel.Spin()
	fmt.Fprintf(s.out, "The ball landed on %d (%s).\n", outcome.Value, outcome.Color)

	profit, err := games.Resolve(bet, outcome)
	if err != nil {
		return err
	}

	s.balance = s.balance.Add(profit)
	s.stats.RecordBet(bet.Amount.InexactFloat64(), profit.InexactFloat64())

	if obs, ok := s.prompter.(ResultObserver); ok {
		obs.ObserveResult(outcome, bet, profit)
	}

	if profit.Sign() >= 0 {
		fmt.Fprintf(s.out, "You won $%s!\n", profit.StringFixed(2))
	} else {
		fmt.Fprintf(s.out, "You lost $%s.\n", profit.Neg().StringFixed(2))
	}

	s.log.Debug("round resolved",
		slog.Int("pocket", int(outcome.Value)),
		slog.String("color", string(outcome.Color)),
		slog.String("bet_kind", string(bet.Kind)),
		slog.String("amount", bet.Amount.StringFixed(2)),
		slog.String("profit", profit.StringFixed(2)),
		slog.String("balance", s.balance.StringFixed(2)))
	return nil
}
