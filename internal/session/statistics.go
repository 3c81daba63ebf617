package session

// Statistics tracks session-level betting totals and streaks.
type Statistics struct {
	Bets    int     `json:"bets"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Wagered float64 `json:"wagered"`
	Profit  float64 `json:"profit"`
	Balance float64 `json:"balance"`
	StartBal float64 `json:"startBal"`

	WinStreak  int `json:"winStreak"`
	LoseStreak int `json:"loseStreak"`
	// Positive = win streak, negative = lose streak.
	CurrentStreak int `json:"currentStreak"`

	HighestStreak int     `json:"highestStreak"`
	LowestStreak  int     `json:"lowestStreak"`
	HighestBet    float64 `json:"highestBet"`
	HighestProfit float64 `json:"highestProfit"`
	LowestProfit  float64 `json:"lowestProfit"`

	CurrentProfit float64 `json:"currentProfit"`
	PreviousBet   float64 `json:"previousBet"`
}

// NewStatistics creates a Statistics with the starting balance.
func NewStatistics(startBalance float64) *Statistics {
	return &Statistics{
		Balance:  startBalance,
		StartBal: startBalance,
	}
}

// RecordBet folds one resolved bet into the totals. profit is positive for
// a win and negative for a loss.
func (s *Statistics) RecordBet(amount, profit float64) {
	s.Bets++

	s.CurrentProfit = profit
	s.Profit += profit
	s.Wagered += amount
	s.PreviousBet = amount
	s.Balance += profit

	if profit > 0 {
		s.Wins++
		if s.CurrentStreak < 0 {
			s.CurrentStreak = 0
		}
		s.CurrentStreak++
		if s.CurrentStreak > s.WinStreak {
			s.WinStreak = s.CurrentStreak
		}
	} else {
		s.Losses++
		if s.CurrentStreak > 0 {
			s.CurrentStreak = 0
		}
		s.CurrentStreak--
		if -s.CurrentStreak > s.LoseStreak {
			s.LoseStreak = -s.CurrentStreak
		}
	}

	if s.CurrentStreak > s.HighestStreak {
		s.HighestStreak = s.CurrentStreak
	}
	if s.CurrentStreak < s.LowestStreak {
		s.LowestStreak = s.CurrentStreak
	}
	if amount > s.HighestBet {
		s.HighestBet = amount
	}
	if s.Profit > s.HighestProfit {
		s.HighestProfit = s.Profit
	}
	if s.Profit < s.LowestProfit {
		s.LowestProfit = s.Profit
	}
}
