package entities

import "time"

// SessionStatistics represents aggregated results for one playing session
type SessionStatistics struct {
	SessionID     string
	RoundsPlayed  int
	HandsPlayed   int
	Wins          int
	Losses        int
	Ties          int
	Blackjacks    int
	Busts         int
	Splits        int
	DoubleDowns   int
	TotalBet      int64
	TotalReturned int64
	LastUpdated   time.Time
}

// NetProfit calculates the player's net profit
func (s *SessionStatistics) NetProfit() int64 {
	return s.TotalReturned - s.TotalBet
}

// WinRate calculates the share of hands won as a percentage
func (s *SessionStatistics) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins+s.Blackjacks) / float64(s.HandsPlayed) * 100.0
}
