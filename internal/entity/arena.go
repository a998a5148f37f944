package entity

import "time"

// ArenaResult is the tally of a series of machine-vs-machine games.
type ArenaResult struct {
	ID         string    `json:"id"`
	XLevel     string    `json:"x_level"`
	OLevel     string    `json:"o_level"`
	Games      int       `json:"games"`
	XWins      int       `json:"x_wins"`
	OWins      int       `json:"o_wins"`
	Ties       int       `json:"ties"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// XWinRate, OWinRate and TieRate are percentages of Games.
func (that *ArenaResult) XWinRate() float64 {
	return that.percent(that.XWins)
}

func (that *ArenaResult) OWinRate() float64 {
	return that.percent(that.OWins)
}

func (that *ArenaResult) TieRate() float64 {
	return that.percent(that.Ties)
}

func (that *ArenaResult) percent(count int) float64 {
	if that.Games == 0 {
		return 0
	}
	return float64(count) / float64(that.Games) * 100
}
