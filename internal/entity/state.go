package entity

type outcome uint8

const (
	outcomeContinue outcome = iota
	outcomeTie
	outcomeWin
)

// PlayingState is Continue, Tie or Win(player). It is always derived from the board.
type PlayingState struct {
	outcome outcome
	winner  Player
}

var (
	Continue = PlayingState{}
	Tie      = PlayingState{outcome: outcomeTie}
)

func Win(player Player) PlayingState {
	return PlayingState{outcome: outcomeWin, winner: player}
}

// IsTerminal - Tie and Win are terminal, Continue is not.
func (that PlayingState) IsTerminal() bool {
	return that.outcome != outcomeContinue
}

func (that PlayingState) IsTie() bool {
	return that.outcome == outcomeTie
}

// Winner - returns the winner, ok is false unless the state is Win.
func (that PlayingState) Winner() (Player, bool) {
	if that.outcome != outcomeWin {
		return 0, false
	}
	return that.winner, true
}

func (that PlayingState) String() string {
	switch that.outcome {
	case outcomeTie:
		return "tie"
	case outcomeWin:
		return "win:" + that.winner.String()
	default:
		return "continue"
	}
}
