package gamemaster

import (
	"dicegrid/game"

	"github.com/rs/zerolog/log"
)

// Result is the read-only outcome of a game. Winner is game.NoPlayer on a draw.
type Result struct {
	Round  int                              `json:"round"`
	Scores map[game.PlayerID]game.ScoreCard `json:"scores"`
	Colors map[game.PlayerID]game.Color     `json:"colors"`
	Winner game.PlayerID                    `json:"winner"`
	Draw   bool                             `json:"draw"`
}

// WinnerName is "draw" or the winning player, for logs and reports.
func (r Result) WinnerName() string {
	if r.Draw {
		return "draw"
	}
	return r.Winner.String()
}

// Finalize scores every board against its owner's color and decides the winner on
// the totals alone. It does not change the game and may be called any number of times.
func (gm *GameMaster) Finalize() Result {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	res := Result{
		Round:  gm.state.Round,
		Scores: make(map[game.PlayerID]game.ScoreCard, len(gm.state.Boards)),
		Colors: copyColors(gm.state.Colors),
	}
	for _, p := range gm.rules.Players() {
		res.Scores[p] = game.Score(gm.state.Boards[p], gm.state.Colors[p])
	}

	p1, p2 := res.Scores[game.Player1].Total, res.Scores[game.Player2].Total
	switch {
	case p1 > p2:
		res.Winner = game.Player1
	case p2 > p1:
		res.Winner = game.Player2
	default:
		res.Draw = true
	}

	log.Info().Msgf("game %s scored after round %d: %d - %d, winner: %s", gm.gameID, res.Round, p1, p2, res.WinnerName())
	return res
}
