package communication

import (
	"context"

	"dicegrid/game"
	"dicegrid/gamemaster"
)

// Communicator is an interface that abstracts the communication mechanism between a
// player and the game master: in process or over HTTP.
type Communicator interface {
	StartRound(ctx context.Context) (gamemaster.RoundStart, error)
	State(ctx context.Context) (*game.GameState, error)
	Draw(ctx context.Context, player game.PlayerID, die game.Die) (game.Hand, error)
	Place(ctx context.Context, player game.PlayerID, die game.Die, pos game.Position) (gamemaster.Placement, error)
	Finalize(ctx context.Context) (gamemaster.Result, error)
}

// Local talks to a game master in the same process.
type Local struct {
	GameMaster *gamemaster.GameMaster
}

func NewLocal(gm *gamemaster.GameMaster) *Local {
	return &Local{GameMaster: gm}
}

func (l *Local) StartRound(ctx context.Context) (gamemaster.RoundStart, error) {
	if err := ctx.Err(); err != nil {
		return gamemaster.RoundStart{}, err
	}
	return l.GameMaster.StartRound()
}

func (l *Local) State(ctx context.Context) (*game.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.GameMaster.State(), nil
}

func (l *Local) Draw(ctx context.Context, player game.PlayerID, die game.Die) (game.Hand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.GameMaster.Draw(player, die)
}

func (l *Local) Place(ctx context.Context, player game.PlayerID, die game.Die, pos game.Position) (gamemaster.Placement, error) {
	if err := ctx.Err(); err != nil {
		return gamemaster.Placement{}, err
	}
	return l.GameMaster.Place(player, die, pos)
}

func (l *Local) Finalize(ctx context.Context) (gamemaster.Result, error) {
	if err := ctx.Err(); err != nil {
		return gamemaster.Result{}, err
	}
	return l.GameMaster.Finalize(), nil
}
