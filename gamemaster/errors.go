package gamemaster

import "errors"

// Every failure leaves the game state untouched.
var (
	ErrNotPlayerTurn   = errors.New("not your turn")
	ErrHandFull        = errors.New("hand already holds the maximum number of dice")
	ErrDieUnavailable  = errors.New("die not available in the reserve")
	ErrDieNotHeld      = errors.New("die not held in hand")
	ErrIllegalPosition = errors.New("illegal position")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrRoundNotStarted = errors.New("no round has been started")
	ErrGameFinished    = errors.New("game is over")
)
