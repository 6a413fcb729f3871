package communication

import (
	"errors"
	"fmt"
	"net/http"

	"dicegrid/gamemaster"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeNotPlayerTurn   = "not_player_turn"
	CodeHandFull        = "hand_full"
	CodeDieUnavailable  = "die_unavailable"
	CodeDieNotHeld      = "die_not_held"
	CodeIllegalPosition = "illegal_position"
	CodeRoundNotStarted = "round_not_started"
	CodeUnknownPlayer   = "unknown_player"
	CodeGameFinished    = "game_finished"
	CodeBadRequest      = "bad_request"
	CodeInternal        = "internal"
)

var ErrBadRequest = errors.New("bad request")

var codes = []struct {
	code   string
	err    error
	status int
}{
	{CodeNotPlayerTurn, gamemaster.ErrNotPlayerTurn, http.StatusConflict},
	{CodeHandFull, gamemaster.ErrHandFull, http.StatusConflict},
	{CodeDieUnavailable, gamemaster.ErrDieUnavailable, http.StatusNotFound},
	{CodeDieNotHeld, gamemaster.ErrDieNotHeld, http.StatusBadRequest},
	{CodeIllegalPosition, gamemaster.ErrIllegalPosition, http.StatusUnprocessableEntity},
	{CodeRoundNotStarted, gamemaster.ErrRoundNotStarted, http.StatusConflict},
	{CodeUnknownPlayer, gamemaster.ErrUnknownPlayer, http.StatusBadRequest},
	{CodeGameFinished, gamemaster.ErrGameFinished, http.StatusGone},
	{CodeBadRequest, ErrBadRequest, http.StatusBadRequest},
}

// ErrorCode maps an engine error to its wire code and HTTP status.
func ErrorCode(err error) (string, int) {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code, c.status
		}
	}
	return CodeInternal, http.StatusInternalServerError
}

// ToError turns a wire error back into an error matching the engine sentinel with
// errors.Is.
func (e ErrorResponse) ToError() error {
	for _, c := range codes {
		if c.code == e.Code {
			return fmt.Errorf("%w (remote: %s)", c.err, e.Message)
		}
	}
	return fmt.Errorf("remote error %s: %s", e.Code, e.Message)
}
