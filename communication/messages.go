package communication

import "dicegrid/game"

type DrawRequest struct {
	PlayerID game.PlayerID `json:"player_id"`
	Die      game.Die      `json:"die"`
}

type DrawResponse struct {
	Hand game.Hand `json:"hand"`
}

type PlaceRequest struct {
	PlayerID game.PlayerID `json:"player_id"`
	Die      game.Die      `json:"die"`
	Position game.Position `json:"position"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EventType names what happened in an Event.
type EventType string

const (
	RoundStarted EventType = "round_started"
	DieDrawn     EventType = "die_drawn"
	DiePlaced    EventType = "die_placed"
)

// Event is pushed to observers after every successful mutation.
type Event struct {
	Type         EventType      `json:"type"`
	GameID       string         `json:"game_id"`
	Round        int            `json:"round"`
	Player       game.PlayerID  `json:"player,omitempty"`
	Die          *game.Die      `json:"die,omitempty"`
	Position     *game.Position `json:"position,omitempty"`
	ActivePlayer game.PlayerID  `json:"active_player"`
	Reserve      []game.Die     `json:"reserve,omitempty"`
}
