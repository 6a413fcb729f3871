package game

import "dicegrid/utils"

type Phase int

const (
	NotStarted Phase = iota
	RoundActive
	Finished
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case RoundActive:
		return "round_active"
	case Finished:
		return "finished"
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "not_started":
		*p = NotStarted
	case "round_active":
		*p = RoundActive
	case "finished":
		*p = Finished
	default:
		*p = NotStarted
	}
	return nil
}

// GameState is everything that changes during a game. Only the game master mutates
// it; everyone else gets a Copy.
type GameState struct {
	GameID       string             `json:"game_id"`
	Phase        Phase              `json:"phase"`
	Round        int                `json:"round"`
	ActivePlayer PlayerID           `json:"active_player"`
	Reserve      []Die              `json:"reserve"`
	Hands        map[PlayerID]Hand  `json:"hands"`
	Boards       map[PlayerID]Board `json:"boards"`
	Colors       map[PlayerID]Color `json:"colors,omitempty"`
}

// NewGameState returns the round 0 state: no boards, no colors, no reserve.
func NewGameState(gameID string, players []PlayerID) *GameState {
	gs := &GameState{
		GameID:       gameID,
		Phase:        NotStarted,
		ActivePlayer: Player1,
		Reserve:      []Die{},
		Hands:        make(map[PlayerID]Hand, len(players)),
		Boards:       make(map[PlayerID]Board, len(players)),
	}
	for _, p := range players {
		gs.Hands[p] = Hand{}
		gs.Boards[p] = Board{}
	}
	return gs
}

func (gs GameState) Copy() *GameState {
	reserveCopy := make([]Die, len(gs.Reserve))
	copy(reserveCopy, gs.Reserve)

	handsCopy := make(map[PlayerID]Hand, len(gs.Hands))
	for p, hand := range gs.Hands {
		h := make(Hand, len(hand))
		copy(h, hand)
		handsCopy[p] = h
	}

	boardsCopy := make(map[PlayerID]Board, len(gs.Boards))
	for p, board := range gs.Boards {
		boardsCopy[p] = board.Copy()
	}

	var colorsCopy map[PlayerID]Color
	if gs.Colors != nil {
		colorsCopy = make(map[PlayerID]Color, len(gs.Colors))
		for p, c := range gs.Colors {
			colorsCopy[p] = c
		}
	}

	return &GameState{
		GameID:       gs.GameID,
		Phase:        gs.Phase,
		Round:        gs.Round,
		ActivePlayer: gs.ActivePlayer,
		Reserve:      reserveCopy,
		Hands:        handsCopy,
		Boards:       boardsCopy,
		Colors:       colorsCopy,
	}
}

// InReserve reports whether die is still available to draw.
func (gs *GameState) InReserve(die Die) bool {
	return utils.Contains(gs.Reserve, die)
}
