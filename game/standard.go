package game

type StandardRules struct {
	DiceColors []Color
	MinDie     int
	MaxDie     int
	Hand       int
	NumPlayers int
}

func NewStandardRules() *StandardRules {
	colors := make([]Color, len(AllColors))
	copy(colors, AllColors)
	return &StandardRules{
		DiceColors: colors,
		MinDie:     1,
		MaxDie:     6,
		Hand:       2,
		NumPlayers: 2,
	}
}

func (sr *StandardRules) Colors() []Color {
	return sr.DiceColors
}

func (sr *StandardRules) MinValue() int {
	return sr.MinDie
}

func (sr *StandardRules) MaxValue() int {
	return sr.MaxDie
}

func (sr *StandardRules) HandSize() int {
	return sr.Hand
}

func (sr *StandardRules) Players() []PlayerID {
	players := make([]PlayerID, sr.NumPlayers)
	for i := range players {
		players[i] = PlayerID(i + 1)
	}
	return players
}

// PoolSize gives every player a full hand plus one spare die.
func (sr *StandardRules) PoolSize() int {
	return sr.Hand*sr.NumPlayers + 1
}

func (sr *StandardRules) Validate() error {
	return ValidateRules(sr)
}
