package gamemaster

import "dicegrid/game"

type ChangeKind int

const (
	RoundStarted ChangeKind = iota + 1
	DieDrawn
	DiePlaced
)

// Change describes one committed mutation, with the values as they were at commit
// time. Reserve is only set for RoundStarted.
type Change struct {
	Kind         ChangeKind
	Round        int
	Player       game.PlayerID
	Die          game.Die
	Position     game.Position
	ActivePlayer game.PlayerID
	Reserve      []game.Die
}

// Subscribe registers fn to be called after every successful StartRound, Draw and
// Place. fn runs under the game lock, so changes arrive in commit order; it must
// not block and must not call back into the game master.
func (gm *GameMaster) Subscribe(fn func(Change)) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.listeners = append(gm.listeners, fn)
}

func (gm *GameMaster) notify(c Change) {
	for _, fn := range gm.listeners {
		fn(c)
	}
}
