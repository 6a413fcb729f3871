// meta/meta.go
package meta

// DEFAULT_ROUNDS is the length of a game when nothing else is configured.
const DEFAULT_ROUNDS = 10

// DEFAULT_ADDR is where the game server listens.
const DEFAULT_ADDR = ":5000"

// DEFAULT_GAMES is the number of games per matchup in a simulation.
const DEFAULT_GAMES = 20

// TURNS_PER_ROUND is the turn schedule of a round: each player places twice, alternating.
const TURNS_PER_ROUND = 4
