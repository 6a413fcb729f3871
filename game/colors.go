package game

// AssignColors gives each player a distinct color drawn without replacement.
// len(players) must not exceed len(colors).
func AssignColors(src Source, players []PlayerID, colors []Color) map[PlayerID]Color {
	bag := make([]Color, len(colors))
	copy(bag, colors)

	assigned := make(map[PlayerID]Color, len(players))
	for i, p := range players {
		// partial Fisher-Yates: bag[i:] still holds the undrawn colors
		j := i + src.Intn(len(bag)-i)
		bag[i], bag[j] = bag[j], bag[i]
		assigned[p] = bag[i]
	}
	return assigned
}
