package game

// Source is the randomness used to draw dice and colors. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// GeneratePool draws size distinct dice, colors and values uniformly, rejecting
// (color,value) pairs already drawn. It terminates only while size does not exceed
// len(colors)*(maxValue-minValue+1); Rules.Validate guarantees that for the engine.
func GeneratePool(src Source, size int, colors []Color, minValue, maxValue int) []Die {
	values := maxValue - minValue + 1
	seen := make(map[Die]struct{}, size)
	pool := make([]Die, 0, size)
	for len(pool) < size {
		d := Die{
			Color: colors[src.Intn(len(colors))],
			Value: minValue + src.Intn(values),
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		pool = append(pool, d)
	}
	return pool
}

// GeneratePoolFor draws a pool using the dimensions of r.
func GeneratePoolFor(src Source, r Rules) []Die {
	return GeneratePool(src, r.PoolSize(), r.Colors(), r.MinValue(), r.MaxValue())
}
