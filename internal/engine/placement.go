package engine

// PlaceRandom draws uniformly random cells inside the arena until one is
// found that is not forbidden. The caller guarantees forbidden can never
// cover the whole interior, so the retry loop terminates; obstacle counts
// are capped for exactly that reason.
func PlaceRandom(r Rand, a Arena, forbidden map[Cell]bool) Cell {
	for {
		c := Cell{
			X: a.MinX + r.Intn(a.Width()),
			Y: a.MinY + r.Intn(a.Height()),
		}
		if !forbidden[c] {
			return c
		}
	}
}
