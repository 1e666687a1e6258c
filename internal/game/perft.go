package game

// Perft counts the leaf nodes of the legal move tree of the given depth.
// The game is walked in place with Submit and Undo; its board, turn and
// cursor are restored afterwards, but history beyond the cursor is lost.
func Perft(g *Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.Submit(m)
		nodes += Perft(g, depth-1)
		g.Undo()
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(g *Game, depth int) map[Move]uint64 {
	out := make(map[Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range g.LegalMoves() {
		g.Submit(m)
		out[m] = Perft(g, depth-1)
		g.Undo()
	}
	return out
}
