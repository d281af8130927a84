package game

// Director is a computer player. The presentation loop calls Act on its
// director tick while the board is ongoing; every move goes through the same
// Reveal/ToggleFlag surface a human uses.
type Director interface {
	// Init hands the director its board before the first Act.
	Init(*Board)

	// Act performs a single step of moves.
	Act()
}
