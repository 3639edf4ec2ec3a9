package searcher

import "gobblers/game"

// Infinity bounds every score an evaluation can return.
const Infinity = 1 << 30

// DrawScore is the decided value of a position where the side to move has no legal move.
const DrawScore = 0

// Searcher picks a move for the player whose turn it is.
type Searcher interface {
	ChooseMove(g *game.Game) game.Move
}
