package game

import "errors"

// Errors returned when a move is rejected. A rejected move never mutates the game.
var (
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrIllegalPlacement = errors.New("illegal placement")
	ErrWrongMover       = errors.New("not the mover's turn")
	ErrNoPieceToMove    = errors.New("no piece to move")
	ErrGameAlreadyOver  = errors.New("game already over")
	ErrUnknownMove      = errors.New("unknown move")
)
