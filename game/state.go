package game

import "fmt"

// State of the game. ATurn and BTurn are the only non-terminal states.
type State int

const (
	ATurn State = iota
	BTurn
	AWins
	BWins
	Draw
)

func (s State) IsTerminal() bool {
	return s != ATurn && s != BTurn
}

func (s State) String() string {
	switch s {
	case ATurn:
		return "a_turn"
	case BTurn:
		return "b_turn"
	case AWins:
		return "a_wins"
	case BWins:
		return "b_wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Game owns the board and both players. Play is the only external way to change
// its state; MakeMove/UndoMove are reserved for search.
type Game struct {
	Board *Board
	A     *Player // Red, moves first
	B     *Player // Blue
	state State
}

func NewGame(nameA, nameB string) *Game {
	return &Game{
		Board: NewBoard(),
		A:     NewPlayer(nameA, Red),
		B:     NewPlayer(nameB, Blue),
		state: ATurn,
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Over() bool {
	return g.state.IsTerminal()
}

// CurrentPlayer is the player to move, nil once the game is over.
func (g *Game) CurrentPlayer() *Player {
	switch g.state {
	case ATurn:
		return g.A
	case BTurn:
		return g.B
	default:
		return nil
	}
}

func (g *Game) Player(color Color) *Player {
	switch color {
	case Red:
		return g.A
	case Blue:
		return g.B
	default:
		return nil
	}
}

// Validate checks a move against the current position without applying it.
func (g *Game) Validate(move Move) error {
	if g.Over() {
		return ErrGameAlreadyOver
	}
	if move == nil {
		return ErrUnknownMove
	}
	current := g.CurrentPlayer()
	if move.Mover() != current.Color {
		return fmt.Errorf("%w: %v to move, got %v", ErrWrongMover, current.Color, move.Mover())
	}

	switch m := move.(type) {
	case Put:
		if !m.To.InBounds() {
			return fmt.Errorf("%w: cell %v", ErrOutOfBounds, m.To)
		}
		piece, ok := current.PieceAt(m.Index)
		if !ok {
			return fmt.Errorf("%w: slot %d of %d", ErrOutOfBounds, m.Index, current.Len())
		}
		if !g.Board.CanPlace(m.To, piece) {
			return fmt.Errorf("%w: %v on %v", ErrIllegalPlacement, piece, m.To)
		}
		return nil
	case Relocate:
		if !m.From.InBounds() || !m.To.InBounds() {
			return fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, m.From, m.To)
		}
		top, ok := g.Board.TopAt(m.From)
		if !ok || top.Color != current.Color {
			return fmt.Errorf("%w: %v", ErrNoPieceToMove, m.From)
		}
		// also rejects From == To: a piece never fits on itself
		if !g.Board.CanPlace(m.To, top) {
			return fmt.Errorf("%w: %v on %v", ErrIllegalPlacement, top, m.To)
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownMove, move)
	}
}

// CheckWinner scans rows, columns then diagonals for three visible pieces of one color.
func (g *Game) CheckWinner() (Color, bool) {
	for _, line := range Lines {
		first, ok := g.Board.TopAt(line[0])
		if !ok {
			continue
		}
		won := true
		for _, c := range line[1:] {
			top, ok := g.Board.TopAt(c)
			if !ok || top.Color != first.Color {
				won = false
				break
			}
		}
		if won {
			return first.Color, true
		}
	}
	return 0, false
}

// Play validates and commits a move. A rejected move leaves the game untouched.
func (g *Game) Play(move Move) error {
	if err := g.Validate(move); err != nil {
		return err
	}

	switch m := move.(type) {
	case Put:
		player := g.CurrentPlayer()
		piece, _ := player.PieceAt(m.Index)
		if _, err := g.Board.Place(m.To, piece); err != nil {
			return err
		}
		player.take(m.Index)
	case Relocate:
		if _, _, err := g.Board.RelocateTop(m.From, m.To); err != nil {
			return err
		}
	}

	g.updateState()
	return nil
}

// HasLegalMove reports whether color has at least one legal move.
func (g *Game) HasLegalMove(color Color) bool {
	for range g.Moves(color) {
		return true
	}
	return false
}

func (g *Game) switchTurn() {
	switch g.state {
	case ATurn:
		g.state = BTurn
	case BTurn:
		g.state = ATurn
	}
}

func (g *Game) updateState() {
	if winner, ok := g.CheckWinner(); ok {
		if winner == Red {
			g.state = AWins
		} else {
			g.state = BWins
		}
		return
	}
	g.switchTurn()
	if !g.HasLegalMove(g.CurrentPlayer().Color) {
		g.state = Draw
	}
}

// Copy returns a deep copy of the game.
func (g *Game) Copy() *Game {
	return &Game{
		Board: g.Board.Copy(),
		A:     g.A.Copy(),
		B:     g.B.Copy(),
		state: g.state,
	}
}
