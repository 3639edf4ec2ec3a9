package game

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Renderer prints human-readable state dumps. Red and Blue pieces use the
// bright ANSI red and blue of the profile; termenv.Ascii prints plain text.
type Renderer struct {
	profile termenv.Profile
}

func NewRenderer(profile termenv.Profile) Renderer {
	return Renderer{profile: profile}
}

func (r Renderer) Piece(p Piece) string {
	if p.IsZero() {
		return " "
	}
	style := r.profile.String(p.Size.String())
	switch p.Color {
	case Red:
		style = style.Foreground(r.profile.Color("9"))
	case Blue:
		style = style.Foreground(r.profile.Color("12"))
	}
	return style.String()
}

func (r Renderer) Name(p *Player) string {
	color := "9"
	if p.Color == Blue {
		color = "12"
	}
	return r.profile.String(p.Name).Foreground(r.profile.Color(color)).Bold().String()
}

// Player prints the name followed by the inventory as "|slot:piece|...".
func (r Renderer) Player(p *Player) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Player %s\n|", r.Name(p))
	for i, piece := range p.inventory {
		fmt.Fprintf(&sb, "%d:%s|", i, r.Piece(piece))
	}
	return sb.String()
}

// Board prints the visible pieces with the stack height of each cell.
func (r Renderer) Board(b *Board) string {
	var sb strings.Builder
	sb.WriteString("    0    1    2\n")
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < BoardSize; col++ {
			c := Cell{Row: row, Col: col}
			top, _ := b.TopAt(c)
			if col > 0 {
				sb.WriteString("|")
			}
			if h := b.Height(c); h > 1 {
				fmt.Fprintf(&sb, " %s%d ", r.Piece(top), h)
			} else {
				fmt.Fprintf(&sb, " %s  ", r.Piece(top))
			}
		}
		sb.WriteString("\n")
		if row != BoardSize-1 {
			sb.WriteString("  " + strings.Repeat("-", 14) + "\n")
		}
	}
	return sb.String()
}

func (r Renderer) Game(g *Game) string {
	return fmt.Sprintf("%s\n%s\n%s", r.Player(g.A), r.Player(g.B), r.Board(g.Board))
}

// String renders the game without colors.
func (g *Game) String() string {
	return NewRenderer(termenv.Ascii).Game(g)
}
