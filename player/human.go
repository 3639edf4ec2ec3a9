package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gobblers/agent"
	"gobblers/experiments/metrics"
	"gobblers/game"
)

// ErrInputClosed is returned when the input ends before a legal move is read.
var ErrInputClosed = errors.New("input closed")

const usage = "enter \"put <slot> <row> <col>\" or \"move <fromRow> <fromCol> <toRow> <toCol>\""

// Human reads moves typed on a text stream for whoever's turn it is.
type Human struct {
	scanner  *bufio.Scanner
	out      io.Writer
	renderer game.Renderer
}

func NewHuman(in io.Reader, out io.Writer, renderer game.Renderer) agent.Agent {
	return &Human{
		scanner:  bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
	}
}

func (h *Human) FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error) {
	current := g.CurrentPlayer()
	if current == nil {
		return nil, metrics.SearchMetric{}, game.ErrGameAlreadyOver
	}

	fmt.Fprintf(h.out, "%s\n", h.renderer.Game(g))
	for {
		fmt.Fprintf(h.out, "%s to move, %s\n> ", h.renderer.Name(current), usage)
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return nil, metrics.SearchMetric{}, fmt.Errorf("%w: %v", ErrInputClosed, err)
			}
			return nil, metrics.SearchMetric{}, ErrInputClosed
		}

		move, err := parseMove(current.Color, h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if err := g.Validate(move); err != nil {
			fmt.Fprintf(h.out, "%s\n", explain(err))
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func parseMove(by game.Color, line string) (game.Move, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, errors.New("empty input")
	}

	args, err := parseInts(fields[1:])
	if err != nil {
		return nil, err
	}
	switch fields[0] {
	case "put", "p":
		if len(args) != 3 {
			return nil, fmt.Errorf("put takes 3 numbers, got %d", len(args))
		}
		return game.Put{By: by, Index: args[0], To: game.Cell{Row: args[1], Col: args[2]}}, nil
	case "move", "m":
		if len(args) != 4 {
			return nil, fmt.Errorf("move takes 4 numbers, got %d", len(args))
		}
		return game.Relocate{
			By:   by,
			From: game.Cell{Row: args[0], Col: args[1]},
			To:   game.Cell{Row: args[2], Col: args[3]},
		}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseInts(fields []string) ([]int, error) {
	ints := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		ints = append(ints, n)
	}
	return ints, nil
}

func explain(err error) string {
	switch {
	case errors.Is(err, game.ErrOutOfBounds):
		return "that slot or cell does not exist"
	case errors.Is(err, game.ErrIllegalPlacement):
		return "a piece can only go on an empty cell or cover a smaller piece"
	case errors.Is(err, game.ErrNoPieceToMove):
		return "there is none of your pieces on top of that cell"
	default:
		return err.Error()
	}
}
