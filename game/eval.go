package game

const (
	WinScore      = 10000
	LineTwoScore  = 500
	LineOneScore  = 50
	ReserveWeight = 5
)

// PositionWeights favours the center, then corners, then edge midpoints.
var PositionWeights = [BoardSize][BoardSize]int{
	{2, 1, 2},
	{1, 3, 1},
	{2, 1, 2},
}

// EvaluatePosition is the default heuristic: a decided game scores ±WinScore,
// anything else sums line potential, weighted visible pieces and the pieces
// still held in reserve.
func EvaluatePosition(g *Game, perspective Color) int {
	if winner, ok := g.CheckWinner(); ok {
		if winner == perspective {
			return WinScore
		}
		return -WinScore
	}

	score := 0
	for _, line := range Lines {
		score += evaluateLine(g.Board, line, perspective)
	}
	score += evaluatePlacement(g.Board, perspective)
	score += evaluateReserve(g, perspective)
	return score
}

func evaluateLine(b *Board, line [3]Cell, perspective Color) int {
	mine, theirs := 0, 0
	for _, c := range line {
		top, ok := b.TopAt(c)
		if !ok {
			continue
		}
		if top.Color == perspective {
			mine++
		} else {
			theirs++
		}
	}

	switch {
	case theirs == 0 && mine == 2:
		return LineTwoScore
	case theirs == 0 && mine == 1:
		return LineOneScore
	case mine == 0 && theirs == 2:
		return -LineTwoScore
	case mine == 0 && theirs == 1:
		return -LineOneScore
	}
	return 0
}

func evaluatePlacement(b *Board, perspective Color) int {
	score := 0
	for _, c := range Cells {
		top, ok := b.TopAt(c)
		if !ok {
			continue
		}
		value := int(top.Size) * PositionWeights[c.Row][c.Col]
		if top.Color == perspective {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func evaluateReserve(g *Game, perspective Color) int {
	score := 0
	for _, piece := range g.Player(perspective).inventory {
		score += int(piece.Size) * ReserveWeight
	}
	for _, piece := range g.Player(perspective.Opponent()).inventory {
		score -= int(piece.Size) * ReserveWeight
	}
	return score
}
