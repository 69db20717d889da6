/*
 * lodestar - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2026 Karl Jallback
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjallback/lodestar/internal/position"
)

// perftCase mirrors one row of the standard perft reference table: a FEN and
// the expected leaf-node count at each depth, 1-indexed (nodes[0] is d=1).
type perftCase struct {
	name  string
	fen   string
	nodes []uint64
}

var perftCases = []perftCase{
	{
		name:  "startpos",
		fen:   position.StartFen,
		nodes: []uint64{20, 400, 8902, 197281},
	},
	{
		name:  "kiwipete",
		fen:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		nodes: []uint64{48, 2039, 97862},
	},
	{
		name:  "position3",
		fen:   "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		nodes: []uint64{14, 191, 2812, 43238},
	},
	{
		name:  "position4",
		fen:   "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		nodes: []uint64{6, 264, 9467},
	},
	{
		name:  "position5",
		fen:   "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		nodes: []uint64{44, 1486, 62379},
	},
}

func TestPerft(t *testing.T) {
	for _, c := range perftCases {
		pos, err := position.NewPositionFromFen(c.fen)
		assert.NoError(t, err, c.name)
		for i, want := range c.nodes {
			depth := i + 1
			got := Perft(pos, depth)
			assert.Equal(t, want, got, "%s at depth %d", c.name, depth)
		}
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	pos := position.NewStartPosition()
	total, divide := PerftDivide(pos, 3)
	assert.Equal(t, uint64(8902), total)

	var sum uint64
	for _, e := range divide {
		sum += e.Nodes
	}
	assert.Equal(t, total, sum)
	assert.Len(t, divide, 20)
}

func TestGenerateLegalMovesIsDeterministic(t *testing.T) {
	pos, err := position.NewPositionFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	first := GenerateLegalMoves(pos)
	second := GenerateLegalMoves(pos)
	assert.Equal(t, first, second)
}

func TestGenerateLegalMovesNeverLeavesOwnKingInCheck(t *testing.T) {
	for _, c := range perftCases {
		pos, err := position.NewPositionFromFen(c.fen)
		assert.NoError(t, err, c.name)
		assertNoMoveExposesKing(t, pos, 3)
	}
}

// assertNoMoveExposesKing walks the legal-move tree to the given depth,
// verifying after every make that the side which just moved is not in
// check -- the core legality invariant the generator exists to uphold.
func assertNoMoveExposesKing(t *testing.T, pos *position.Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	mover := pos.SideToMove()
	for _, m := range GenerateLegalMoves(pos) {
		pos.DoMove(m)
		assert.False(t, pos.IsAttacked(pos.KingSquare(mover), mover.Flip()),
			"move %s left %s's king in check", m.StringUci(), mover.String())
		assertNoMoveExposesKing(t, pos, depth-1)
		pos.UndoMove()
	}
}
