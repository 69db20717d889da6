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
	"fmt"

	"github.com/kjallback/lodestar/internal/position"
	. "github.com/kjallback/lodestar/internal/types"
)

// Perft counts the leaf nodes reachable at exactly depth plies by making
// every legal move, the move generator's standard correctness oracle. It
// never short-circuits on repetition or the 50-move rule: perft counts
// positions, not games.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		pos.DoMove(m)
		nodes += Perft(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}

// DivideEntry is one root move's perft subtree count, as printed by
// "perft divide".
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// PerftDivide runs perft one ply at a time from the root, reporting each
// root move's subtree node count alongside the grand total.
func PerftDivide(pos *position.Position, depth int) (total uint64, divide []DivideEntry) {
	if depth == 0 {
		return 1, nil
	}
	moves := GenerateLegalMoves(pos)
	divide = make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		pos.DoMove(m)
		n := Perft(pos, depth-1)
		pos.UndoMove()
		divide = append(divide, DivideEntry{Move: m, Nodes: n})
		total += n
	}
	return total, divide
}

// FormatDivide renders divide in the conventional "perft divide" text
// format: one "<move>: <count>" line per root move, followed by the total.
func FormatDivide(total uint64, divide []DivideEntry) string {
	var out string
	for _, e := range divide {
		out += fmt.Sprintf("%s: %d\n", e.Move.StringUci(), e.Nodes)
	}
	out += fmt.Sprintf("\nNodes searched: %d\n", total)
	return out
}
