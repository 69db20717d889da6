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

// Package eval computes a static score for a position from the side to
// move's perspective. Scope is intentionally narrow: material only, no
// positional tables or pawn structure heuristics, matching the evaluation
// a search using it is required to reason about.
package eval

import (
	"github.com/kjallback/lodestar/internal/game"
	. "github.com/kjallback/lodestar/internal/types"
)

// Evaluate returns the static score of the position held by g, from the
// perspective of the side to move: material(us) - material(them).
func Evaluate(g *game.Game) Value {
	pos := g.Position()
	us := pos.SideToMove()
	them := us.Flip()
	return pos.Material(us) - pos.Material(them)
}

// TerminalScore returns the score for a position with zero legal moves,
// from the side to move's perspective: a king walked into checkmate loses
// by -(MATE - ply) so that shallower mates score closer to -MATE (i.e.
// the engine prefers the slower loss only when no faster escape exists,
// and prefers giving the fastest mate when ahead); stalemate is a draw.
func TerminalScore(g *game.Game, ply int) Value {
	if g.Status() == game.Checkmate {
		return -(ValueMate - Value(ply))
	}
	return ValueDraw
}
