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

// Package game wraps a Position with the repetition and draw-rule
// bookkeeping a search needs: only Zobrist keys and an "irreversible move"
// marker are kept per ply, not a full position stack.
package game

import (
	"github.com/kjallback/lodestar/internal/movegen"
	"github.com/kjallback/lodestar/internal/position"
	. "github.com/kjallback/lodestar/internal/types"
)

// maxGameLength bounds the number of plies a single game can record; well
// beyond anything a real game or test scenario reaches.
const maxGameLength = 2048

// Game owns a Position and the history needed to answer draw-rule queries
// without reconstructing earlier boards.
type Game struct {
	pos *position.Position

	keys         [maxGameLength]position.Key
	irreversible [maxGameLength]bool
	len          int
}

// New wraps pos in a fresh Game with empty history.
func New(pos *position.Position) *Game {
	g := &Game{pos: pos}
	g.keys[0] = pos.ZobristKey()
	g.irreversible[0] = true // nothing to repeat before the starting position
	g.len = 1
	return g
}

// Position returns the underlying board. Callers may call DoMove/UndoMove
// on it directly, but must go through Game.MakeMove/UnmakeMove to keep the
// repetition history consistent.
func (g *Game) Position() *position.Position {
	return g.pos
}

// MakeMove plays m and records whether it was irreversible (capture, pawn
// move, castling, or a change in castling rights) for repetition purposes.
func (g *Game) MakeMove(m Move) {
	halfMoveBefore := g.pos.HalfMoveClock()
	rightsBefore := g.pos.CastlingRights()

	g.pos.DoMove(m)

	irreversible := g.pos.HalfMoveClock() < halfMoveBefore+1 ||
		m.MoveType() != Normal ||
		g.pos.CastlingRights() != rightsBefore

	g.keys[g.len] = g.pos.ZobristKey()
	g.irreversible[g.len] = irreversible
	g.len++
}

// UnmakeMove reverses the most recent MakeMove call.
func (g *Game) UnmakeMove() {
	g.pos.UndoMove()
	g.len--
}

// Ply returns the number of plies recorded, including the starting position.
func (g *Game) Ply() int {
	return g.len - 1
}

// lastIrreversiblePly returns the index of the most recent irreversible
// marker at or before the current ply.
func (g *Game) lastIrreversiblePly() int {
	for i := g.len - 1; i >= 0; i-- {
		if g.irreversible[i] {
			return i
		}
	}
	return 0
}

// IsRepetition reports whether the current position's key has occurred at
// least reps times (including the current occurrence) since the last
// irreversible move. Passing reps=2 implements the engine's threefold-claim
// policy from spec.md (report draw-eligible on the second repetition).
func (g *Game) IsRepetition(reps int) bool {
	since := g.lastIrreversiblePly()
	current := g.keys[g.len-1]
	count := 0
	for i := g.len - 1; i >= since; i-- {
		if g.keys[i] == current {
			count++
		}
	}
	return count >= reps
}

// IsFiftyMoveRule reports whether the halfmove clock has reached 100
// (fifty full moves without a capture or pawn move).
func (g *Game) IsFiftyMoveRule() bool {
	return g.pos.HalfMoveClock() >= 100
}

// IsInsufficientMaterial reports whether neither side has enough material
// to force checkmate: K vs K, K+minor vs K, or K+B vs K+B with same-colored
// bishops. All other material combinations are considered sufficient, even
// though some (e.g. K+N vs K+N) are drawish in practice.
func (g *Game) IsInsufficientMaterial() bool {
	p := g.pos

	if p.Material(White) == 0 && p.Material(Black) == 0 {
		return true
	}
	if p.PiecesBb(White, Pawn) != 0 || p.PiecesBb(Black, Pawn) != 0 {
		return false
	}
	if p.PiecesBb(White, Rook) != 0 || p.PiecesBb(Black, Rook) != 0 ||
		p.PiecesBb(White, Queen) != 0 || p.PiecesBb(Black, Queen) != 0 {
		return false
	}

	whiteMinors := p.PiecesBb(White, Knight).PopCount() + p.PiecesBb(White, Bishop).PopCount()
	blackMinors := p.PiecesBb(Black, Knight).PopCount() + p.PiecesBb(Black, Bishop).PopCount()

	// K vs K+minor (either way round).
	if whiteMinors == 0 && blackMinors <= 1 {
		return true
	}
	if blackMinors == 0 && whiteMinors <= 1 {
		return true
	}

	// K+B vs K+B with bishops on the same color complex.
	if whiteMinors == 1 && blackMinors == 1 &&
		p.PiecesBb(White, Knight) == 0 && p.PiecesBb(Black, Knight) == 0 {
		wBishop := p.PiecesBb(White, Bishop).Lsb()
		bBishop := p.PiecesBb(Black, Bishop).Lsb()
		if squareColor(wBishop) == squareColor(bBishop) {
			return true
		}
	}

	return false
}

// squareColor reports the color of the square's board-coloring square
// (true for light squares), used to compare same-colored bishops.
func squareColor(sq Square) bool {
	return (int(sq.FileOf())+int(sq.RankOf()))%2 != 0
}

// IsDrawByRule reports any of the claimable draw conditions: fifty-move
// rule, threefold repetition (claimed on the second repetition per
// spec.md's relaxed policy) or insufficient material.
func (g *Game) IsDrawByRule() bool {
	return g.IsFiftyMoveRule() || g.IsRepetition(2) || g.IsInsufficientMaterial()
}

// TerminalStatus classifies a position with zero legal moves.
type TerminalStatus int

const (
	NotTerminal TerminalStatus = iota
	Checkmate
	Stalemate
)

// Status reports whether the current position has any legal move and, if
// not, whether it is checkmate or stalemate.
func (g *Game) Status() TerminalStatus {
	if len(movegen.GenerateLegalMoves(g.pos)) > 0 {
		return NotTerminal
	}
	if g.pos.InCheck() {
		return Checkmate
	}
	return Stalemate
}
