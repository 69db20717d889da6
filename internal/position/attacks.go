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

package position

import (
	. "github.com/kjallback/lodestar/internal/types"
)

// AttackersTo returns every piece of color by that attacks sq, given an
// explicit occupancy (so callers can probe "what if this square were
// empty/occupied" without mutating the board, e.g. for king-transparent
// attack sets).
func (p *Position) AttackersTo(sq Square, occupied Bitboard, by Color) Bitboard {
	return (PawnAttacks(by.Flip(), sq) & p.piecesBb[by][Pawn]) |
		(LeaperAttacks(Knight, sq) & p.piecesBb[by][Knight]) |
		(LeaperAttacks(King, sq) & p.piecesBb[by][King]) |
		(GetAttacksBb(Bishop, sq, occupied) & (p.piecesBb[by][Bishop] | p.piecesBb[by][Queen])) |
		(GetAttacksBb(Rook, sq, occupied) & (p.piecesBb[by][Rook] | p.piecesBb[by][Queen]))
}

// IsAttacked reports whether sq is attacked by any piece of color by on the
// current board. En-passant capture threats are not attacks on a square and
// are deliberately not modeled here; the move generator handles en-passant
// legality separately.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return p.AttackersTo(sq, p.Occupied(), by) != 0
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// GivesCheck reports whether making m would place the opponent's king in
// check. Nothing in the engine calls it; the search only needs InCheck
// after DoMove.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
	p.UndoMove()
	return check
}
