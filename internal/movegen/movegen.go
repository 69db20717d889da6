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

// Package movegen generates legal chess moves directly, without the
// pseudo-legal-then-make/undo-filter approach: it computes the checking,
// attacked and pinned bitboards up front and uses them to restrict
// candidate moves per piece, so illegal moves are never produced in the
// first place (en passant is the one exception, verified by a trial
// make/undo because a capturing pawn pair can unpin the king against a
// rank slider in a way the pin bitboard does not capture).
package movegen

import (
	"github.com/kjallback/lodestar/internal/position"
	. "github.com/kjallback/lodestar/internal/types"
)

// MaxMoves bounds the number of legal moves in any reachable chess
// position with a comfortable margin; used to size preallocated slices.
const MaxMoves = 256

// GenerateLegalMoves returns every legal move available to the side to
// move in pos. The returned order is deterministic for a given position
// (piece-kind major, origin-square minor) so perft divide and tests are
// reproducible, but callers must not rely on it for move ordering quality.
func GenerateLegalMoves(pos *position.Position) []Move {
	moves := make([]Move, 0, MaxMoves)
	g := newGenContext(pos)
	g.generateKingMoves(&moves)

	if g.checkers.PopCount() >= 2 {
		return moves // double check: only the king can move
	}
	g.generatePawnMoves(&moves)
	g.generatePieceMoves(Knight, &moves)
	g.generatePieceMoves(Bishop, &moves)
	g.generatePieceMoves(Rook, &moves)
	g.generatePieceMoves(Queen, &moves)
	return moves
}

// genContext bundles the per-call, per-position analysis the generator
// needs: checkers, squares the opponent attacks (king treated as absent,
// so it cannot hide behind its own square against a slider) and pinned own
// pieces with the single line each may still move along.
type genContext struct {
	pos         *position.Position
	us, them    Color
	kingSq      Square
	occupied    Bitboard
	checkers    Bitboard
	attacked    Bitboard
	pinned      Bitboard
	pinLine     [SqLength]Bitboard
	captureMask Bitboard // squares a non-king move must land on when in single check
}

func newGenContext(pos *position.Position) *genContext {
	g := &genContext{pos: pos}
	g.us = pos.SideToMove()
	g.them = g.us.Flip()
	g.kingSq = pos.KingSquare(g.us)
	g.occupied = pos.Occupied()
	g.checkers = pos.AttackersTo(g.kingSq, g.occupied, g.them)
	g.attacked = g.computeAttacked()
	g.computePinned()

	g.captureMask = BbAll
	if g.checkers.PopCount() == 1 {
		checkerSq := g.checkers.Lsb()
		g.captureMask = SquareBb(checkerSq)
		if pos.PieceAt(checkerSq).TypeOf().IsSlider() {
			g.captureMask |= Intermediate(g.kingSq, checkerSq)
		}
	}
	return g
}

// computeAttacked unions every square the opponent attacks, with our own
// king removed from the occupancy so sliding attacks correctly continue
// through the square the king currently stands on.
func (g *genContext) computeAttacked() Bitboard {
	occ := g.occupied &^ SquareBb(g.kingSq)
	var attacked Bitboard

	bb := g.pos.PiecesBb(g.them, Pawn)
	for bb != 0 {
		attacked |= PawnAttacks(g.them, bb.PopLsb())
	}
	bb = g.pos.PiecesBb(g.them, Knight)
	for bb != 0 {
		attacked |= LeaperAttacks(Knight, bb.PopLsb())
	}
	attacked |= LeaperAttacks(King, g.pos.KingSquare(g.them))
	bb = g.pos.PiecesBb(g.them, Bishop) | g.pos.PiecesBb(g.them, Queen)
	for bb != 0 {
		attacked |= GetAttacksBb(Bishop, bb.PopLsb(), occ)
	}
	bb = g.pos.PiecesBb(g.them, Rook) | g.pos.PiecesBb(g.them, Queen)
	for bb != 0 {
		attacked |= GetAttacksBb(Rook, bb.PopLsb(), occ)
	}
	return attacked
}

// computePinned finds own pieces that sit alone between the king and an
// enemy slider on a shared rank, file or diagonal; each such piece may
// only move along Line(kingSq, sliderSq).
func (g *genContext) computePinned() {
	potential := (GetAttacksBb(Bishop, g.kingSq, 0) & (g.pos.PiecesBb(g.them, Bishop) | g.pos.PiecesBb(g.them, Queen))) |
		(GetAttacksBb(Rook, g.kingSq, 0) & (g.pos.PiecesBb(g.them, Rook) | g.pos.PiecesBb(g.them, Queen)))

	for potential != 0 {
		sliderSq := potential.PopLsb()
		between := Intermediate(g.kingSq, sliderSq) & g.occupied
		if between.PopCount() != 1 {
			continue
		}
		blockerSq := between.Lsb()
		if g.pos.PieceAt(blockerSq).ColorOf() == g.us {
			g.pinned.PushSquare(blockerSq)
			g.pinLine[blockerSq] = Line(g.kingSq, sliderSq)
		}
	}
}

// destinationMask returns the squares a piece standing on sq may legally
// land on, folding in pin and check restrictions. Does not filter
// own-occupancy; callers AND it with the piece's raw attack set.
func (g *genContext) destinationMask(sq Square) Bitboard {
	mask := g.captureMask
	if g.pinned.Has(sq) {
		mask &= g.pinLine[sq]
	}
	return mask
}

func (g *genContext) generateKingMoves(moves *[]Move) {
	destinations := LeaperAttacks(King, g.kingSq) &^ g.pos.OccupiedBy(g.us) &^ g.attacked
	for destinations != 0 {
		to := destinations.PopLsb()
		*moves = append(*moves, CreateMove(g.kingSq, to, Normal, PtNone))
	}
	if g.checkers == 0 {
		g.generateCastling(moves)
	}
}

func (g *genContext) generateCastling(moves *[]Move) {
	occ := g.occupied
	if g.us == White {
		if g.pos.CastlingRights().Has(CastlingWhiteOO) &&
			occ&Intermediate(SqE1, SqH1) == 0 &&
			g.attacked&(SquareBb(SqF1)|SquareBb(SqG1)) == 0 {
			*moves = append(*moves, CreateMove(SqE1, SqG1, Castling, PtNone))
		}
		if g.pos.CastlingRights().Has(CastlingWhiteOOO) &&
			occ&Intermediate(SqE1, SqA1) == 0 &&
			g.attacked&(SquareBb(SqD1)|SquareBb(SqC1)) == 0 {
			*moves = append(*moves, CreateMove(SqE1, SqC1, Castling, PtNone))
		}
		return
	}
	if g.pos.CastlingRights().Has(CastlingBlackOO) &&
		occ&Intermediate(SqE8, SqH8) == 0 &&
		g.attacked&(SquareBb(SqF8)|SquareBb(SqG8)) == 0 {
		*moves = append(*moves, CreateMove(SqE8, SqG8, Castling, PtNone))
	}
	if g.pos.CastlingRights().Has(CastlingBlackOOO) &&
		occ&Intermediate(SqE8, SqA8) == 0 &&
		g.attacked&(SquareBb(SqD8)|SquareBb(SqC8)) == 0 {
		*moves = append(*moves, CreateMove(SqE8, SqC8, Castling, PtNone))
	}
}

func (g *genContext) generatePieceMoves(pt PieceType, moves *[]Move) {
	bb := g.pos.PiecesBb(g.us, pt)
	for bb != 0 {
		from := bb.PopLsb()
		destinations := GetAttacksBb(pt, from, g.occupied) &^ g.pos.OccupiedBy(g.us) & g.destinationMask(from)
		for destinations != 0 {
			to := destinations.PopLsb()
			*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
		}
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (g *genContext) generatePawnMoves(moves *[]Move) {
	pawns := g.pos.PiecesBb(g.us, Pawn)
	forward := g.us.PawnDirection()
	promotionRank := g.us.PromotionRankBb()
	startRank := g.us.DoublePushRankBb()

	for pawns != 0 {
		from := pawns.PopLsb()
		mask := g.destinationMask(from)

		// single and double push
		one := from.To(forward)
		if one.IsValid() && g.pos.PieceAt(one) == PieceNone {
			if SquareBb(one)&mask != 0 {
				g.addPawnMove(moves, from, one, promotionRank)
			}
			if startRank.Has(from) {
				two := one.To(forward)
				if two.IsValid() && g.pos.PieceAt(two) == PieceNone && SquareBb(two)&mask != 0 {
					*moves = append(*moves, CreateMove(from, two, Normal, PtNone))
				}
			}
		}

		// captures
		for _, cap := range [2]Square{from.To(forward + East), from.To(forward + West)} {
			if !cap.IsValid() {
				continue
			}
			if !validPawnCapture(from, cap) {
				continue
			}
			target := g.pos.PieceAt(cap)
			if target != PieceNone && target.ColorOf() == g.them && SquareBb(cap)&mask != 0 {
				g.addPawnMove(moves, from, cap, promotionRank)
			}
			if cap == g.pos.EnPassantSquare() {
				capturedPawnSq := cap.To(g.them.PawnDirection())
				checkOk := g.captureMask == BbAll || SquareBb(capturedPawnSq)&g.captureMask != 0
				pinOk := !g.pinned.Has(from) || SquareBb(cap)&g.pinLine[from] != 0
				if checkOk && pinOk {
					g.tryGenerateEnPassant(moves, from, cap)
				}
			}
		}
	}
}

// validPawnCapture guards against the from.To(d) wraparound sentinel
// colliding with a real square on the far side of the board.
func validPawnCapture(from, to Square) bool {
	return to.IsValid() && SquareDistance(from, to) == 1 && from.FileOf() != to.FileOf()
}

func (g *genContext) addPawnMove(moves *[]Move, from, to Square, promotionRank Bitboard) {
	if promotionRank.Has(to) {
		for _, pt := range promotionPieces {
			*moves = append(*moves, CreateMove(from, to, Promotion, pt))
		}
		return
	}
	*moves = append(*moves, CreateMove(from, to, Normal, PtNone))
}

// tryGenerateEnPassant is the one legality check the generator performs by
// simulation: an en-passant capture can unpin the king against a rank
// slider only when both the capturing and captured pawns sit between the
// king and that slider, a pattern the pin bitboard does not express.
func (g *genContext) tryGenerateEnPassant(moves *[]Move, from, to Square) {
	m := CreateMove(from, to, EnPassant, PtNone)
	g.pos.DoMove(m)
	legal := !g.pos.IsAttacked(g.pos.KingSquare(g.us), g.them)
	g.pos.UndoMove()
	if legal {
		*moves = append(*moves, m)
	}
}
