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
	"fmt"

	"github.com/kjallback/lodestar/internal/assert"
	. "github.com/kjallback/lodestar/internal/types"
)

// DoMove applies move to the position in place. The caller must guarantee
// the move is legal in the current position; DoMove does not re-verify
// legality, only the shape asserted by assert.DEBUG.
func (p *Position) DoMove(m Move) {
	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	capturedPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "DoMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "DoMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(fromPc.ColorOf() == p.sideToMove, "DoMove: piece on %s does not belong to side to move", fromSq.String())
		assert.Assert(capturedPc.TypeOf() != King, "DoMove: king cannot be captured")
	}

	h := &p.history[p.historyLen]
	h.move = m
	h.movedPiece = fromPc
	h.capturedPiece = capturedPc
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	h.zobristKey = p.zobristKey
	p.historyLen++

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(fromSq, toSq, fromPc, capturedPc)
	case Promotion:
		p.doPromotionMove(m, fromSq, toSq, fromPc, capturedPc)
	case EnPassant:
		p.doEnPassantMove(fromSq, toSq, fromPc)
	case Castling:
		p.doCastlingMove(fromSq, toSq, fromPc)
	}

	p.nextHalfMove++
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobristBase.sideToMove
}

// UndoMove reverses the most recent DoMove call.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyLen > 0, "UndoMove: no move to undo")
	}
	p.historyLen--
	p.nextHalfMove--
	p.sideToMove = p.sideToMove.Flip()
	h := &p.history[p.historyLen]

	switch h.move.MoveType() {
	case Normal:
		p.movePiece(h.move.To(), h.move.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, h.move.To())
		}
	case Promotion:
		p.removePiece(h.move.To())
		p.putPiece(h.movedPiece, h.move.From())
		if h.capturedPiece != PieceNone {
			p.putPiece(h.capturedPiece, h.move.To())
		}
	case EnPassant:
		p.movePiece(h.move.To(), h.move.From())
		capSq := h.move.To().To(p.sideToMove.Flip().PawnDirection())
		p.putPiece(MakePiece(p.sideToMove.Flip(), Pawn), capSq)
	case Castling:
		p.movePiece(h.move.To(), h.move.From())
		rookFrom, rookTo := castlingRookSquares(h.move.To())
		p.movePiece(rookTo, rookFrom)
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
}

func (p *Position) doNormalMove(fromSq, toSq Square, fromPc, capturedPc Piece) {
	if p.castlingRights != CastlingNone {
		if cr := CastlingRightsRevokedBy(fromSq) | CastlingRightsRevokedBy(toSq); cr != CastlingNone {
			p.setCastlingRights(p.castlingRights &^ cr)
		}
	}
	p.clearEnPassant()

	switch {
	case capturedPc != PieceNone:
		p.removePiece(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(fromPc.ColorOf().Flip().PawnDirection())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doPromotionMove(m Move, fromSq, toSq Square, fromPc, capturedPc Piece) {
	if assert.DEBUG {
		assert.Assert(fromPc.TypeOf() == Pawn, "doPromotionMove: moved piece is not a pawn")
	}
	if capturedPc != PieceNone {
		p.removePiece(toSq)
	}
	if p.castlingRights != CastlingNone {
		if cr := CastlingRightsRevokedBy(fromSq) | CastlingRightsRevokedBy(toSq); cr != CastlingNone {
			p.setCastlingRights(p.castlingRights &^ cr)
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(fromPc.ColorOf(), m.PromotionType()), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doEnPassantMove(fromSq, toSq Square, fromPc Piece) {
	capSq := toSq.To(fromPc.ColorOf().Flip().PawnDirection())
	if assert.DEBUG {
		assert.Assert(p.enPassantSquare.IsValid(), "doEnPassantMove: no en passant target set")
		assert.Assert(p.board[capSq] == MakePiece(fromPc.ColorOf().Flip(), Pawn), "doEnPassantMove: no enemy pawn to capture")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doCastlingMove(fromSq, toSq Square, fromPc Piece) {
	if assert.DEBUG {
		assert.Assert(fromPc.TypeOf() == King, "doCastlingMove: moved piece is not a king")
	}
	p.movePiece(fromSq, toSq)
	rookFrom, rookTo := castlingRookSquares(toSq)
	p.movePiece(rookFrom, rookTo)
	p.setCastlingRights(p.castlingRights &^ castlingRightsForSide(fromPc.ColorOf()))
	p.clearEnPassant()
	p.halfMoveClock++
}

func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("castlingRookSquares: %s is not a legal castling destination", kingTo.String()))
	}
}

func castlingRightsForSide(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}
