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

// Package position holds the mutable board representation: piece placement,
// side to move, castling rights, en-passant target, move clocks and the
// incrementally maintained Zobrist key. It has no move-legality logic of its
// own beyond what DoMove/UndoMove need to stay consistent; the move
// generator decides what is legal, this package only applies it.
package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/kjallback/lodestar/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxHistory bounds how many plies of undo information a Position keeps
// inline; generous enough for any game plus the deepest search line.
const MaxHistory = 1024

// Position is the pure board state described by spec.md: piece placement,
// side to move, castling rights, en-passant target, halfmove clock, fullmove
// number and Zobrist key. It carries no rule logic beyond make/unmake.
type Position struct {
	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [ColorLength]Bitboard
	kingSquare      [ColorLength]Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextHalfMove    int // ply count; fullmove = (nextHalfMove+1)/2
	sideToMove      Color
	zobristKey      Key
	material        [ColorLength]Value

	historyLen int
	history    [MaxHistory]undoState
}

// undoState is the per-ply information needed to reverse a DoMove call
// without re-deriving it from the board.
type undoState struct {
	move            Move
	movedPiece      Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      Key
}

// NewStartPosition returns a Position set up as the standard chess start.
func NewStartPosition() *Position {
	p, err := NewPositionFromFen(StartFen)
	if err != nil {
		panic("lodestar: built-in start FEN failed to parse: " + err.Error())
	}
	return p
}

// NewPositionFromFen parses fen into a new Position, or returns InvalidFen
// if fen is malformed or semantically invalid.
func NewPositionFromFen(fen string) (*Position, error) {
	p := &Position{}
	for sq := SqA1; sq <= SqH8; sq++ {
		p.board[sq] = PieceNone
	}
	p.enPassantSquare = SqNone
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Clone returns a deep copy of p, independent of the original's history.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// --- accessors ---------------------------------------------------------

func (p *Position) ZobristKey() Key { return p.zobristKey }
func (p *Position) SideToMove() Color { return p.sideToMove }
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }
func (p *Position) OccupiedBy(c Color) Bitboard { return p.occupiedBb[c] }
func (p *Position) Occupied() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }
func (p *Position) FullMoveNumber() int { return (p.nextHalfMove + 1) / 2 }
func (p *Position) Material(c Color) Value { return p.material[c] }
func (p *Position) Ply() int { return p.historyLen }

// LastMove returns the most recently made move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if p.historyLen == 0 {
		return MoveNone
	}
	return p.history[p.historyLen-1].move
}

// --- board mutation primitives -----------------------------------------

func (p *Position) putPiece(piece Piece, sq Square) {
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = piece
	if pt == King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt].PushSquare(sq)
	p.occupiedBb[color].PushSquare(sq)
	p.zobristKey ^= zobristBase.pieces[piece][sq]
	p.material[color] += pt.ValueOf()
}

func (p *Position) removePiece(sq Square) Piece {
	removed := p.board[sq]
	color := removed.ColorOf()
	pt := removed.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.occupiedBb[color].PopSquare(sq)
	p.zobristKey ^= zobristBase.pieces[removed][sq]
	p.material[color] -= pt.ValueOf()
	return removed
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare.IsValid() {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

func (p *Position) setCastlingRights(cr CastlingRights) {
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights = cr
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
}

// --- FEN -----------------------------------------------------------------

var (
	reFenBoard    = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	reFenSide     = regexp.MustCompile(`^[wb]$`)
	reFenCastling = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	reFenEp       = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// InvalidFen reports why a FEN string was rejected.
type InvalidFen struct {
	Reason string
}

func (e *InvalidFen) Error() string { return "invalid fen: " + e.Reason }

func invalidFen(format string, a ...interface{}) error {
	return &InvalidFen{Reason: fmt.Sprintf(format, a...)}
}

func (p *Position) setupFromFen(fen string) error {
	fen = strings.TrimSpace(fen)
	parts := strings.Split(fen, " ")
	if len(parts) == 0 || parts[0] == "" {
		return invalidFen("empty fen")
	}
	if !reFenBoard.MatchString(parts[0]) {
		return invalidFen("board field contains invalid characters: %q", parts[0])
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return invalidFen("expected 8 ranks separated by '/', got %d", len(ranks))
	}
	for ri, rank := range ranks {
		r := Rank8 - Rank(ri)
		f := FileA
		for _, c := range rank {
			if n, err := strconv.Atoi(string(c)); err == nil {
				f += File(n)
				continue
			}
			if f > FileH {
				return invalidFen("rank %d overflows 8 files", ri+1)
			}
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return invalidFen("invalid piece character %q", string(c))
			}
			p.putPiece(piece, SquareOf(f, r))
			f++
		}
		if f != File(FileLength) {
			return invalidFen("rank %d does not cover exactly 8 files", ri+1)
		}
	}

	p.sideToMove = White
	p.nextHalfMove = 1
	p.enPassantSquare = SqNone

	if len(parts) >= 2 {
		if !reFenSide.MatchString(parts[1]) {
			return invalidFen("side to move must be 'w' or 'b', got %q", parts[1])
		}
		if parts[1] == "b" {
			p.sideToMove = Black
			p.zobristKey ^= zobristBase.sideToMove
			p.nextHalfMove++
		}
	}

	if len(parts) >= 3 {
		if !reFenCastling.MatchString(parts[2]) {
			return invalidFen("castling field invalid: %q", parts[2])
		}
		var cr CastlingRights
		for _, c := range parts[2] {
			switch c {
			case 'K':
				cr.Add(CastlingWhiteOO)
			case 'Q':
				cr.Add(CastlingWhiteOOO)
			case 'k':
				cr.Add(CastlingBlackOO)
			case 'q':
				cr.Add(CastlingBlackOOO)
			}
		}
		p.castlingRights = cr
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(parts) >= 4 {
		if !reFenEp.MatchString(parts[3]) {
			return invalidFen("en passant field invalid: %q", parts[3])
		}
		if parts[3] != "-" {
			p.enPassantSquare = MakeSquare(parts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return invalidFen("halfmove clock must be a non-negative integer, got %q", parts[4])
		}
		p.halfMoveClock = n
	}

	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			if err != nil {
				return invalidFen("fullmove number must be an integer, got %q", parts[5])
			}
			n = 1
		}
		p.nextHalfMove = 2*n - (1 - int(p.sideToMove))
	}

	if p.piecesBb[White][King].PopCount() != 1 || p.piecesBb[Black][King].PopCount() != 1 {
		return invalidFen("position must have exactly one king per side")
	}
	if (p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn])&(Rank1Bb|Rank8Bb) != 0 {
		return invalidFen("pawns may not stand on rank 1 or rank 8")
	}

	return nil
}

// Fen renders the position back into Forsyth-Edwards notation.
func (p *Position) Fen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.FullMoveNumber()))
	return sb.String()
}

func (p *Position) String() string {
	return p.Fen()
}

// StringBoard renders an 8x8 ASCII diagram, rank 8 first, for UCI "d" output.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteString(" | ")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(p.board[SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	sb.WriteString(fmt.Sprintf("Fen: %s\n", p.Fen()))
	sb.WriteString(fmt.Sprintf("Key: %016x\n", uint64(p.zobristKey)))
	return sb.String()
}
