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

package types

import "strings"

// Piece packs a Color and a PieceType into a single value; bit 3 is the
// color, the low 3 bits are the piece type. PieceNone is the zero value.
type Piece int8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the piece's color. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece's type (PtNone for PieceNone).
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the piece's material value.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToString = " KPNBRQ- kpnbrq-"

// PieceFromChar parses a single FEN piece letter, returning PieceNone if s
// is not exactly one recognized character.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	i := strings.IndexByte(pieceToString, s[0])
	if i == -1 {
		return PieceNone
	}
	return Piece(i)
}

// String returns the FEN letter for the piece (' ' for PieceNone).
func (p Piece) String() string {
	return string(pieceToString[p])
}
