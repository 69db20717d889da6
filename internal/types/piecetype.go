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

// PieceType identifies a kind of chess piece, independent of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength = 7
)

// IsValid reports whether pt is a real piece type (PtNone included).
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSlider reports whether pt slides along a ray (bishop, rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// material value in centipawns, per spec.md §4.8: P=100 N=320 B=330 R=500 Q=900 K=0.
var pieceTypeValue = [PtLength]Value{0, 0, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the piece type's name.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "-KPNBRQ"

// Char returns a single uppercase letter for the piece type ('-' for PtNone).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
