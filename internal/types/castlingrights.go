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

// CastlingRights is a 4-bit set of the independent castling rights
// {WK, WQ, BK, BQ} from spec.md §3.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack
	CastlingLength   int            = 16
)

// Has reports whether cr grants the given right(s).
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right == right
}

// Add grants the given right(s).
func (cr *CastlingRights) Add(right CastlingRights) {
	*cr |= right
}

// Remove revokes the given right(s).
func (cr *CastlingRights) Remove(right CastlingRights) {
	*cr &^= right
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// squareCastlingRights maps a square to the castling rights it revokes when
// a piece moves from or to it (king/rook home squares).
var squareCastlingRights [SqLength]CastlingRights

func init() {
	squareCastlingRights[SqE1] = CastlingWhite
	squareCastlingRights[SqA1] = CastlingWhiteOOO
	squareCastlingRights[SqH1] = CastlingWhiteOO
	squareCastlingRights[SqE8] = CastlingBlack
	squareCastlingRights[SqA8] = CastlingBlackOOO
	squareCastlingRights[SqH8] = CastlingBlackOO
}

// CastlingRightsRevokedBy returns the castling rights that a move touching
// sq (as its from- or to-square) revokes.
func CastlingRightsRevokedBy(sq Square) CastlingRights {
	return squareCastlingRights[sq]
}
