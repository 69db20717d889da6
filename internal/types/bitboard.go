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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, bit i set means square i is a member.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var (
	FileABb = fileBb(FileA)
	FileBBb = fileBb(FileB)
	FileCBb = fileBb(FileC)
	FileDBb = fileBb(FileD)
	FileEBb = fileBb(FileE)
	FileFBb = fileBb(FileF)
	FileGBb = fileBb(FileG)
	FileHBb = fileBb(FileH)

	Rank1Bb = rankBb(Rank1)
	Rank2Bb = rankBb(Rank2)
	Rank3Bb = rankBb(Rank3)
	Rank4Bb = rankBb(Rank4)
	Rank5Bb = rankBb(Rank5)
	Rank6Bb = rankBb(Rank6)
	Rank7Bb = rankBb(Rank7)
	Rank8Bb = rankBb(Rank8)

	NotFileABb = ^FileABb
	NotFileHBb = ^FileHBb

	fileBbOf [8]Bitboard
	rankBbOf [8]Bitboard
	squareBb [SqLength]Bitboard
)

func fileBb(f File) Bitboard {
	var bb Bitboard
	for r := Rank1; r <= Rank8; r++ {
		bb |= Bitboard(1) << uint(SquareOf(f, r))
	}
	return bb
}

func rankBb(r Rank) Bitboard {
	var bb Bitboard
	for f := FileA; f <= FileH; f++ {
		bb |= Bitboard(1) << uint(SquareOf(f, r))
	}
	return bb
}

// initBitboards fills the file, rank and square lookup tables. It is called
// first from the attack-table init in attacks.go, which builds on them and
// would otherwise run before this file's tables are set.
func initBitboards() {
	for f := FileA; f <= FileH; f++ {
		fileBbOf[f] = fileBb(f)
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBbOf[r] = rankBb(r)
	}
	for sq := SqA1; sq < SqNone; sq++ {
		squareBb[sq] = Bitboard(1) << uint(sq)
	}
}

// SquareBb returns the singleton bitboard for sq.
func SquareBb(sq Square) Bitboard {
	return squareBb[sq]
}

// FileBb returns the bitboard of all squares on f.
func FileBb(f File) Bitboard {
	return fileBbOf[f]
}

// RankBb returns the bitboard of all squares on r.
func RankBb(r Rank) Bitboard {
	return rankBbOf[r]
}

// PushSquare sets sq's bit in bb.
func (bb *Bitboard) PushSquare(sq Square) {
	*bb |= squareBb[sq]
}

// PopSquare clears sq's bit in bb.
func (bb *Bitboard) PopSquare(sq Square) {
	*bb &^= squareBb[sq]
}

// Has reports whether sq's bit is set in bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&squareBb[sq] != 0
}

// PopCount returns the number of set bits.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// Lsb returns the least-significant set square, or SqNone if bb is empty.
func (bb Bitboard) Lsb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Msb returns the most-significant set square, or SqNone if bb is empty.
func (bb Bitboard) Msb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLsb clears and returns the least-significant set square.
func (bb *Bitboard) PopLsb() Square {
	sq := bb.Lsb()
	*bb &= *bb - 1
	return sq
}

// ShiftBitboard shifts every bit of bb one square in direction d, masking
// off wraparound across the A/H files.
func ShiftBitboard(bb Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return bb << 8
	case South:
		return bb >> 8
	case East:
		return (bb &^ FileHBb) << 1
	case West:
		return (bb &^ FileABb) >> 1
	case Northeast:
		return (bb &^ FileHBb) << 9
	case Northwest:
		return (bb &^ FileABb) << 7
	case Southeast:
		return (bb &^ FileHBb) >> 7
	case Southwest:
		return (bb &^ FileABb) >> 9
	default:
		return 0
	}
}

// String renders bb as a hex literal of its underlying uint64.
func (bb Bitboard) String() string {
	return fmt.Sprintf("0x%016x", uint64(bb))
}

// StringBoard renders bb as an 8x8 grid, rank 8 at the top, for diagnostics.
func (bb Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if bb.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
