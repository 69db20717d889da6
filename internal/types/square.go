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

// Package types holds the primitive chess data types shared by every other
// package: squares, bitboards, pieces, moves and the precomputed attack
// tables that the move generator relies on.
package types

import "fmt"

// Square is one of the 64 board squares, A1=0 .. H8=63, plus the sentinel SqNone.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = 64
)

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file the square sits on.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank the square sits on.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank, or SqNone if either is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses algebraic notation (e.g. "e4") into a Square, or SqNone.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// To returns the square reached from sq by stepping one square in direction
// d, or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return step(sq, d, sq.RankOf() < Rank8)
	case South:
		return step(sq, d, sq.RankOf() > Rank1)
	case East:
		return step(sq, d, sq.FileOf() < FileH)
	case West:
		return step(sq, d, sq.FileOf() > FileA)
	case Northeast:
		return step(sq, d, sq.FileOf() < FileH && sq.RankOf() < Rank8)
	case Northwest:
		return step(sq, d, sq.FileOf() > FileA && sq.RankOf() < Rank8)
	case Southeast:
		return step(sq, d, sq.FileOf() < FileH && sq.RankOf() > Rank1)
	case Southwest:
		return step(sq, d, sq.FileOf() > FileA && sq.RankOf() > Rank1)
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

func step(sq Square, d Direction, inBounds bool) Square {
	if !inBounds {
		return SqNone
	}
	n := int(sq) + int(d)
	if n < 0 || n >= 64 {
		return SqNone
	}
	return Square(n)
}

// String returns algebraic notation (e.g. "e4"), or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}
