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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kjallback/lodestar/internal/types"
)

var perftFens = []string{
	StartFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range perftFens {
		pos, err := NewPositionFromFen(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, pos.Fen())
	}
}

func TestFenRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range cases {
		_, err := NewPositionFromFen(fen)
		assert.Error(t, err, fen)
	}
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	pos := NewStartPosition()
	beforeFen := pos.Fen()
	beforeKey := pos.ZobristKey()

	moves := []Move{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqE7, SqE5, Normal, PtNone),
		CreateMove(SqG1, SqF3, Normal, PtNone),
		CreateMove(SqB8, SqC6, Normal, PtNone),
	}
	for _, m := range moves {
		pos.DoMove(m)
	}
	assert.NotEqual(t, beforeFen, pos.Fen())

	for i := len(moves) - 1; i >= 0; i-- {
		pos.UndoMove()
	}
	assert.Equal(t, beforeFen, pos.Fen())
	assert.Equal(t, beforeKey, pos.ZobristKey())
}

func TestDoMoveUndoMoveRoundTripCastlingAndEnPassant(t *testing.T) {
	fen := "r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1"
	pos, err := NewPositionFromFen(fen)
	assert.NoError(t, err)
	beforeFen := pos.Fen()
	beforeKey := pos.ZobristKey()

	pos.DoMove(CreateMove(SqE5, SqD6, EnPassant, PtNone))
	pos.UndoMove()
	assert.Equal(t, beforeFen, pos.Fen())
	assert.Equal(t, beforeKey, pos.ZobristKey())

	pos.DoMove(CreateMove(SqE1, SqG1, Castling, PtNone))
	pos.UndoMove()
	assert.Equal(t, beforeFen, pos.Fen())
	assert.Equal(t, beforeKey, pos.ZobristKey())
}

func TestZobristKeyMatchesFromScratchAfterMoves(t *testing.T) {
	pos := NewStartPosition()
	assert.Equal(t, zobristKeyFromScratch(pos), pos.ZobristKey())

	moves := []Move{
		CreateMove(SqD2, SqD4, Normal, PtNone),
		CreateMove(SqD7, SqD5, Normal, PtNone),
		CreateMove(SqC1, SqF4, Normal, PtNone),
		CreateMove(SqB8, SqC6, Normal, PtNone),
		CreateMove(SqB1, SqC3, Normal, PtNone),
	}
	for _, m := range moves {
		pos.DoMove(m)
		assert.Equal(t, zobristKeyFromScratch(pos), pos.ZobristKey(), m.StringUci())
	}
	for range moves {
		pos.UndoMove()
		assert.Equal(t, zobristKeyFromScratch(pos), pos.ZobristKey())
	}
}

func TestZobristKeyMatchesFromScratchForPerftFens(t *testing.T) {
	for _, fen := range perftFens {
		pos, err := NewPositionFromFen(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, zobristKeyFromScratch(pos), pos.ZobristKey(), fen)
	}
}
