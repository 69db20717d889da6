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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjallback/lodestar/internal/position"
	. "github.com/kjallback/lodestar/internal/types"
)

func TestThreefoldRepetitionIsDetected(t *testing.T) {
	g := New(position.NewStartPosition())

	roundTrip := []Move{
		CreateMove(SqG1, SqF3, Normal, PtNone),
		CreateMove(SqG8, SqF6, Normal, PtNone),
		CreateMove(SqF3, SqG1, Normal, PtNone),
		CreateMove(SqF6, SqG8, Normal, PtNone),
	}

	assert.False(t, g.IsRepetition(2))
	for i := 0; i < 2; i++ {
		for _, m := range roundTrip {
			g.MakeMove(m)
		}
	}
	assert.True(t, g.IsRepetition(2))
	assert.True(t, g.IsDrawByRule())
}

func TestFiftyMoveRule(t *testing.T) {
	pos, err := position.NewPositionFromFen("8/8/4k3/8/8/4K3/8/8 w - - 99 60")
	assert.NoError(t, err)
	g := New(pos)
	assert.False(t, g.IsFiftyMoveRule())

	g.MakeMove(CreateMove(SqE3, SqD3, Normal, PtNone))
	assert.Equal(t, 100, g.Position().HalfMoveClock())
	assert.True(t, g.IsFiftyMoveRule())
	assert.True(t, g.IsDrawByRule())
}

func TestInsufficientMaterial(t *testing.T) {
	pos, err := position.NewPositionFromFen("8/8/4k3/8/8/4K3/8/4B3 w - - 0 1")
	assert.NoError(t, err)
	g := New(pos)
	assert.True(t, g.IsInsufficientMaterial())
	assert.True(t, g.IsDrawByRule())
}

func TestSufficientMaterialIsNotADraw(t *testing.T) {
	pos, err := position.NewPositionFromFen("8/8/4k3/8/8/4K3/8/4R3 w - - 0 1")
	assert.NoError(t, err)
	g := New(pos)
	assert.False(t, g.IsInsufficientMaterial())
	assert.False(t, g.IsDrawByRule())
}

func TestStatusCheckmate(t *testing.T) {
	pos, err := position.NewPositionFromFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	g := New(pos)
	g.MakeMove(CreateMove(SqA1, SqA8, Normal, PtNone))
	assert.Equal(t, Checkmate, g.Status())
}

func TestStatusStalemate(t *testing.T) {
	// Qb7-f7 (like Qd5 or Qb3) covers g8 without giving check and so
	// stalemates the black king trapped on h8 -- the trap a search must
	// avoid despite it looking like it boxes the king in.
	pos, err := position.NewPositionFromFen("7k/1Q6/6K1/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	g := New(pos)
	g.MakeMove(CreateMove(SqB7, SqF7, Normal, PtNone))
	assert.Equal(t, Stalemate, g.Status())
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	g := New(position.NewStartPosition())
	beforeFen := g.Position().Fen()

	g.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	assert.Equal(t, 1, g.Ply())
	g.UnmakeMove()

	assert.Equal(t, beforeFen, g.Position().Fen())
	assert.Equal(t, 0, g.Ply())
}
