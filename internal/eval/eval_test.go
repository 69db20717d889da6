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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjallback/lodestar/internal/game"
	"github.com/kjallback/lodestar/internal/position"
	. "github.com/kjallback/lodestar/internal/types"
)

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	g := game.New(position.NewStartPosition())
	assert.Equal(t, ValueZero, Evaluate(g))
}

func TestEvaluateFavorsMaterialUp(t *testing.T) {
	pos, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.NoError(t, err)
	g := game.New(pos)
	assert.True(t, Evaluate(g) > ValueZero)
}

func TestEvaluateIsFromSideToMovePerspective(t *testing.T) {
	pos, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.NoError(t, err)
	g := game.New(pos)
	assert.True(t, Evaluate(g) < ValueZero)
}

func TestTerminalScoreCheckmateFavorsFasterMate(t *testing.T) {
	pos, err := position.NewPositionFromFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)
	g := game.New(pos)
	g.MakeMove(CreateMove(SqA1, SqA8, Normal, PtNone))

	scoreAtPly1 := TerminalScore(g, 1)
	scoreAtPly3 := TerminalScore(g, 3)
	assert.Equal(t, -(ValueMate - 1), scoreAtPly1)
	assert.True(t, scoreAtPly1 < scoreAtPly3, "a mate found sooner (lower ply) must score worse for the mated side")
}

func TestTerminalScoreStalemateIsDraw(t *testing.T) {
	pos, err := position.NewPositionFromFen("7k/1Q6/6K1/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	g := game.New(pos)
	g.MakeMove(CreateMove(SqB7, SqF7, Normal, PtNone))
	assert.Equal(t, ValueDraw, TerminalScore(g, 1))
}
