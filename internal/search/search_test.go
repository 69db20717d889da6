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

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjallback/lodestar/internal/game"
	"github.com/kjallback/lodestar/internal/position"
)

func TestSearchFindsMateInOne(t *testing.T) {
	pos, err := position.NewPositionFromFen("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	limits := NewLimits()
	limits.Depth = 2

	result := s.StartSearch(context.Background(), game.New(pos), limits)
	assert.Equal(t, "a1a8", result.BestMove.StringUci())
	assert.Equal(t, "mate 1", result.Score.String())
}

func TestSearchAvoidsStalemateTrap(t *testing.T) {
	pos, err := position.NewPositionFromFen("7k/1Q6/6K1/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	limits := NewLimits()
	limits.Depth = 1

	result := s.StartSearch(context.Background(), game.New(pos), limits)
	assert.NotEqual(t, "b7f7", result.BestMove.StringUci(), "must not walk into the stalemate trap")
	assert.Equal(t, "b7g7", result.BestMove.StringUci(), "Qg7# is the first of the immediate mates in generation order")
}

func TestSearchLeavesGameUnchanged(t *testing.T) {
	pos, err := position.NewPositionFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	beforeFen := pos.Fen()

	s := NewSearch()
	limits := NewLimits()
	limits.Depth = 2

	g := game.New(pos)
	s.StartSearch(context.Background(), g, limits)
	assert.Equal(t, beforeFen, g.Position().Fen())
}
