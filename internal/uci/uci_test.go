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

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUciHandshake(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name lodestar")
	assert.Contains(t, out, "id author")
	assert.Contains(t, out, "uciok")
}

func TestIsReady(t *testing.T) {
	h := NewHandler()
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestPositionStartposWithMoves(t *testing.T) {
	h := NewHandler()
	h.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", h.pos.Fen())
}

func TestPositionFen(t *testing.T) {
	h := NewHandler()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.Fen())
}

func TestPositionRejectsInvalidMove(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "invalid move")
}

func TestPerftCommand(t *testing.T) {
	h := NewHandler()
	out := h.Command("perft 2")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[len(lines)-1], "Nodes searched: 400")
}

func TestGoDepthReportsBestMove(t *testing.T) {
	h := NewHandler()
	h.Command("position fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	out := h.Command("go depth 2")
	assert.Contains(t, out, "bestmove a1a8")
	assert.Contains(t, out, "score mate 1")
}
