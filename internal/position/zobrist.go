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
	. "github.com/kjallback/lodestar/internal/types"
)

// Key is a Zobrist hash of a Position.
type Key uint64

// zobrist holds the fixed random key table used to fold a Position's state
// into a single 64-bit Key. Built once at process start from a fixed seed so
// the same position always hashes to the same key across runs.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingLength]Key
	enPassantFile  [FileLength]Key
	sideToMove     Key
}

var zobristBase zobrist

// zobristSeed is fixed so that Zobrist keys are reproducible across runs;
// the specific value has no significance beyond being a stable seed.
const zobristSeed uint64 = 1070372

func init() {
	rng := newZobristRand(zobristSeed)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(rng.next())
		}
	}
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		zobristBase.castlingRights[cr] = Key(rng.next())
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(rng.next())
	}
	zobristBase.sideToMove = Key(rng.next())
}

// zobristKeyFromScratch recomputes a position's key from its current state,
// independent of any incremental bookkeeping. Used to validate that
// incremental updates in DoMove/UndoMove never drift from the true key.
func zobristKeyFromScratch(p *Position) Key {
	var key Key
	for sq := SqA1; sq <= SqH8; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobristBase.pieces[pc][sq]
		}
	}
	key ^= zobristBase.castlingRights[p.castlingRights]
	if p.enPassantSquare.IsValid() {
		key ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
	}
	if p.sideToMove == Black {
		key ^= zobristBase.sideToMove
	}
	return key
}

// zobristRand is a small xorshift64star generator private to Zobrist table
// initialization, kept separate from the types package's magic-number
// generator since the two have different seeding concerns.
type zobristRand struct {
	s uint64
}

func newZobristRand(seed uint64) *zobristRand {
	return &zobristRand{s: seed}
}

func (r *zobristRand) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
