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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMoveRoundTrip(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.MoveType())
	assert.True(t, m.IsValid())
}

func TestCreateMovePromotion(t *testing.T) {
	m := CreateMove(SqA7, SqA8, Promotion, Queen)
	assert.Equal(t, Promotion, m.MoveType())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "a7a8q", m.StringUci())
}

func TestCreateMoveValuePreservesMoveBits(t *testing.T) {
	plain := CreateMove(SqB1, SqC3, Normal, PtNone)
	valued := CreateMoveValue(SqB1, SqC3, Normal, PtNone, Value(123))
	assert.Equal(t, plain.MoveOf(), valued.MoveOf())
	assert.Equal(t, Value(123), valued.ValueOf())
}

func TestMoveStringUciCastling(t *testing.T) {
	m := CreateMove(SqE1, SqG1, Castling, PtNone)
	assert.Equal(t, "e1g1", m.StringUci())
}

func TestMoveNoneIsInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
}
