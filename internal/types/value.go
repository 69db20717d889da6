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
	"strconv"
	"strings"
)

// Value represents a centipawn evaluation or a search score.
type Value int32

// MaxPly bounds the deepest ply the search is ever asked to reach; it sets
// how close to ValueMate a score can get before it is considered a forced
// mate rather than a material evaluation.
const MaxPly = 128

// Constants for values. ValueMate is kept well below any Value overflow so
// that "mate in N" scores (ValueMate - N) never collide with real
// evaluations or with ValueInf.
const (
	ValueZero          Value = 0
	ValueDraw          Value = 0
	ValueInf           Value = 30_001
	ValueNA            Value = -ValueInf - 1
	ValueMax           Value = 30_000
	ValueMin                 = -ValueMax
	ValueMate          Value = ValueMax
	ValueMateThreshold       = ValueMate - MaxPly - 1
)

// IsValid reports whether v lies within the legal evaluation range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue reports whether v is a forced-mate score, i.e. close enough
// to +/-ValueMate that it encodes a mate distance rather than material.
func (v Value) IsMateValue() bool {
	return abs32(int32(v)) > int32(ValueMateThreshold) && abs32(int32(v)) <= int32(ValueMate)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// String renders v the way UCI "info score" expects: "mate N" for a forced
// mate (N full moves to deliver it, i.e. plies halved and rounded up,
// negative if we are the one getting mated),
// "cp N" for a plain centipawn score, or "N/A" for ValueNA.
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v.IsMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		plies := int(ValueMate) - int(abs32(int32(v)))
		sb.WriteString(strconv.Itoa((plies + 1) / 2))
	case v == ValueNA:
		sb.WriteString("N/A")
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}
