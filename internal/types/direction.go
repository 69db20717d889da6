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

// Direction is a compass offset between squares expressed in square-index deltas.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// Directions lists all eight compass directions in a fixed, iterable order.
var Directions = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

// Orientation enumerates the eight ray directions; no table in this package is indexed by it.
type Orientation int

const (
	OrientN Orientation = iota
	OrientE
	OrientS
	OrientW
	OrientNE
	OrientSE
	OrientSW
	OrientNW
	OrientLength
)
