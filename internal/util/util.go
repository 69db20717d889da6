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

// Package util collects small numeric and diagnostic helpers shared across
// packages that would otherwise each reinvent them.
package util

import (
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Abs returns the absolute value of n using a branchless bit trick.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps computes nodes per second from a node count and elapsed duration,
// tolerating a zero duration by treating it as one nanosecond.
func Nps(nodes uint64, elapsedNanos int64) uint64 {
	if elapsedNanos <= 0 {
		elapsedNanos = 1
	}
	return uint64(int64(nodes) * 1_000_000_000 / elapsedNanos)
}

// MemStat returns a locale-formatted summary of current heap usage and GC
// activity, handy to log around long searches or perft runs.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("alloc=%d heapObjects=%d numGC=%d", mem.Alloc, mem.HeapObjects, mem.NumGC)
}
