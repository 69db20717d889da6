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
	"time"

	"github.com/kjallback/lodestar/internal/config"
	. "github.com/kjallback/lodestar/internal/types"
)

// Limits holds every way a caller may bound a search: a fixed depth, a
// fixed wall-clock budget, or UCI-style clock parameters from which the
// engine derives its own time budget. Zero value means "infinite" (only
// stopped by an explicit Stop call).
type Limits struct {
	Infinite bool
	Ponder   bool
	Mate     int

	Depth int
	Nodes uint64

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an empty Limits, equivalent to "search infinitely".
func NewLimits() *Limits {
	return &Limits{}
}

// timeBudget computes how long the search may run for side us, given the
// limits in effect. A zero duration combined with !Infinite means "use
// MoveTime or no bound".
func (l *Limits) timeBudget(us Color) time.Duration {
	if l.MoveTime > 0 {
		return l.MoveTime
	}
	if !l.TimeControl {
		return 0
	}
	myTime, myInc := l.WhiteTime, l.WhiteInc
	if us == Black {
		myTime, myInc = l.BlackTime, l.BlackInc
	}
	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = config.Settings.Search.MovesToGo
	}
	budget := myTime/time.Duration(movesToGo) + myInc
	// never plan to use more than half of the remaining clock on one move.
	if max := myTime / 2; budget > max {
		budget = max
	}
	return budget
}
