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
	"strconv"
	"time"

	"github.com/kjallback/lodestar/internal/search"
)

// parseLimits reads the arguments of a "go" command into a search.Limits.
// ok is false on any malformed token; tokens[0] is expected to be "go".
func parseLimits(tokens []string) (*search.Limits, bool) {
	limits := search.NewLimits()
	i := 1
	for i < len(tokens) {
		if tokens[i] != "infinite" && tokens[i] != "ponder" && i+1 >= len(tokens) {
			return nil, false // keyword without its value
		}
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, false
			}
			limits.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				return nil, false
			}
			limits.Nodes = v
			i++
		case "mate":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, false
			}
			limits.Mate = v
			i++
		case "movetime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, false
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, false
			}
			limits.WhiteTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, false
			}
			limits.BlackTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, false
			}
			limits.WhiteInc = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, false
			}
			limits.BlackInc = time.Duration(v) * time.Millisecond
			i++
		case "movestogo":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				return nil, false
			}
			limits.MovesToGo = v
			i++
		default:
			return nil, false
		}
	}

	if !(limits.Infinite || limits.Ponder || limits.Depth > 0 ||
		limits.Nodes > 0 || limits.Mate > 0 || limits.TimeControl) {
		return nil, false
	}
	return limits, true
}
