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

package main

import (
	"flag"
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/profile"

	"github.com/kjallback/lodestar/internal/config"
	"github.com/kjallback/lodestar/internal/movegen"
	"github.com/kjallback/lodestar/internal/position"
	"github.com/kjallback/lodestar/internal/uci"
)

func main() {
	configFile := flag.String("config", "", "path to a TOML configuration file")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	fen := flag.String("fen", position.StartFen, "FEN to use with -perft")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fen string, depth int) {
	pos, err := position.NewPositionFromFen(fen)
	if err != nil {
		color.Red("invalid fen %q: %v", fen, err)
		return
	}
	for d := 1; d <= depth; d++ {
		total, divide := movegen.PerftDivide(pos, d)
		if d == depth {
			fmt.Print(movegen.FormatDivide(total, divide))
		} else {
			color.Cyan("perft(%d) = %d", d, total)
		}
	}
}
