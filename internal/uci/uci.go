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

// Package uci is the thin façade between the Universal Chess Interface
// protocol and the engine: it parses GUI commands, drives Search, and
// formats "info"/"bestmove" lines. It never contains chess logic itself.
package uci

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kjallback/lodestar/internal/game"
	stdlog "github.com/kjallback/lodestar/internal/logging"
	"github.com/kjallback/lodestar/internal/movegen"
	"github.com/kjallback/lodestar/internal/position"
	"github.com/kjallback/lodestar/internal/search"
	. "github.com/kjallback/lodestar/internal/types"
	"github.com/kjallback/lodestar/internal/util"
)

var out = message.NewPrinter(language.English)

const engineName = "lodestar"
const engineAuthor = "Karl Jallback"

// Handler owns one engine session: the current position, the search
// instance, and the stdin/stdout streams it speaks UCI over.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos      *position.Position
	mySearch *search.Search
	cancel   context.CancelFunc
	log      *logging.Logger
	uciLog   *logging.Logger
}

// NewHandler returns a Handler wired to stdin/stdout with a fresh starting
// position.
func NewHandler() *Handler {
	return &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		pos:      position.NewStartPosition(),
		mySearch: search.NewSearch(),
		log:      stdlog.GetLog(),
		uciLog:   stdlog.GetUciLog(),
	}
}

// Loop reads commands from InIo until "quit" is received or input ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns everything
// it wrote to its output, useful for tests without a real pipe.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(cmd string) (quit bool) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(cmd, -1)

	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "setoption":
		// Hash/Threads and friends are accepted and ignored: single-
		// threaded search, no transposition table in this engine.
	case "ucinewgame":
		h.pos = position.NewStartPosition()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		if h.cancel != nil {
			h.cancel()
		}
		h.mySearch.Stop()
	case "d":
		h.send(h.pos.StringBoard())
	case "perft":
		h.perftCommand(tokens)
	default:
		h.log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfoString("position command malformed")
		return
	}
	i := 1
	fen := position.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(b.String())
	default:
		h.sendInfoString("position command malformed: " + cmdJoin(tokens))
		return
	}

	pos, err := position.NewPositionFromFen(fen)
	if err != nil {
		h.sendInfoString("invalid fen: " + err.Error())
		return
	}
	h.pos = pos

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := findMoveByUci(h.pos, tokens[i])
			if !m.IsValid() {
				h.sendInfoString("invalid move in position command: " + tokens[i])
				return
			}
			h.pos.DoMove(m)
		}
	}
}

// findMoveByUci resolves a "from+to[+promotion]" string (e.g. "e2e4",
// "a7a8q") against the legal moves available in pos, since the UCI wire
// format carries no move-type tag the way the internal Move encoding does.
func findMoveByUci(pos *position.Position, s string) Move {
	for _, m := range movegen.GenerateLegalMoves(pos) {
		if m.StringUci() == s {
			return m
		}
	}
	return MoveNone
}

func (h *Handler) goCommand(tokens []string) {
	limits, ok := parseLimits(tokens)
	if !ok {
		h.sendInfoString("go command malformed: " + cmdJoin(tokens))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel

	h.mySearch.SetIterationCallback(func(info search.IterationInfo) {
		nps := util.Nps(info.Nodes, info.Time.Nanoseconds())
		h.send(fmt.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
			info.Depth, info.Score.String(), info.Nodes, nps,
			info.Time.Milliseconds(), info.PV.StringUci()))
	})
	result := h.mySearch.StartSearch(ctx, game.New(h.pos), limits)
	h.mySearch.SetIterationCallback(nil)

	h.send("bestmove " + result.BestMove.StringUci())
}

func (h *Handler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	total, divide := movegen.PerftDivide(h.pos, depth)
	h.send(movegen.FormatDivide(total, divide))
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

func (h *Handler) sendInfoString(s string) {
	h.log.Warning(s)
	h.send(out.Sprintf("info string %s", s))
}

func cmdJoin(tokens []string) string {
	return strings.Join(tokens, " ")
}
