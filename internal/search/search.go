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

// Package search implements iterative-deepening alpha-beta negamax over a
// game.Game. The engine proper is single-threaded: StartSearch runs the
// search on its own goroutine and blocks until that goroutine returns. The
// search polls an atomic stop flag and its context (which carries the
// deadline), so Stop or a cancellation issued from another goroutine ends
// it early. The UCI handler calls StartSearch from its input loop and reads
// no further command, "stop" included, until the search has returned.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/kjallback/lodestar/internal/eval"
	"github.com/kjallback/lodestar/internal/game"
	stdlog "github.com/kjallback/lodestar/internal/logging"
	"github.com/kjallback/lodestar/internal/movegen"
	. "github.com/kjallback/lodestar/internal/types"
)

// nodesPerStopCheck bounds how often the hot loop polls the cancellation
// context (and with it the deadline), so the check's overhead does not
// dominate at low depths.
const nodesPerStopCheck = 1024

// Result is what a completed (or aborted) search reports back.
type Result struct {
	BestMove     Move
	Score        Value
	DepthReached int
	Nodes        uint64
}

// IterationInfo is what iterativeDeepen reports once per completed depth,
// adapted from the teacher's uciInterface.UciDriver.SendIterationEndInfo
// down to the one call the UCI façade actually needs.
type IterationInfo struct {
	Depth int
	Score Value
	Nodes uint64
	Time  time.Duration
	PV    Move
}

// Search runs a single iterative-deepening session. Not safe for concurrent
// use; the UCI front-end owns one Search per engine process and serializes
// StartSearch/Stop calls through it.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	stopRequested atomic.Bool
	deadline      time.Time
	nodes         uint64
	startTime     time.Time

	onIteration func(IterationInfo)

	running atomic.Bool
}

// SetIterationCallback registers cb to be called once per completed
// iterative-deepening depth, the way the teacher's Search.SetUciHandler
// wires a uciInterface.UciDriver for SendIterationEndInfo. A nil cb
// disables reporting; the zero Search has no callback.
func (s *Search) SetIterationCallback(cb func(IterationInfo)) {
	s.onIteration = cb
}

// NewSearch returns a Search ready for StartSearch.
func NewSearch() *Search {
	return &Search{
		log:  stdlog.GetLog(),
		slog: stdlog.GetSearchLog(),
	}
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	return s.running.Load()
}

// Stop requests the running search abort as soon as it next polls,
// returning the best move found by the deepest completed iteration.
func (s *Search) Stop() {
	s.stopRequested.Store(true)
}

// StartSearch runs the search synchronously against g and limits, honoring
// cooperative cancellation via ctx and Stop. When limits yield a time
// budget, StartSearch itself wraps ctx in a timeout of that length. The
// caller retains
// ownership of g; StartSearch makes and unmakes moves on it but leaves it
// in its original state on return.
func (s *Search) StartSearch(ctx context.Context, g *game.Game, limits *Limits) Result {
	s.stopRequested.Store(false)
	s.nodes = 0
	s.startTime = time.Now()
	s.running.Store(true)
	defer s.running.Store(false)

	budget := limits.timeBudget(g.Position().SideToMove())
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	grp, ctx := errgroup.WithContext(ctx)
	var result Result
	grp.Go(func() error {
		result = s.iterativeDeepen(ctx, g, limits)
		return nil
	})
	_ = grp.Wait()
	return result
}

// iterativeDeepen runs negamax at depths 1, 2, 3, ... until limits.Depth is
// reached, the node budget is exhausted, or ctx is cancelled. It always
// returns the best move from the deepest *completed* iteration, or the
// first legal move if no iteration completed.
func (s *Search) iterativeDeepen(ctx context.Context, g *game.Game, limits *Limits) Result {
	rootMoves := movegen.GenerateLegalMoves(g.Position())
	var result Result
	if len(rootMoves) == 0 {
		return result // no legal move: BestMove stays MoveNone
	}
	result.BestMove = rootMoves[0]

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		maxDepth = MaxPly - 1
	}

	for depth := 1; depth <= maxDepth; depth++ {
		best, score, ok := s.searchRoot(ctx, g, rootMoves, depth, limits)
		if !ok {
			break // aborted mid-iteration: keep the previous depth's result
		}
		result.BestMove = best
		result.Score = score
		result.DepthReached = depth
		result.Nodes = s.nodes
		s.slog.Debugf("depth %d best=%s score=%s nodes=%d", depth, best.StringUci(), score.String(), s.nodes)
		if s.onIteration != nil {
			s.onIteration(IterationInfo{
				Depth: depth,
				Score: score,
				Nodes: s.nodes,
				Time:  time.Since(s.startTime),
				PV:    best,
			})
		}

		if limits.Mate > 0 && score.IsMateValue() {
			break
		}
	}
	return result
}

// searchRoot evaluates every root move at the given depth and returns the
// best one. ok is false if the search was aborted before finishing this
// depth, in which case the returned move/score must be discarded.
func (s *Search) searchRoot(ctx context.Context, g *game.Game, moves []Move, depth int, limits *Limits) (Move, Value, bool) {
	best := moves[0]
	alpha, beta := -ValueInf, ValueInf
	bestScore := -ValueInf

	for _, m := range moves {
		g.MakeMove(m)
		score := -s.negamax(ctx, g, depth-1, 1, -beta, -alpha, limits)
		g.UnmakeMove()

		if s.aborted(ctx, limits) {
			return best, bestScore, false
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore, true
}

// negamax is the recursive alpha-beta search. ply counts plies from the
// search root, used only in the mate score "-(MATE - ply)" so that
// shallower mates are preferred; draws score ValueDraw at any ply.
func (s *Search) negamax(ctx context.Context, g *game.Game, depth, ply int, alpha, beta Value, limits *Limits) Value {
	if g.IsDrawByRule() {
		return ValueDraw
	}

	// Legality is checked before the depth cutoff so a leaf that happens to
	// be checkmate or stalemate is never mistaken for a quiet material
	// position: a depth-0 node with zero legal moves is still a terminal
	// node, not "depth exhausted".
	moves := movegen.GenerateLegalMoves(g.Position())
	if len(moves) == 0 {
		return eval.TerminalScore(g, ply)
	}
	if depth == 0 {
		return eval.Evaluate(g)
	}

	best := -ValueInf
	for _, m := range moves {
		g.MakeMove(m)
		score := -s.negamax(ctx, g, depth-1, ply+1, -beta, -alpha, limits)
		g.UnmakeMove()

		s.nodes++
		if s.aborted(ctx, limits) {
			return best
		}
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}
	return best
}

// aborted checks the stop flag and node budget on every call and the
// cancellation context once every nodesPerStopCheck nodes; cheap enough to
// call from the hottest loop in the search. A cancelled context sets the
// stop flag, so every caller up to the root sees the abort.
func (s *Search) aborted(ctx context.Context, limits *Limits) bool {
	if s.stopRequested.Load() {
		return true
	}
	if s.nodes%nodesPerStopCheck == 0 {
		select {
		case <-ctx.Done():
			s.stopRequested.Store(true)
			return true
		default:
		}
	}
	if limits.Nodes > 0 && s.nodes >= limits.Nodes {
		return true
	}
	return false
}
