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

// Package assert provides cheap, statically eliminated sanity checks for
// invariants that must hold during development but should cost nothing in
// a release build.
package assert

import "fmt"

// DEBUG gates all Assert calls. Flipping it to true turns every guarded
// assertion back on; the Go compiler dead-code-eliminates the call sites
// when it is false, so callers must still wrap calls in "if assert.DEBUG"
// to avoid evaluating the message arguments.
const DEBUG = false

// Assert panics with the formatted message if test is false. No-op when
// DEBUG is false.
//
// Go always evaluates a call's arguments even when the function body is
// empty, so callers that build expensive messages must additionally guard
// the call site:
//
//	if assert.DEBUG {
//	    assert.Assert(v.IsValid(), "invalid value: %s", v)
//	}
func Assert(test bool, msg string, a ...interface{}) {
	if !DEBUG {
		return
	}
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
