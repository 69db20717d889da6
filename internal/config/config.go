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

// Package config holds process-wide settings read from a TOML file, with
// sensible defaults so the engine runs unconfigured.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevels maps the string levels accepted in config.toml to go-logging's
// numeric levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

var (
	// LogLevel is the resolved numeric log level for the engine logger.
	LogLevel = LogLevels["info"]
	// SearchLogLevel is the resolved numeric log level for the search
	// trace logger, kept separate since it is far noisier.
	SearchLogLevel = LogLevels["warning"]

	// Settings is the configuration tree decoded from config.toml.
	Settings conf

	initialized bool
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

type searchConfiguration struct {
	// MovesToGo is the fallback divisor used to derive a per-move time
	// budget from a clock when the GUI does not send movestogo.
	MovesToGo int
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "warning"
	Settings.Search.MovesToGo = 30
}

// Setup decodes path into Settings, falling back to the compiled-in
// defaults for anything the file does not set. Safe to call multiple
// times; only the first call has effect.
func Setup(path string) {
	if initialized {
		return
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Println("config: using defaults:", err)
		}
	}
	if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
		SearchLogLevel = lvl
	}
	if Settings.Search.MovesToGo <= 0 {
		Settings.Search.MovesToGo = 30
	}
	initialized = true
}
