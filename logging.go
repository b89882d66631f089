// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var log = newLogger(os.Stderr, defaultConfig.Log)

func parseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "unknown log level %q", level)
	}
	return lvl, nil
}

func newLogger(out io.Writer, cfg LogConfig) zerolog.Logger {
	lvl, err := parseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Stamp,
		}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// setupLogging replaces the package logger with one built from config
func setupLogging(cfg LogConfig) {
	log = newLogger(os.Stderr, cfg)
}
