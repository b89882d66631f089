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

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	initialLineBuffer = 64 * 1024
	MaxLineSize       = 1024 * 1024 // 1MB
)

// Failure records a script line that returned an error
type Failure struct {
	Line int
	Text string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d: %s: %v", f.Line, f.Text, f.Err)
}

// Result summarises a script run
type Result struct {
	Lines    int // lines read, including blanks and comments
	Executed int // commands run, failed ones included
	Failures []Failure
}

// Runner executes scripts against a session
type Runner struct {
	Session *Session

	// StopOnError ends the run at the first failing line
	StopOnError bool
	// Echo writes each command, prefixed with Prompt, before its output
	Echo   bool
	Prompt string

	// OnLine is called after every line read, with the line number
	OnLine func(line int)
}

// NewRunner creates a runner for session
func NewRunner(session *Session) *Runner {
	return &Runner{Session: session, Prompt: "> "}
}

// Run reads commands from in, one per line, and writes their output to out.
// Errors from single commands are collected in the result; the returned
// error is set only for cancellation, I/O failures and, with StopOnError,
// the first failing line.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	var result Result

	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, initialLineBuffer)
	scanner.Buffer(buf, MaxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, errors.Wrapf(err, "stopped at line %d", result.Lines+1)
		}

		result.Lines++
		text := scanner.Text()
		if r.OnLine != nil {
			r.OnLine(result.Lines)
		}

		cmd, err := ParseLine(text)
		if err == nil && cmd == nil {
			continue
		}

		if r.Echo {
			if _, werr := fmt.Fprintf(out, "%s%s\n", r.Prompt, text); werr != nil {
				return result, errors.Wrap(werr, "write output")
			}
		}

		var output string
		if err == nil {
			result.Executed++
			output, err = r.Session.Run(cmd)
		}
		if err != nil {
			f := Failure{Line: result.Lines, Text: text, Err: err}
			result.Failures = append(result.Failures, f)
			if r.StopOnError {
				return result, errors.Wrap(err, f.String())
			}
			output = "error: " + err.Error()
		}

		if output == "" {
			continue
		}
		if _, werr := fmt.Fprintln(out, output); werr != nil {
			return result, errors.Wrap(werr, "write output")
		}
	}

	if err := scanner.Err(); err != nil {
		return result, errors.Wrap(err, "read script")
	}
	return result, nil
}
