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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/shell"
)

// copyHandler puts the output of the previous command on the clipboard
type copyHandler struct {
	write func(string) error
}

func (copyHandler) Name() string      { return "copy" }
func (copyHandler) Aliases() []string { return []string{"yank"} }
func (copyHandler) Usage() string     { return "copy" }
func (copyHandler) Summary() string   { return "Copy the last output to the clipboard" }

func (h copyHandler) Run(s *shell.Session, cmd *shell.Command) (string, error) {
	if cmd.HasSubCommand(1) {
		return "", errors.Wrap(shell.ErrUsage, h.Usage())
	}
	text := s.LastOutput()
	if text == "" {
		return "nothing to copy", nil
	}
	if err := h.write(text); err != nil {
		return "", errors.Wrap(err, "copy to clipboard")
	}
	return fmt.Sprintf("copied %d bytes", len(text)), nil
}

// newSession builds a shell session configured for the CLI
func newSession(cfg *Config, tree *avl.Tree, hc *cache.Cache) (*shell.Session, error) {
	format, err := shell.ParseFormat(cfg.Shell.PrintFormat)
	if err != nil {
		return nil, err
	}
	session := shell.NewSession(tree)
	session.Format = format
	if hc != nil {
		session.RenderHelp = helpRenderer(hc)
	}
	session.Registry().Register(copyHandler{write: clipboard.WriteAll})
	return session, nil
}

// loadKeys reads whitespace separated integer keys from path
func loadKeys(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open keys file")
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	var keys []int
	for scanner.Scan() {
		key, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "%s: bad key %q", path, scanner.Text())
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return keys, nil
}

func seedTree(tree *avl.Tree, path string) error {
	if path == "" {
		return nil
	}
	keys, err := loadKeys(path)
	if err != nil {
		return err
	}
	added := 0
	for _, key := range keys {
		if tree.Insert(key) {
			added++
		}
	}
	log.Info().Str("file", path).Int("keys", len(keys)).Int("inserted", added).Msg("loaded keys")
	return nil
}

func isExitCommand(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit", "q":
		return true
	}
	return false
}

// runREPL reads commands from in until EOF, exit or cancellation
func runREPL(ctx context.Context, session *shell.Session, prompt string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), shell.MaxLineSize)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if isExitCommand(line) {
			return nil
		}

		output, err := session.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
			continue
		}
		if output != "" {
			fmt.Fprintln(out, output)
		}
	}
	return errors.Wrap(scanner.Err(), "read input")
}

type execOptions struct {
	StopOnError bool
	Progress    bool
	Echo        bool
	Prompt      string
}

// runScripts executes each script against one session. "-" reads stdin.
func runScripts(ctx context.Context, session *shell.Session, scripts []string, opts execOptions, stdin io.Reader, out io.Writer) (shell.Result, error) {
	var total shell.Result

	for _, script := range scripts {
		result, err := runScript(ctx, session, script, opts, stdin, out)
		total.Lines += result.Lines
		total.Executed += result.Executed
		total.Failures = append(total.Failures, result.Failures...)
		if err != nil {
			return total, err
		}
	}

	if n := len(total.Failures); n > 0 {
		return total, errors.Errorf("%d of %d commands failed", n, total.Executed)
	}
	return total, nil
}

func runScript(ctx context.Context, session *shell.Session, script string, opts execOptions, stdin io.Reader, out io.Writer) (shell.Result, error) {
	in := stdin
	name := "stdin"
	if script != "-" {
		file, err := os.Open(script)
		if err != nil {
			return shell.Result{}, errors.Wrap(err, "open script")
		}
		defer file.Close()
		in = file
		name = script
	}

	runner := shell.NewRunner(session)
	runner.StopOnError = opts.StopOnError
	runner.Echo = opts.Echo
	runner.Prompt = opts.Prompt

	if opts.Progress {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(fmt.Sprintf("📜 %s", name)),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
		)
		defer bar.Close()
		runner.OnLine = func(int) { _ = bar.Add(1) }
	}

	result, err := runner.Run(ctx, in, out)
	for _, f := range result.Failures {
		log.Warn().Str("script", name).Int("line", f.Line).Str("command", f.Text).Err(f.Err).Msg("command failed")
	}
	if err != nil {
		return result, errors.Wrap(err, name)
	}
	log.Info().Str("script", name).Int("commands", result.Executed).Int("failed", len(result.Failures)).Msg("script done")
	return result, nil
}
