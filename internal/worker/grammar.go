// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/goccy/go-json"

	"github.com/giellalt/langgate/internal/analyzer"
	"github.com/giellalt/langgate/internal/logging"
	"github.com/giellalt/langgate/internal/workererr"
)

// grammarChild is the subset of a running grammar-checker process a
// GrammarWorker needs. Satisfied in production by execGrammarChild;
// fakeable in tests.
type grammarChild interface {
	// WriteLine writes one line (without its trailing newline) to the
	// child's stdin.
	WriteLine(line string) error
	// ReadLine reads one line from the child's stdout, with any
	// trailing newline stripped.
	ReadLine() (string, error)
	// Close kills the child process and releases its resources.
	Close() error
}

type execGrammarChild struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

func startGrammarChild(modelPath string) (*execGrammarChild, error) {
	cmd := exec.Command("divvun-checker", "-a", modelPath)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening grammar checker stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening grammar checker stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting grammar checker: %w", err)
	}

	return &execGrammarChild{cmd: cmd, stdin: stdin, stdout: bufio.NewReader(stdout)}, nil
}

func (c *execGrammarChild) WriteLine(line string) error {
	_, err := io.WriteString(c.stdin, line+"\n")
	return err
}

func (c *execGrammarChild) ReadLine() (string, error) {
	line, err := c.stdout.ReadString('\n')
	return strings.TrimRight(line, "\n"), err
}

func (c *execGrammarChild) Close() error {
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	_ = c.stdin.Close()
	return c.cmd.Wait()
}

// gramcheckOutput mirrors the JSON line the backing grammar checker
// prints per request.
type gramcheckOutput struct {
	Text string         `json:"text"`
	Errs []GrammarError `json:"errs"`
}

// GrammarWorker runs a single persistent grammar-checker child process
// for one (language, model) pair and serializes requests to it over its
// stdin/stdout pipe.
type GrammarWorker struct {
	*mailbox[GrammarRequest, GrammarResponse]

	language  analyzer.LanguageKey
	modelPath string
	start     func(modelPath string) (grammarChild, error)
}

// NewGrammarWorker builds a GrammarWorker for the given language backed
// by the model at modelPath. The child process is not started until
// Serve runs.
func NewGrammarWorker(language analyzer.LanguageKey, modelPath string) *GrammarWorker {
	return &GrammarWorker{
		mailbox:   newMailbox[GrammarRequest, GrammarResponse](),
		language:  language,
		modelPath: modelPath,
		start: func(path string) (grammarChild, error) {
			return startGrammarChild(path)
		},
	}
}

func (w *GrammarWorker) String() string {
	return fmt.Sprintf("grammar-worker[%s]", w.language)
}

// Stop deliberately terminates the worker. A subsequent process exit
// will not trigger a supervised restart.
func (w *GrammarWorker) Stop() {
	w.mailbox.stop()
}

// Submit checks req.Text, truncated to its first line, against the
// grammar checker and returns the structured result.
func (w *GrammarWorker) Submit(ctx context.Context, req GrammarRequest) (GrammarResponse, error) {
	return w.mailbox.submit(ctx, req)
}

// Serve implements suture.Service. It starts the backing child process
// and serializes mailbox jobs to it until stopped or the process fails.
func (w *GrammarWorker) Serve(ctx context.Context) error {
	child, err := w.start(w.modelPath)
	if err != nil {
		return workererr.Wrap(workererr.LoadFailure, err, "starting grammar checker for %s", w.language)
	}
	defer child.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case j := <-w.jobs:
			resp, procErr := w.process(child, j.req)
			j.reply <- jobResult[GrammarResponse]{resp: resp, err: procErr}
			if procErr != nil {
				var werr *workererr.Error
				if errors.As(procErr, &werr) && werr.Fatal() {
					if w.isTerminated() {
						return nil
					}
					logging.Warn().
						Str("language", string(w.language)).
						Err(procErr).
						Msg("grammar checker process failed, restarting")
					return procErr
				}
			}
		}
	}
}

// firstLine truncates text to everything before its first newline, the
// grammar checker protocol never accepting embedded newlines.
func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

func (w *GrammarWorker) process(child grammarChild, req GrammarRequest) (GrammarResponse, error) {
	line := firstLine(req.Text)

	if err := child.WriteLine(line); err != nil {
		return GrammarResponse{}, workererr.Wrap(workererr.Io, err, "writing to grammar checker")
	}

	out, err := child.ReadLine()
	if err != nil {
		return GrammarResponse{}, workererr.Wrap(workererr.Io, err, "reading from grammar checker")
	}

	var parsed gramcheckOutput
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return GrammarResponse{}, workererr.Wrap(workererr.Protocol, err, "parsing grammar checker output")
	}

	return GrammarResponse{Text: parsed.Text, Errs: parsed.Errs}, nil
}
