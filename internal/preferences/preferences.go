// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package preferences loads the toggle list a grammar checker model
// exposes via its one-shot preferences flag, for the
// /preferences/grammar/{lang} endpoint.
package preferences

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"regexp"

	"github.com/giellalt/langgate/internal/workererr"
)

// separator is the literal line the backing tool prints to mark the start
// of its toggle list. It prints the separator twice before the list
// proper begins; both occurrences are skipped.
const separator = "==== Toggles: ===="

// toggleLine matches one toggle entry: a checkbox marker, a tag with no
// internal whitespace, and a human-readable description running to end
// of line.
var toggleLine = regexp.MustCompile(`^- \[.\] (\S+)\s+(.+)$`)

// Set is an ordered tag -> description mapping for one grammar model.
// Insertion order follows the backing tool's own output order.
type Set struct {
	order []string
	descs map[string]string
}

// NewSet builds an empty Set.
func NewSet() *Set {
	return &Set{descs: make(map[string]string)}
}

func (s *Set) insert(tag, desc string) {
	if _, exists := s.descs[tag]; !exists {
		s.order = append(s.order, tag)
	}
	s.descs[tag] = desc
}

// Tags returns the tags in the order they were collected.
func (s *Set) Tags() []string {
	return s.order
}

// AsMap returns a tag -> description map suitable for JSON encoding as
// the error_tags field.
func (s *Set) AsMap() map[string]string {
	out := make(map[string]string, len(s.descs))
	for k, v := range s.descs {
		out[k] = v
	}
	return out
}

// Runner invokes the backing grammar tool in its one-shot preferences
// mode and returns its stdout. Satisfied in production by exec.Command;
// fakeable in tests.
type Runner func(ctx context.Context, modelPath string) (stdout []byte, err error)

// ExecRunner runs `divvun-checker -a <modelPath> -p` and captures stdout,
// matching the protocol documented at the boundary.
func ExecRunner(ctx context.Context, modelPath string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "divvun-checker", "-a", modelPath, "-p")
	return cmd.Output()
}

// Load runs the given Runner against modelPath and parses its output into
// a Set. Failure to execute the tool, or output that never reaches the
// toggle list, is reported as a LoadFailure.
func Load(ctx context.Context, run Runner, modelPath string) (*Set, error) {
	out, err := run(ctx, modelPath)
	if err != nil {
		return nil, workererr.Wrap(workererr.LoadFailure, err, "running preferences tool for %s", modelPath)
	}
	return Parse(out)
}

// Parse scans raw tool output for the toggle list and collects it into a
// Set. The separator line is expected twice (the tool prints it twice);
// collection then reads consecutive matching lines until the first line
// that fails to match, and drops any tag literally equal to "[regex]".
func Parse(output []byte) (*Set, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))

	separatorsSeen := 0
	for scanner.Scan() {
		if scanner.Text() == separator {
			separatorsSeen++
			if separatorsSeen == 2 {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, workererr.Wrap(workererr.Protocol, err, "reading preferences output")
	}
	if separatorsSeen < 2 {
		return nil, workererr.New(workererr.Protocol, "preferences output never reached toggle list")
	}

	set := NewSet()
	for scanner.Scan() {
		m := toggleLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			break
		}
		tag, desc := m[1], m[2]
		if tag == "[regex]" {
			continue
		}
		set.insert(tag, desc)
	}
	if err := scanner.Err(); err != nil {
		return nil, workererr.Wrap(workererr.Protocol, err, "reading toggle list")
	}

	return set, nil
}
