// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package worker implements the three analyzer kinds (speller, grammar
// checker, hyphenator) as supervised, single-goroutine services. Each
// worker owns a bounded mailbox; requests are processed one at a time in
// the order received, matching the serialized protocol of the backing
// tool each worker wraps.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/giellalt/langgate/internal/workererr"
)

// mailboxSize bounds the number of in-flight requests a worker will
// queue before Submit blocks. Chosen generously for bursty request
// traffic against a single serialized backing process; callers that
// cannot wait should pass a context with a deadline.
const mailboxSize = 64

type job[Req, Resp any] struct {
	ctx   context.Context
	req   Req
	reply chan jobResult[Resp]
}

type jobResult[Resp any] struct {
	resp Resp
	err  error
}

// mailbox is the shared plumbing every worker kind embeds: a bounded
// request channel, a done signal distinguishing deliberate Stop from
// context cancellation, and the terminated flag the Serve loop consults
// to decide whether a process exit should trigger a supervised restart.
type mailbox[Req, Resp any] struct {
	jobs       chan job[Req, Resp]
	done       chan struct{}
	closeOnce  sync.Once
	terminated atomic.Bool
}

func newMailbox[Req, Resp any]() *mailbox[Req, Resp] {
	return &mailbox[Req, Resp]{
		jobs: make(chan job[Req, Resp], mailboxSize),
		done: make(chan struct{}),
	}
}

// submit enqueues a request and waits for its reply, the mailbox being
// stopped, or ctx being canceled, whichever happens first.
func (m *mailbox[Req, Resp]) submit(ctx context.Context, req Req) (Resp, error) {
	var zero Resp

	reply := make(chan jobResult[Resp], 1)
	select {
	case m.jobs <- job[Req, Resp]{ctx: ctx, req: req, reply: reply}:
	case <-m.done:
		return zero, workererr.New(workererr.Io, "worker stopped")
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	select {
	case res := <-reply:
		return res.resp, res.err
	case <-m.done:
		return zero, workererr.New(workererr.Io, "worker stopped")
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// stop marks the mailbox as deliberately terminated and wakes any
// blocked Serve loop or Submit call. Safe to call more than once.
func (m *mailbox[Req, Resp]) stop() {
	m.terminated.Store(true)
	m.closeOnce.Do(func() { close(m.done) })
}

// isTerminated reports whether stop has been called, letting a Serve
// loop tell a deliberate shutdown apart from a backing process crash.
func (m *mailbox[Req, Resp]) isTerminated() bool {
	return m.terminated.Load()
}

// MailboxDepth returns the number of requests currently queued ahead of
// any job already pulled into the Serve loop. Exported so the
// dispatcher can report it as a gauge per kind/language.
func (m *mailbox[Req, Resp]) MailboxDepth() int {
	return len(m.jobs)
}
