package testutil

import (
	"context"
	"strings"
	"sync"
)

// RunnerCall records a single package manager invocation
type RunnerCall struct {
	Dir  string
	Args []string
}

// Command returns the invocation arguments joined with spaces
func (c RunnerCall) Command() string {
	return strings.Join(c.Args, " ")
}

type fakeResponse struct {
	output string
	err    error
}

// FakeRunner is a scripted stand-in for the package manager runner.
// It records every invocation and replies with canned output or
// errors keyed by the space-joined argument list. Unscripted
// invocations succeed with empty output.
type FakeRunner struct {
	mu        sync.Mutex
	calls     []RunnerCall
	responses map[string]fakeResponse
}

// NewFakeRunner creates a runner with no scripted responses
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		responses: make(map[string]fakeResponse),
	}
}

// Respond scripts successful output for a command, e.g.
// Respond("ls --global --parseable --depth=0", "/a\n/b")
func (r *FakeRunner) Respond(command string, output string) *FakeRunner {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.responses[command] = fakeResponse{output: output}
	return r
}

// Fail scripts an error for a command
func (r *FakeRunner) Fail(command string, err error) *FakeRunner {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.responses[command] = fakeResponse{err: err}
	return r
}

// Run records the invocation and returns the scripted response
func (r *FakeRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	call := RunnerCall{Dir: dir, Args: append([]string(nil), args...)}
	r.calls = append(r.calls, call)

	if resp, ok := r.responses[call.Command()]; ok {
		return resp.output, resp.err
	}
	return "", nil
}

// Calls returns a copy of all recorded invocations in order
func (r *FakeRunner) Calls() []RunnerCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]RunnerCall(nil), r.calls...)
}

// CallsFor returns the recorded invocations matching a command
func (r *FakeRunner) CallsFor(command string) []RunnerCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []RunnerCall
	for _, call := range r.calls {
		if call.Command() == command {
			matched = append(matched, call)
		}
	}
	return matched
}
