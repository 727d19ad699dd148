package media

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

type runResult struct {
	stdout []byte
	stderr []byte
	err    error
	// sideEffect runs before the result is returned, e.g. to create output files.
	sideEffect func(args []string)
}

type runCall struct {
	name string
	args []string
}

// fakeRunner returns scripted results keyed by program name.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string]runResult
	calls   []runCall
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, runCall{name: name, args: args})

	res := f.results[name]
	if res.sideEffect != nil {
		res.sideEffect(args)
	}
	return res.stdout, res.stderr, res.err
}

func newDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
