package ui

import (
	"context"
	"os"
	"sync"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// SpinnerIndicator shows a spinner while the issue page is being read. It is
// silent when stdout is not a terminal, which keeps piped output and the
// native messaging channel clean.
type SpinnerIndicator struct {
	enabled bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSpinnerIndicator() *SpinnerIndicator {
	return &SpinnerIndicator{enabled: term.IsTerminal(int(os.Stdout.Fd()))}
}

func (it *SpinnerIndicator) Show(message string) {
	if !it.enabled {
		return
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	if it.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	it.cancel = cancel
	it.done = done

	go func() {
		defer close(done)
		_ = spinner.New().Title(message).Context(ctx).Run()
	}()
}

func (it *SpinnerIndicator) Hide() {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.cancel == nil {
		return
	}

	it.cancel()
	<-it.done
	it.cancel = nil
	it.done = nil
}
