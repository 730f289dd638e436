package archiver

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchSignalsReturnsWhenDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	returned := make(chan struct{})

	go func() {
		watchSignals(done, make(chan os.Signal), cancel)
		close(returned)
	}()

	close(done)

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("signal watcher still running after the archiver finished")
	}
	assert.NoError(t, ctx.Err())
}

func TestWatchSignalsCancelsOnSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	signals := make(chan os.Signal, 1)
	returned := make(chan struct{})

	go func() {
		watchSignals(done, signals, cancel)
		close(returned)
	}()

	signals <- syscall.SIGINT

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("run was not cancelled")
	}

	close(done)

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("signal watcher still running after shutdown")
	}
}
